package models

import "time"

// AdminContext is the per-request authentication context populated by the
// session gate middleware from a verified session token. Handlers behind
// the gate read it instead of consulting any global state.
type AdminContext struct {
	TokenID   string
	ExpiresAt time.Time
}

// Flash is a one-shot user notice carried through the session between a
// redirect and the next render. Severity matches the bootstrap-style
// classes the templates use: success, info, danger.
type Flash struct {
	Severity string
	Message  string
}
