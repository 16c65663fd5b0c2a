package models

import "time"

// Project is the single persisted content entity: one portfolio item.
// Image holds the stored upload filename; Link an external URL. Both are
// nil when absent.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectForm carries the raw form fields of a create/edit submission.
// Values are trimmed and validated by the service, not here.
type ProjectForm struct {
	Title       string
	Description string
	Link        string
}
