package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminTokenTTL bounds how long a logged-in admin session stays valid
// before the password has to be entered again.
const AdminTokenTTL = 12 * time.Hour

const adminSubject = "admin"

// AdminClaims represents the claims carried by an admin session token.
type AdminClaims struct {
	jwt.RegisteredClaims
}

// NewAdminToken mints a signed session token for the single admin identity.
func NewAdminToken(secret []byte) (string, error) {
	claims := &AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AdminTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAdminToken parses and validates an admin session token.
func VerifyAdminToken(tokenStr string, secret []byte) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}
