// Package service defines domain-level service interfaces implemented by the infra layer.
package service

import (
	"github.com/google/uuid"
)

// TokenService verifies access tokens issued by the external authentication
// service. Implementations honor the shared token contract, including the
// development bypass when it is explicitly enabled by configuration.
type TokenService interface {
	// VerifyAccessToken validates the token string and returns the subject user ID.
	VerifyAccessToken(tokenString string) (uuid.UUID, error)
}
