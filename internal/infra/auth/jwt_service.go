// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"beacon/config"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
)

// devTokenPrefix marks development bypass tokens: "dev:<uuid>". They are only
// honored when auth.allowDevTokens is set, which must never happen in production.
const devTokenPrefix = "dev:"

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService verifies access tokens issued by the external authentication
// service using the shared HMAC secret.
type jwtService struct {
	accessSecret   string
	allowDevTokens bool
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	allowDev := cfg.Auth != nil && cfg.Auth.AllowDevTokens

	return &jwtService{
		accessSecret:   cfg.SecretKey.Access,
		allowDevTokens: allowDev,
	}, nil
}

// VerifyAccessToken validates the token string and returns the subject user ID.
func (s *jwtService) VerifyAccessToken(tokenString string) (uuid.UUID, error) {
	if strings.HasPrefix(tokenString, devTokenPrefix) {
		return s.verifyDevToken(tokenString)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "subject claim missing")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "subject claim is not a user ID")
	}

	return userID, nil
}

func (s *jwtService) verifyDevToken(tokenString string) (uuid.UUID, error) {
	if !s.allowDevTokens {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "development tokens are disabled")
	}

	userID, err := uuid.Parse(strings.TrimPrefix(tokenString, devTokenPrefix))
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "malformed development token")
	}

	return userID, nil
}
