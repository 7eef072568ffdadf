package auth

import (
	"testing"
	"time"

	"beacon/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newTestService(t *testing.T, allowDev bool) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AllowDevTokens: allowDev}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestVerifyAccessToken_Valid(t *testing.T) {
	svc := newTestService(t, false)
	userID := uuid.New()

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	got, err := svc.VerifyAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	svc := newTestService(t, false)

	tokenString := signTestToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err := svc.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	svc := newTestService(t, false)

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_MissingSubject(t *testing.T) {
	svc := newTestService(t, false)

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err := svc.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_DevBypassEnabled(t *testing.T) {
	svc := newTestService(t, true)
	userID := uuid.New()

	got, err := svc.VerifyAccessToken(devTokenPrefix + userID.String())
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyAccessToken_DevBypassDisabled(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.VerifyAccessToken(devTokenPrefix + uuid.New().String())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_DevBypassMalformed(t *testing.T) {
	svc := newTestService(t, true)

	_, err := svc.VerifyAccessToken(devTokenPrefix + "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
