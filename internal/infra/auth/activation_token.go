// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"prwatch/config"
	"prwatch/internal/domain/service"
)

const activationTokenType = "activation"

// ErrInvalidActivationToken is returned for any token that does not validate
// for the expected user inside its window.
var ErrInvalidActivationToken = errors.New("invalid activation token")

// activationTokenService implements ActivationTokenService with HS256 JWTs.
// A token is fully determined by (user id, issue timestamp, secret), which
// gives the deterministic, time-windowed credential the activation link needs.
type activationTokenService struct {
	secret string        // Secret key for signing activation tokens.
	ttl    time.Duration // Validity window, measured from the token's own iat.
}

// NewActivationTokenService is the constructor for activationTokenService.
func NewActivationTokenService(cfg *config.Config) (service.ActivationTokenService, error) {
	if cfg.SecretKey.Activation == "" {
		return nil, errors.New("activation secret must be provided")
	}

	return &activationTokenService{
		secret: cfg.SecretKey.Activation,
		ttl:    cfg.Activation.TokenTTL,
	}, nil
}

// Generate creates a new activation token bound to the user id and the
// current timestamp.
func (s *activationTokenService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"type": activationTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the token signature, expiry and subject. A token minted for
// a different user never validates, regardless of its window.
func (s *activationTokenService) Validate(tokenString string, userID uuid.UUID) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return ErrInvalidActivationToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidActivationToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != activationTokenType {
		return ErrInvalidActivationToken
	}
	if subject, _ := claims["sub"].(string); subject != userID.String() {
		return ErrInvalidActivationToken
	}

	return nil
}

// TokenDuration returns the configured validity window.
func (s *activationTokenService) TokenDuration() time.Duration {
	return s.ttl
}
