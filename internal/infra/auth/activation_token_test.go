package auth

import (
	"testing"
	"time"

	"prwatch/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Activation: &config.ActivationConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Activation = "unit-test-secret"

	return cfg
}

func TestActivationTokenService_RoundTrip(t *testing.T) {
	svc, err := NewActivationTokenService(newTokenConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Validate(token, userID))
	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestActivationTokenService_RejectsForeignUser(t *testing.T) {
	svc, err := NewActivationTokenService(newTokenConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	err = svc.Validate(token, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidActivationToken)
}

func TestActivationTokenService_RejectsExpired(t *testing.T) {
	svc, err := NewActivationTokenService(newTokenConfig(-time.Minute))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Generate(userID)
	require.NoError(t, err)

	err = svc.Validate(token, userID)
	assert.ErrorIs(t, err, ErrInvalidActivationToken)
}

func TestActivationTokenService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewActivationTokenService(newTokenConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTokenConfig(time.Hour)
	otherCfg.SecretKey.Activation = "different-secret"
	verifier, err := NewActivationTokenService(otherCfg)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := issuer.Generate(userID)
	require.NoError(t, err)

	err = verifier.Validate(token, userID)
	assert.ErrorIs(t, err, ErrInvalidActivationToken)
}

func TestActivationTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewActivationTokenService(newTokenConfig(time.Hour))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Validate("not-a-jwt", uuid.New()), ErrInvalidActivationToken)
}

func TestNewActivationTokenService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Activation: &config.ActivationConfig{TokenTTL: time.Hour}}

	_, err := NewActivationTokenService(cfg)
	assert.Error(t, err)
}
