package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEValidateRoundTrip(t *testing.T) {
	svc, err := NewSessionTokenService("segredo-de-teste")
	assert.NoError(t, err)

	token, err := svc.Generate("5511999999999", nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sub, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "5511999999999", sub)
}

func TestValidateTokenExpirado(t *testing.T) {
	svc, _ := NewSessionTokenService("segredo-de-teste")

	past := time.Now().Add(-1 * time.Hour)
	token, err := svc.Generate("5511999999999", &past)
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAssinaturaErrada(t *testing.T) {
	emissor, _ := NewSessionTokenService("segredo-a")
	validador, _ := NewSessionTokenService("segredo-b")

	token, _ := emissor.Generate("5511999999999", nil)

	_, err := validador.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateLixo(t *testing.T) {
	svc, _ := NewSessionTokenService("segredo-de-teste")

	_, err := svc.Validate("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewSessionTokenServiceSemSegredo(t *testing.T) {
	_, err := NewSessionTokenService("")
	assert.Error(t, err)
}
