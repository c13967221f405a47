package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/b2bflow/leadflow/internal/security"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestClientTokenMissingConfig(t *testing.T) {
	guard := ClientToken("")(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("X-Client-Token", "qualquer-coisa")
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	// Guard fecha quando o servidor não tem o token configurado
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClientTokenMissingHeader(t *testing.T) {
	guard := ClientToken("segredo")(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token de acesso ausente")
}

func TestClientTokenMismatch(t *testing.T) {
	guard := ClientToken("segredo")(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("X-Client-Token", "errado")
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClientTokenMatch(t *testing.T) {
	guard := ClientToken("segredo")(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("X-Client-Token", "segredo")
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeadSessionValidTokenBlocks(t *testing.T) {
	tokens, err := security.NewSessionTokenService("segredo-de-teste")
	assert.NoError(t, err)

	token, err := tokens.Generate("5511987654321", nil)
	assert.NoError(t, err)

	guard := LeadSession(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lead já possui um agendamento ativo")
}

func TestLeadSessionExpiredTokenPasses(t *testing.T) {
	tokens, err := security.NewSessionTokenService("segredo-de-teste")
	assert.NoError(t, err)

	past := time.Now().Add(-1 * time.Hour)
	token, err := tokens.Generate("5511987654321", &past)
	assert.NoError(t, err)

	guard := LeadSession(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	// Sessão expirada libera um novo cadastro
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeadSessionGarbageTokenPasses(t *testing.T) {
	tokens, err := security.NewSessionTokenService("segredo-de-teste")
	assert.NoError(t, err)

	guard := LeadSession(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set("Authorization", "Bearer nao-é-um-jwt")
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeadSessionNoHeaderPasses(t *testing.T) {
	tokens, err := security.NewSessionTokenService("segredo-de-teste")
	assert.NoError(t, err)

	guard := LeadSession(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
