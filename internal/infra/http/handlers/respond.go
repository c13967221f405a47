package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/b2bflow/leadflow/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError traduz o erro do usecase para status HTTP. Erro técnico nunca
// vaza detalhe de integração ou de banco para o chamador.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusForCode(domainErr.Code), map[string]string{"error": domainErr.Message})
		return
	}

	log.Printf("[HTTP] ❌ Erro interno: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno no servidor"})
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeInvalidToken:
		return http.StatusUnauthorized
	case usecase.CodeAlreadyRegistered:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
