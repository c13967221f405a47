package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

const clientTokenHeader = "X-Client-Token"

// ClientToken protege os endpoints chamados pelo front e pelo cron externo
// com um token compartilhado fixo.
//
// Sem o token configurado no servidor o guard falha FECHADO (500): melhor
// recusar tudo do que deixar os endpoints abertos por erro de deploy.
func ClientToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				log.Println("[AUTH] ❌ API_CLIENT_TOKEN não configurado no servidor")
				writeGuardError(w, http.StatusInternalServerError, "Erro de configuração no servidor")
				return
			}

			got := r.Header.Get(clientTokenHeader)
			if got == "" {
				writeGuardError(w, http.StatusUnauthorized, "Token de acesso ausente")
				return
			}

			if got != expected {
				writeGuardError(w, http.StatusForbidden, "Token de acesso inválido")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
