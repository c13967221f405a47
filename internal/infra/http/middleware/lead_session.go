package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/b2bflow/leadflow/internal/security"
)

// LeadSession bloqueia re-submissão de quem já carrega uma sessão de lead
// VÁLIDA no Authorization. A lógica é invertida em relação a um guard de
// autenticação comum: token válido -> 409 (a sessão ainda vale, use-a);
// token expirado, inválido ou ausente -> segue para o cadastro.
func LeadSession(tokens *security.SessionTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || tokens == nil {
				next.ServeHTTP(w, r)
				return
			}

			if _, err := tokens.Validate(token); err != nil {
				// Expirado ou inválido: a sessão antiga não conta mais
				next.ServeHTTP(w, r)
				return
			}

			log.Println("[AUTH] Sessão de lead ainda válida, re-submissão bloqueada")
			writeGuardError(w, http.StatusConflict, "Lead já possui um agendamento ativo")
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return strings.TrimSpace(header)
}
