package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/b2bflow/leadflow/internal/usecase"
)

type AuthHandler struct {
	VerifyTokenUC *usecase.VerifyTokenUseCase
}

func NewAuthHandler(verifyUC *usecase.VerifyTokenUseCase) *AuthHandler {
	return &AuthHandler{VerifyTokenUC: verifyUC}
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyToken (POST /auth/verify-token) - o front manda o leadtoken salvo e
// recebe o perfil para re-hidratar a sessão
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req verifyTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Token ausente"})
		return
	}

	profile, err := h.VerifyTokenUC.Execute(r.Context(), req.Token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "lead": profile})
}
