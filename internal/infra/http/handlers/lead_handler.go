package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/b2bflow/leadflow/internal/infra/http/middleware"
	"github.com/b2bflow/leadflow/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	UpdateLeadUC *usecase.UpdateLeadUseCase
	Repo         usecase.LeadRepository
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, updateUC *usecase.UpdateLeadUseCase, repo usecase.LeadRepository) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: createUC,
		UpdateLeadUC: updateUC,
		Repo:         repo,
	}
}

// Create (POST /leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == usecase.CodeCRM {
			middleware.RecordIntegrationError("pipedrive")
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadCaptured(input.TypeLead, output.Status)

	status := http.StatusCreated
	if output.Status == "updated" {
		status = http.StatusOK
	}

	writeJSON(w, status, output)
}

// Update (PUT /leads)
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.UpdateLeadUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == usecase.CodeCRM {
			middleware.RecordIntegrationError("pipedrive")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// List (GET /leads) - visão administrativa simples, direto no repositório
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}
