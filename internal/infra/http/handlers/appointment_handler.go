package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/b2bflow/leadflow/internal/infra/http/middleware"
	"github.com/b2bflow/leadflow/internal/usecase"
)

type AppointmentHandler struct {
	BookUC *usecase.BookAppointmentUseCase
}

func NewAppointmentHandler(bookUC *usecase.BookAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{BookUC: bookUC}
}

// Create (POST /appointments)
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.BookAppointmentInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.BookUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if !output.Success {
		// Falha de integração depois do happy-path iniciado: resultado de
		// negócio, não 5xx
		middleware.RecordIntegrationError("gcalendar")
		writeJSON(w, http.StatusBadGateway, output)
		return
	}

	middleware.RecordAppointmentBooked()
	writeJSON(w, http.StatusCreated, output)
}

// Slots (GET /appointments/slots)
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	slots := h.BookUC.ListAvailableSlots(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"slots": slots})
}
