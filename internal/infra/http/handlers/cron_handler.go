package handlers

import (
	"log"
	"net/http"

	"github.com/b2bflow/leadflow/internal/infra/http/middleware"
	"github.com/b2bflow/leadflow/internal/usecase"
)

type CronHandler struct {
	Sweeps *usecase.CronSweepUseCase
}

func NewCronHandler(sweeps *usecase.CronSweepUseCase) *CronHandler {
	return &CronHandler{Sweeps: sweeps}
}

type cronRunResponse struct {
	Confirmations int      `json:"confirmations"`
	Recoveries    int      `json:"recoveries"`
	Reminders     int      `json:"reminders"`
	Errors        []string `json:"errors,omitempty"`
}

// Run (POST /cron/run) - dispara os três sweeps em sequência. Erro em um
// sweep não cancela os demais; todos os erros voltam agregados no corpo.
func (h *CronHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := cronRunResponse{}

	confirmations, err := h.Sweeps.SendConfirmations(ctx)
	if err != nil {
		log.Printf("[CRON] ❌ Sweep de confirmação falhou: %v", err)
		resp.Errors = append(resp.Errors, "confirmations: "+err.Error())
	}
	resp.Confirmations = confirmations
	middleware.RecordMessagesSent("confirmation", confirmations)

	recoveries, err := h.Sweeps.SendRecoveries(ctx)
	if err != nil {
		log.Printf("[CRON] ❌ Sweep de recuperação falhou: %v", err)
		resp.Errors = append(resp.Errors, "recoveries: "+err.Error())
	}
	resp.Recoveries = recoveries
	middleware.RecordMessagesSent("recovery", recoveries)

	reminders, err := h.Sweeps.SendReminders(ctx)
	if err != nil {
		log.Printf("[CRON] ❌ Sweep de lembrete falhou: %v", err)
		resp.Errors = append(resp.Errors, "reminders: "+err.Error())
	}
	resp.Reminders = reminders
	middleware.RecordMessagesSent("reminder", reminders)

	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, resp)
}
