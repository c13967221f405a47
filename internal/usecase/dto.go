package usecase

import "time"

type CreateLeadInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	JobPosition  string `json:"job_position"`
	TypeLead     string `json:"type_lead"`
}

type CreateLeadOutput struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Status  string `json:"status"` // created | updated
}

type UpdateLeadInput struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`

	// Formulário de venda
	BusinessTracking  string `json:"business_tracking"`
	Invoicing         string `json:"invoicing"`
	ProductOfInterest string `json:"product_of_interest"`
	Collaborators     string `json:"collaborators"`

	// Formulário de consultoria
	Challenge          []string `json:"challenge"`
	CustomerStage      string   `json:"customer_stage"`
	InvestmentCapacity string   `json:"investment_capacity"`

	// Avanço explícito de etapa, opcional
	StageID int `json:"stage_id"`
}

type UpdateLeadOutput struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Status  string `json:"status"`
}

type BookAppointmentInput struct {
	LeadToken string `json:"leadToken"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
}

type BookAppointmentOutput struct {
	Success   bool       `json:"success"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // início da reunião agendada
	EventID   string     `json:"event_id,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// LeadProfileOutput é o que o verify-token devolve para o front
// re-hidratar a sessão do lead.
type LeadProfileOutput struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BusinessName    string `json:"business_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	JobPosition     string `json:"job_position"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
}
