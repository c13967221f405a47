package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeadConsultoria = "consultoria"
	TypeLeadVenda       = "venda"
)

// Retornado pelo repositório quando phone ou email já existem (unique 23505).
// O cadastro trata como "já registrado", não como falha.
var ErrDuplicateLead = errors.New("lead já cadastrado")

// FollowupData — respostas do formulário de consultoria.
type FollowupData struct {
	Challenge          []string `json:"challenge,omitempty"`
	CustomerStage      string   `json:"customer_stage,omitempty"`
	InvestmentCapacity string   `json:"investment_capacity,omitempty"`
}

// SalesData — respostas do formulário de venda.
type SalesData struct {
	BusinessTracking  string `json:"business_tracking,omitempty"`
	Invoicing         string `json:"invoicing,omitempty"`
	ProductOfInterest string `json:"product_of_interest,omitempty"`
	Collaborators     string `json:"collaborators,omitempty"`
}

// Entidade: Lead
//
// Phone e email são chaves naturais (unique). SchedulingDay nulo significa
// "ainda não agendou". As três flags de envio só viram true depois que o
// gateway de mensagens confirmou o envio; um novo agendamento zera as três.
type Lead struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name,omitempty"`
	JobPosition  string `json:"job_position,omitempty"`
	TypeLead     string `json:"type_lead"`

	SchedulingDay *time.Time `json:"scheduling_day,omitempty"`
	MeetLink      string     `json:"meet_link,omitempty"`
	LeadToken     string     `json:"leadtoken,omitempty"`

	// IDs externos (Pipedrive), gravados uma única vez após o provisionamento
	PipedrivePersonID       int `json:"id_person_pipedrive,omitempty"`
	PipedriveOrganizationID int `json:"id_organization_pipedrive,omitempty"`
	PipedriveDealID         int `json:"id_deal_pipedrive,omitempty"`

	ConfirmationSent bool `json:"confirmation_sent"`
	RecoverySent     bool `json:"recovery_sent"`
	ReminderSent     bool `json:"reminder_sent"`

	// Payload variante — só o campo do TypeLead ativo fica populado
	FollowupData *FollowupData `json:"followup_data,omitempty"`
	SalesData    *SalesData    `json:"sales_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, phone, email, businessName, jobPosition, typeLead string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		BusinessName: businessName,
		JobPosition:  jobPosition,
		TypeLead:     typeLead,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.TypeLead != TypeLeadConsultoria && l.TypeLead != TypeLeadVenda {
		return errors.New("type_lead must be consultoria or venda")
	}
	return nil
}

func (l *Lead) HasBooking() bool {
	return l.SchedulingDay != nil
}

// FirstName devolve o primeiro token do nome, ou fallback quando vazio.
// Usado nos templates de mensagem.
func (l *Lead) FirstName(fallback string) string {
	fields := strings.Fields(l.Name)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}
