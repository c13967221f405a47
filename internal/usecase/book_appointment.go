package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/integration/gcalendar"
	"github.com/b2bflow/leadflow/internal/infra/queue"
	"github.com/b2bflow/leadflow/internal/timezone"
)

// Etapa do funil após o agendamento da reunião.
const stageMeetingBooked = 3

const bookingLayout = "2006-01-02 15:04"

type BookAppointmentUseCase struct {
	Repo       LeadRepository
	Calendar   CalendarGateway
	CRM        CRMGateway
	Mailer     AlertMailer    // opcional
	Publisher  EventPublisher // opcional
	OwnerEmail string
}

func NewBookAppointmentUseCase(repo LeadRepository, calendar CalendarGateway, crm CRMGateway, mailer AlertMailer, publisher EventPublisher, ownerEmail string) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{
		Repo:       repo,
		Calendar:   calendar,
		CRM:        crm,
		Mailer:     mailer,
		Publisher:  publisher,
		OwnerEmail: ownerEmail,
	}
}

// Execute agenda a reunião do lead.
//
// Depois que o evento existe no calendário NÃO há rollback: falha em
// qualquer passo seguinte é logada e devolvida como resultado genérico de
// erro interno, com o evento mantido (best-effort, ver também a nota de
// double-submit no DESIGN.md).
func (uc *BookAppointmentUseCase) Execute(ctx context.Context, input BookAppointmentInput) (*BookAppointmentOutput, error) {
	lead, err := uc.Repo.FindByToken(ctx, input.LeadToken)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao consultar lead: " + err.Error()}
	}
	if lead == nil {
		return nil, &DomainError{Code: CodeNotFound, Message: "Lead não encontrado"}
	}

	if input.Date == "" || input.Time == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Dados de data/hora ausentes ou inválidos"}
	}

	start, err := time.ParseInLocation(bookingLayout, input.Date+" "+input.Time, timezone.Location())
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "Dados de data/hora ausentes ou inválidos: " + err.Error()}
	}

	summary := fmt.Sprintf("Reunião: %s | %s", lead.Name, businessOrNA(lead))
	description := fmt.Sprintf(
		"Detalhes do Lead:\n- Origem: Formulário de Captura\n- Data da Requisição: %s",
		timezone.Now().Format("02/01/2006 15:04"),
	)

	log.Printf("[APPOINTMENT_SERVICE] Criando evento no calendário para %s...", start)

	event, err := uc.Calendar.CreateEvent(gcalendar.CreateEventInput{
		Summary:     summary,
		Description: description,
		Start:       start,
		LeadEmail:   lead.Email,
		LeadName:    lead.Name,
	})
	if err != nil || event == nil {
		log.Printf("[APPOINTMENT_SERVICE] ❌ Falha na criação do evento: %v", err)
		return &BookAppointmentOutput{Success: false, Error: "Resposta inválida da API do calendário"}, nil
	}

	// Daqui em diante o evento já existe; sem transação compensatória.

	if err := uc.Repo.SetBooking(ctx, lead.Phone, start, event.MeetLink); err != nil {
		log.Printf("[APPOINTMENT_SERVICE] ❌ Evento criado mas o agendamento não foi persistido: %v", err)
		return &BookAppointmentOutput{Success: false, Error: "Ocorreu um erro interno ao processar o agendamento."}, nil
	}

	if err := uc.mirrorToCRM(lead, start); err != nil {
		log.Printf("[APPOINTMENT_SERVICE] ❌ Falha no espelhamento do CRM: %v", err)
		return &BookAppointmentOutput{Success: false, Error: "Ocorreu um erro interno ao processar o agendamento."}, nil
	}

	uc.notify(ctx, lead, start, event.MeetLink)

	log.Printf("[APPOINTMENT_SERVICE] ✅ Reunião agendada: %s em %s", lead.Name, start)

	return &BookAppointmentOutput{
		Success:   true,
		ExpiresAt: &start,
		EventID:   event.ID,
	}, nil
}

func (uc *BookAppointmentUseCase) mirrorToCRM(lead *entity.Lead, start time.Time) error {
	if err := uc.CRM.UpdateDealStage(lead.PipedriveDealID, stageMeetingBooked); err != nil {
		return err
	}

	if err := uc.CRM.ScheduleConfirmationCall(start, lead.PipedrivePersonID, lead.PipedriveOrganizationID, lead.PipedriveDealID); err != nil {
		return err
	}

	return uc.CRM.ScheduleMeetingActivity(start, lead.PipedrivePersonID, lead.PipedriveOrganizationID, lead.PipedriveDealID)
}

// notify dispara os avisos best-effort (email interno + evento de funil);
// falha aqui nunca derruba o agendamento já persistido.
func (uc *BookAppointmentUseCase) notify(ctx context.Context, lead *entity.Lead, start time.Time, meetLink string) {
	if uc.Mailer != nil && uc.OwnerEmail != "" {
		err := uc.Mailer.SendBookingAlert(
			uc.OwnerEmail, lead.Name, businessOrNA(lead),
			start.Format("02/01/2006 15:04"), meetLink,
		)
		if err != nil {
			log.Printf("[APPOINTMENT_SERVICE] ⚠️ Falha ao enviar alerta por email: %v", err)
		}
	}

	if uc.Publisher != nil {
		err := uc.Publisher.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:         queue.EventLeadBooked,
			LeadID:        lead.ID,
			Name:          lead.Name,
			Phone:         lead.Phone,
			Email:         lead.Email,
			TypeLead:      lead.TypeLead,
			SchedulingDay: &start,
			OccurredAt:    time.Now(),
		})
		if err != nil {
			log.Printf("[APPOINTMENT_SERVICE] ⚠️ Falha ao publicar evento de agendamento: %v", err)
		}
	}
}

// ListAvailableSlots devolve a grade de horários livres; erro na consulta
// do calendário vira lista vazia, nunca 5xx para o front.
func (uc *BookAppointmentUseCase) ListAvailableSlots(ctx context.Context) []gcalendar.DaySlots {
	now := timezone.Now()

	busy, err := uc.Calendar.BusySlots(now, gcalendar.SlotRangeEnd(now))
	if err != nil {
		log.Printf("[APPOINTMENT_SERVICE] ⚠️ Erro ao listar horários ocupados: %v", err)
		return []gcalendar.DaySlots{}
	}

	return gcalendar.AvailableSlots(busy, now)
}

func businessOrNA(lead *entity.Lead) string {
	if lead.BusinessName == "" {
		return "N/A"
	}
	return lead.BusinessName
}
