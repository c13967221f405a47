package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo      LeadRepository
	CRM       CRMGateway
	Tokens    TokenGenerator
	Publisher EventPublisher // opcional
}

func NewCreateLeadUseCase(repo LeadRepository, crm CRMGateway, tokens TokenGenerator, publisher EventPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:      repo,
		CRM:       crm,
		Tokens:    tokens,
		Publisher: publisher,
	}
}

// Execute cadastra um lead novo ou reaproveita o existente.
//
// Re-cadastro (mesmo email E mesmo telefone) zera as flags de nudge e
// devolve o token já emitido — nada é re-provisionado no Pipedrive.
// Cadastro novo provisiona org -> pessoa -> deal ANTES de persistir: sem os
// três IDs não existe lead, porque todo o espelhamento futuro depende deles.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: CodeValidation, Message: joinValidationErrors(errs)}
	}

	existing, err := uc.Repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao consultar lead: " + err.Error()}
	}

	if existing != nil && existing.Phone == input.Phone {
		// Re-submissão: a linha do tempo de nudges recomeça
		if err := uc.Repo.ResetNotificationFlags(ctx, existing.Phone); err != nil {
			return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao reiniciar flags: " + err.Error()}
		}

		log.Printf("[LEAD_SERVICE] Lead já cadastrado, reaproveitando token: %s", existing.Name)

		return &CreateLeadOutput{
			Message: "Lead já cadastrado",
			Token:   existing.LeadToken,
			Status:  "updated",
		}, nil
	}

	lead, err := entity.NewLead(input.Name, input.Phone, input.Email, input.BusinessName, input.JobPosition, input.TypeLead)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	token, err := uc.Tokens.Generate(input.Phone, nil)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao emitir token de sessão: " + err.Error()}
	}
	lead.LeadToken = token

	ids, err := uc.CRM.ProcessNewLead(input.BusinessName, input.Name, input.Email, input.Phone)
	if err != nil {
		log.Printf("[LEAD_SERVICE] ❌ Falha no provisionamento do CRM: %v", err)
		return nil, &DomainError{Code: CodeCRM, Message: "erro ao processar cadastro no CRM"}
	}

	lead.PipedrivePersonID = ids.PersonID
	lead.PipedriveOrganizationID = ids.OrganizationID
	lead.PipedriveDealID = ids.DealID

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrDuplicateLead) {
			return nil, &DomainError{Code: CodeAlreadyRegistered, Message: "Registro já existe"}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao persistir lead: " + err.Error()}
	}

	log.Printf("[LEAD_SERVICE] ✅ Lead criado: %s (deal %d)", lead.Name, lead.PipedriveDealID)

	uc.publish(ctx, queue.EventLeadCreated, lead)

	return &CreateLeadOutput{
		Message: "Lead criado com sucesso",
		Token:   lead.LeadToken,
		Status:  "created",
	}, nil
}

func (uc *CreateLeadUseCase) publish(ctx context.Context, event string, lead *entity.Lead) {
	if uc.Publisher == nil {
		return
	}

	err := uc.Publisher.PublishLeadEvent(ctx, queue.LeadEventPayload{
		Event:         event,
		LeadID:        lead.ID,
		Name:          lead.Name,
		Phone:         lead.Phone,
		Email:         lead.Email,
		TypeLead:      lead.TypeLead,
		SchedulingDay: lead.SchedulingDay,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		log.Printf("[LEAD_SERVICE] ⚠️ Falha ao publicar evento %s: %v", event, err)
	}
}
