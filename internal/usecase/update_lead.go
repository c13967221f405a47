package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/integration/pipedrive"
)

// Etapa do funil para onde o deal avança quando o lead completa o
// formulário de detalhes.
const stageDetailsCompleted = 2

type UpdateLeadUseCase struct {
	Repo LeadRepository
	CRM  CRMGateway
}

func NewUpdateLeadUseCase(repo LeadRepository, crm CRMGateway) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo, CRM: crm}
}

// Execute mescla as respostas do formulário de detalhes no payload variante
// do lead e espelha no Pipedrive: campos personalizados da organização e
// avanço de etapa do deal. Resposta sem mapeamento de opção é omitida do
// CRM, nunca derruba a atualização.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*UpdateLeadOutput, error) {
	if strings.TrimSpace(input.Phone) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "phone é obrigatório"}
	}

	lead, err := uc.Repo.FindByPhone(ctx, input.Phone)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao consultar lead: " + err.Error()}
	}
	if lead == nil {
		return nil, &DomainError{Code: CodeNotFound, Message: "Lead não encontrado"}
	}

	mergeVariantData(lead, input)

	if input.Name != "" {
		lead.Name = input.Name
	}
	if input.BusinessName != "" {
		lead.BusinessName = input.BusinessName
	}

	if err := uc.Repo.UpdateProfile(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao atualizar lead: " + err.Error()}
	}

	if err := uc.mirrorToCRM(lead, input); err != nil {
		log.Printf("[LEAD_SERVICE] ❌ Falha na integração com Pipedrive: %v", err)
		return nil, &DomainError{Code: CodeCRM, Message: "erro ao processar atualização no CRM"}
	}

	return &UpdateLeadOutput{
		Message: "Lead atualizado com sucesso",
		Token:   lead.LeadToken,
		Status:  "updated",
	}, nil
}

// mergeVariantData popula só o sub-registro do tipo ativo do lead.
func mergeVariantData(lead *entity.Lead, input UpdateLeadInput) {
	switch lead.TypeLead {
	case entity.TypeLeadConsultoria:
		if lead.FollowupData == nil {
			lead.FollowupData = &entity.FollowupData{}
		}
		if len(input.Challenge) > 0 {
			lead.FollowupData.Challenge = input.Challenge
		}
		if input.CustomerStage != "" {
			lead.FollowupData.CustomerStage = input.CustomerStage
		}
		if input.InvestmentCapacity != "" {
			lead.FollowupData.InvestmentCapacity = input.InvestmentCapacity
		}

	case entity.TypeLeadVenda:
		if lead.SalesData == nil {
			lead.SalesData = &entity.SalesData{}
		}
		if input.BusinessTracking != "" {
			lead.SalesData.BusinessTracking = input.BusinessTracking
		}
		if input.Invoicing != "" {
			lead.SalesData.Invoicing = input.Invoicing
		}
		if input.ProductOfInterest != "" {
			lead.SalesData.ProductOfInterest = input.ProductOfInterest
		}
		if input.Collaborators != "" {
			lead.SalesData.Collaborators = input.Collaborators
		}
	}
}

func (uc *UpdateLeadUseCase) mirrorToCRM(lead *entity.Lead, input UpdateLeadInput) error {
	details := pipedrive.OrganizationDetails{
		Segment:      input.BusinessTracking,
		Product:      input.ProductOfInterest,
		ChallengeIDs: pipedrive.ChallengeOptionIDs(input.Challenge),
	}

	// Tradução texto livre -> ID de opção; sem mapeamento, o campo sai do PUT
	if id, ok := pipedrive.InvoicingOptionID(input.Invoicing); ok {
		details.InvoicingID = id
	}
	if id, ok := pipedrive.CollaboratorsOptionID(input.Collaborators); ok {
		details.CollaboratorsID = id
	}
	if id, ok := pipedrive.CustomerStageOptionID(input.CustomerStage); ok {
		details.StageID = id
	}
	if id, ok := pipedrive.InvestmentOptionID(input.InvestmentCapacity); ok {
		details.InvestmentID = id
	}

	if err := uc.CRM.UpdateOrganizationDetails(lead.PipedriveOrganizationID, details); err != nil {
		return err
	}

	if lead.PipedriveDealID == 0 {
		log.Printf("[LEAD_SERVICE] ⚠️ Lead %s sem deal no Pipedrive, etapa não atualizada", lead.Phone)
		return nil
	}

	if err := uc.CRM.UpdateDealStage(lead.PipedriveDealID, stageDetailsCompleted); err != nil {
		return err
	}

	if input.StageID != 0 {
		return uc.CRM.UpdateDealStage(lead.PipedriveDealID, input.StageID)
	}

	return nil
}
