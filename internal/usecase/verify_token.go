package usecase

import (
	"context"

	"github.com/b2bflow/leadflow/internal/timezone"
)

type VerifyTokenUseCase struct {
	Repo LeadRepository
}

func NewVerifyTokenUseCase(repo LeadRepository) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{Repo: repo}
}

// Execute resolve o leadtoken e devolve o perfil para o front re-hidratar a
// sessão, com data e hora da reunião separadas no fuso canônico.
func (uc *VerifyTokenUseCase) Execute(ctx context.Context, token string) (*LeadProfileOutput, error) {
	lead, err := uc.Repo.FindByToken(ctx, token)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "erro ao consultar lead: " + err.Error()}
	}
	if lead == nil {
		return nil, &DomainError{Code: CodeInvalidToken, Message: "Token inválido"}
	}

	out := &LeadProfileOutput{
		ID:           lead.ID,
		Name:         lead.Name,
		BusinessName: lead.BusinessName,
		Email:        lead.Email,
		Phone:        lead.Phone,
		JobPosition:  lead.JobPosition,
	}

	if lead.SchedulingDay != nil {
		meeting := timezone.Normalize(*lead.SchedulingDay)
		out.AppointmentDate = meeting.Format("2006-01-02")
		out.AppointmentTime = meeting.Format("15:04")
	}

	return out, nil
}
