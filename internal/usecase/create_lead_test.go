package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/integration/pipedrive"
)

func validCreateLeadInput() CreateLeadInput {
	return CreateLeadInput{
		Name:         "João Silva",
		Phone:        "11987654321",
		Email:        "joao@example.com",
		BusinessName: "Padaria do João",
		JobPosition:  "Sócio",
		TypeLead:     entity.TypeLeadConsultoria,
	}
}

// TestCreateLeadSuccess - fluxo completo: token, provisionamento no CRM e persistência
func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)
	mockQueue := new(MockEventPublisher)

	input := validCreateLeadInput()

	mockRepo.On("FindByEmail", ctx, input.Email).Return(nil, nil)
	mockTokens.On("Generate", input.Phone, (*time.Time)(nil)).Return("jwt-token-abc", nil)
	mockCRM.On("ProcessNewLead", input.BusinessName, input.Name, input.Email, input.Phone).
		Return(&pipedrive.LeadIDs{OrganizationID: 10, PersonID: 20, DealID: 30}, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadEvent", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, mockQueue)

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "created", output.Status)
	assert.Equal(t, "jwt-token-abc", output.Token)

	// O lead persistido carrega os três IDs do Pipedrive
	created := mockRepo.Calls[1].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, 10, created.PipedriveOrganizationID)
	assert.Equal(t, 20, created.PipedrivePersonID)
	assert.Equal(t, 30, created.PipedriveDealID)
	assert.Equal(t, "jwt-token-abc", created.LeadToken)

	mockQueue.AssertCalled(t, "PublishLeadEvent", ctx, mock.Anything)
}

// TestCreateLeadDedupe - re-submissão (mesmo email e telefone) reaproveita o token
// e zera as flags de nudge, sem tocar no CRM
func TestCreateLeadDedupe(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)

	input := validCreateLeadInput()

	existing := &entity.Lead{
		ID:               "lead-1",
		Name:             input.Name,
		Phone:            input.Phone,
		Email:            input.Email,
		TypeLead:         input.TypeLead,
		LeadToken:        "token-antigo",
		ConfirmationSent: true,
		RecoverySent:     true,
	}

	mockRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)
	mockRepo.On("ResetNotificationFlags", ctx, input.Phone).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, nil)

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "updated", output.Status)
	assert.Equal(t, "token-antigo", output.Token)

	mockRepo.AssertCalled(t, "ResetNotificationFlags", ctx, input.Phone)
	mockCRM.AssertNotCalled(t, "ProcessNewLead", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockTokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreateLeadSameEmailDifferentPhone - mesmo email com telefone diferente NÃO
// é dedupe: segue como cadastro novo e esbarra no unique do banco
func TestCreateLeadSameEmailDifferentPhone(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)

	input := validCreateLeadInput()

	existing := &entity.Lead{
		ID:        "lead-1",
		Phone:     "11911112222", // outro telefone
		Email:     input.Email,
		LeadToken: "token-antigo",
	}

	mockRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)
	mockTokens.On("Generate", input.Phone, (*time.Time)(nil)).Return("jwt-token-abc", nil)
	mockCRM.On("ProcessNewLead", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&pipedrive.LeadIDs{OrganizationID: 1, PersonID: 2, DealID: 3}, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrDuplicateLead)

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, nil)

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeAlreadyRegistered, domainErr.Code)
}

// TestCreateLeadCRMFailureAborts - falha no provisionamento aborta antes de persistir
func TestCreateLeadCRMFailureAborts(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)

	input := validCreateLeadInput()

	mockRepo.On("FindByEmail", ctx, input.Email).Return(nil, nil)
	mockTokens.On("Generate", input.Phone, (*time.Time)(nil)).Return("jwt-token-abc", nil)
	mockCRM.On("ProcessNewLead", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("pipedrive: status 500"))

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, nil)

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreateLeadValidationFailure - input inválido nem consulta o banco
func TestCreateLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, nil)

	tests := []struct {
		name  string
		input CreateLeadInput
	}{
		{"email inválido", CreateLeadInput{Name: "João", Phone: "11987654321", Email: "nao-é-email", TypeLead: "consultoria"}},
		{"telefone inválido", CreateLeadInput{Name: "João", Phone: "123", Email: "joao@example.com", TypeLead: "consultoria"}},
		{"type_lead desconhecido", CreateLeadInput{Name: "João", Phone: "11987654321", Email: "joao@example.com", TypeLead: "parceria"}},
		{"nome vazio", CreateLeadInput{Phone: "11987654321", Email: "joao@example.com", TypeLead: "venda"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(ctx, tt.input)

			assert.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, IsDomainError(err))
		})
	}

	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

// TestCreateLeadPublisherFailureIsSoft - falha na fila não derruba o cadastro
func TestCreateLeadPublisherFailureIsSoft(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCRM := new(MockCRMGateway)
	mockTokens := new(MockTokenGenerator)
	mockQueue := new(MockEventPublisher)

	input := validCreateLeadInput()

	mockRepo.On("FindByEmail", ctx, input.Email).Return(nil, nil)
	mockTokens.On("Generate", input.Phone, (*time.Time)(nil)).Return("jwt-token-abc", nil)
	mockCRM.On("ProcessNewLead", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&pipedrive.LeadIDs{OrganizationID: 1, PersonID: 2, DealID: 3}, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadEvent", ctx, mock.Anything).Return(errors.New("amqp: connection closed"))

	uc := NewCreateLeadUseCase(mockRepo, mockCRM, mockTokens, mockQueue)

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "created", output.Status)
}
