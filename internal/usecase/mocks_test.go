package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/integration/gcalendar"
	"github.com/b2bflow/leadflow/internal/infra/integration/pipedrive"
	"github.com/b2bflow/leadflow/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByPhone(ctx context.Context, phone string) (*entity.Lead, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByToken(ctx context.Context, token string) (*entity.Lead, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateProfile(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) SetBooking(ctx context.Context, phone string, schedulingDay time.Time, meetLink string) error {
	args := m.Called(ctx, phone, schedulingDay, meetLink)
	return args.Error(0)
}

func (m *MockLeadRepository) ResetNotificationFlags(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkConfirmationSent(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkRecoverySent(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkReminderSent(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockLeadRepository) FindPendingConfirmations(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAbandonedLeads(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindUpcomingMeetings(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

// MockMessageSender
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendMessage(phone, message string) bool {
	args := m.Called(phone, message)
	return args.Bool(0)
}

// MockCRMGateway
type MockCRMGateway struct {
	mock.Mock
}

func (m *MockCRMGateway) ProcessNewLead(companyName, leadName, email, phone string) (*pipedrive.LeadIDs, error) {
	args := m.Called(companyName, leadName, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipedrive.LeadIDs), args.Error(1)
}

func (m *MockCRMGateway) UpdateOrganizationDetails(orgID int, details pipedrive.OrganizationDetails) error {
	args := m.Called(orgID, details)
	return args.Error(0)
}

func (m *MockCRMGateway) UpdateDealStage(dealID, stageID int) error {
	args := m.Called(dealID, stageID)
	return args.Error(0)
}

func (m *MockCRMGateway) ScheduleConfirmationCall(meeting time.Time, personID, orgID, dealID int) error {
	args := m.Called(meeting, personID, orgID, dealID)
	return args.Error(0)
}

func (m *MockCRMGateway) ScheduleMeetingActivity(meeting time.Time, personID, orgID, dealID int) error {
	args := m.Called(meeting, personID, orgID, dealID)
	return args.Error(0)
}

// MockCalendarGateway
type MockCalendarGateway struct {
	mock.Mock
}

func (m *MockCalendarGateway) CreateEvent(input gcalendar.CreateEventInput) (*gcalendar.Event, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gcalendar.Event), args.Error(1)
}

func (m *MockCalendarGateway) BusySlots(from, to time.Time) ([]gcalendar.BusySlot, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gcalendar.BusySlot), args.Error(1)
}

// MockTokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) Generate(leadID string, expiresAt *time.Time) (string, error) {
	args := m.Called(leadID, expiresAt)
	return args.String(0), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockAlertMailer
type MockAlertMailer struct {
	mock.Mock
}

func (m *MockAlertMailer) SendBookingAlert(to, leadName, businessName, meetingAt, meetLink string) error {
	args := m.Called(to, leadName, businessName, meetingAt, meetLink)
	return args.Error(0)
}
