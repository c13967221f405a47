package usecase

import (
	"context"
	"time"

	"github.com/b2bflow/leadflow/internal/entity"
	"github.com/b2bflow/leadflow/internal/infra/integration/gcalendar"
	"github.com/b2bflow/leadflow/internal/infra/integration/pipedrive"
	"github.com/b2bflow/leadflow/internal/infra/queue"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Lead, error)
	FindByToken(ctx context.Context, token string) (*entity.Lead, error)
	ListAll(ctx context.Context) ([]*entity.Lead, error)

	UpdateProfile(ctx context.Context, lead *entity.Lead) error
	SetBooking(ctx context.Context, phone string, schedulingDay time.Time, meetLink string) error
	ResetNotificationFlags(ctx context.Context, phone string) error

	MarkConfirmationSent(ctx context.Context, phone string) error
	MarkRecoverySent(ctx context.Context, phone string) error
	MarkReminderSent(ctx context.Context, phone string) error

	FindPendingConfirmations(ctx context.Context) ([]*entity.Lead, error)
	FindAbandonedLeads(ctx context.Context) ([]*entity.Lead, error)
	FindUpcomingMeetings(ctx context.Context) ([]*entity.Lead, error)
}

// MessageSender é o gateway de mensagens (Z-API). Retorna true somente
// quando o envio foi confirmado.
type MessageSender interface {
	SendMessage(phone, message string) bool
}

type CRMGateway interface {
	ProcessNewLead(companyName, leadName, email, phone string) (*pipedrive.LeadIDs, error)
	UpdateOrganizationDetails(orgID int, details pipedrive.OrganizationDetails) error
	UpdateDealStage(dealID, stageID int) error
	ScheduleConfirmationCall(meeting time.Time, personID, orgID, dealID int) error
	ScheduleMeetingActivity(meeting time.Time, personID, orgID, dealID int) error
}

type CalendarGateway interface {
	CreateEvent(input gcalendar.CreateEventInput) (*gcalendar.Event, error)
	BusySlots(from, to time.Time) ([]gcalendar.BusySlot, error)
}

type TokenGenerator interface {
	Generate(leadID string, expiresAt *time.Time) (string, error)
}

type EventPublisher interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

type AlertMailer interface {
	SendBookingAlert(to, leadName, businessName, meetingAt, meetLink string) error
}
