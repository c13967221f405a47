package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"github.com/b2bflow/leadflow/internal/entity"
)

const leadColumns = `
	id, name, phone, email, business_name, job_position, type_lead,
	scheduling_day, meet_link, lead_token,
	pipedrive_person_id, pipedrive_organization_id, pipedrive_deal_id,
	confirmation_sent, recovery_sent, reminder_sent,
	followup_data, sales_data,
	created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	followup, err := marshalVariant(lead.FollowupData)
	if err != nil {
		return err
	}
	sales, err := marshalVariant(lead.SalesData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (
			id, name, phone, email, business_name, job_position, type_lead,
			scheduling_day, meet_link, lead_token,
			pipedrive_person_id, pipedrive_organization_id, pipedrive_deal_id,
			followup_data, sales_data,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = r.DB.QueryRowContext(ctx, query,
		lead.ID, lead.Name, lead.Phone, lead.Email,
		nullString(lead.BusinessName), nullString(lead.JobPosition), lead.TypeLead,
		lead.SchedulingDay, nullString(lead.MeetLink), lead.LeadToken,
		nullInt(lead.PipedrivePersonID), nullInt(lead.PipedriveOrganizationID), nullInt(lead.PipedriveDealID),
		followup, sales,
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return entity.ErrDuplicateLead
	}
	return err
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE email = $1`, email)
}

func (r *LeadRepository) FindByPhone(ctx context.Context, phone string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE phone = $1`, phone)
}

func (r *LeadRepository) FindByToken(ctx context.Context, token string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE lead_token = $1`, token)
}

func (r *LeadRepository) ListAll(ctx context.Context) ([]*entity.Lead, error) {
	return r.findMany(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
}

// UpdateProfile regrava os campos de perfil e o payload variante do lead.
// Flags e agendamento ficam fora daqui de propósito.
func (r *LeadRepository) UpdateProfile(ctx context.Context, lead *entity.Lead) error {
	followup, err := marshalVariant(lead.FollowupData)
	if err != nil {
		return err
	}
	sales, err := marshalVariant(lead.SalesData)
	if err != nil {
		return err
	}

	query := `
		UPDATE leads SET
			name = $2,
			business_name = $3,
			job_position = $4,
			followup_data = $5,
			sales_data = $6,
			updated_at = NOW()
		WHERE phone = $1
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.Phone, lead.Name, nullString(lead.BusinessName), nullString(lead.JobPosition),
		followup, sales,
	)
	return err
}

// SetBooking grava o agendamento e zera as três flags num statement só —
// o novo agendamento reinicia a linha do tempo de nudges.
func (r *LeadRepository) SetBooking(ctx context.Context, phone string, schedulingDay time.Time, meetLink string) error {
	query := `
		UPDATE leads SET
			scheduling_day = $2,
			meet_link = $3,
			confirmation_sent = FALSE,
			recovery_sent = FALSE,
			reminder_sent = FALSE,
			updated_at = NOW()
		WHERE phone = $1
	`
	_, err := r.DB.ExecContext(ctx, query, phone, schedulingDay, nullString(meetLink))
	return err
}

// ResetNotificationFlags zera as flags sem tocar no agendamento.
// Usado no re-cadastro de um lead já existente.
func (r *LeadRepository) ResetNotificationFlags(ctx context.Context, phone string) error {
	query := `
		UPDATE leads SET
			confirmation_sent = FALSE,
			recovery_sent = FALSE,
			reminder_sent = FALSE,
			updated_at = NOW()
		WHERE phone = $1
	`
	_, err := r.DB.ExecContext(ctx, query, phone)
	return err
}

// Cada Mark* toca exatamente uma flag. Os sweeps nunca mexem nas outras duas.

func (r *LeadRepository) MarkConfirmationSent(ctx context.Context, phone string) error {
	return r.setFlag(ctx, phone, "confirmation_sent")
}

func (r *LeadRepository) MarkRecoverySent(ctx context.Context, phone string) error {
	return r.setFlag(ctx, phone, "recovery_sent")
}

func (r *LeadRepository) MarkReminderSent(ctx context.Context, phone string) error {
	return r.setFlag(ctx, phone, "reminder_sent")
}

func (r *LeadRepository) setFlag(ctx context.Context, phone, column string) error {
	// column vem de uma lista fixa interna, nunca de input
	query := `UPDATE leads SET ` + column + ` = TRUE, updated_at = NOW() WHERE phone = $1`
	_, err := r.DB.ExecContext(ctx, query, phone)
	return err
}

// Predicados de ciclo de vida usados pelos sweeps do cron.

func (r *LeadRepository) FindPendingConfirmations(ctx context.Context) ([]*entity.Lead, error) {
	return r.findMany(ctx, `
		SELECT `+leadColumns+` FROM leads
		WHERE scheduling_day IS NOT NULL AND confirmation_sent = FALSE`)
}

func (r *LeadRepository) FindAbandonedLeads(ctx context.Context) ([]*entity.Lead, error) {
	return r.findMany(ctx, `
		SELECT `+leadColumns+` FROM leads
		WHERE scheduling_day IS NULL AND recovery_sent = FALSE`)
}

func (r *LeadRepository) FindUpcomingMeetings(ctx context.Context) ([]*entity.Lead, error) {
	return r.findMany(ctx, `
		SELECT `+leadColumns+` FROM leads
		WHERE scheduling_day IS NOT NULL AND reminder_sent = FALSE`)
}

func (r *LeadRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.Lead, error) {
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) findMany(ctx context.Context, query string) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead          entity.Lead
		businessName  sql.NullString
		jobPosition   sql.NullString
		schedulingDay sql.NullTime
		meetLink      sql.NullString
		personID      sql.NullInt64
		orgID         sql.NullInt64
		dealID        sql.NullInt64
		followup      []byte
		sales         []byte
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Email,
		&businessName, &jobPosition, &lead.TypeLead,
		&schedulingDay, &meetLink, &lead.LeadToken,
		&personID, &orgID, &dealID,
		&lead.ConfirmationSent, &lead.RecoverySent, &lead.ReminderSent,
		&followup, &sales,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.BusinessName = businessName.String
	lead.JobPosition = jobPosition.String
	lead.MeetLink = meetLink.String
	if schedulingDay.Valid {
		day := schedulingDay.Time
		lead.SchedulingDay = &day
	}
	lead.PipedrivePersonID = int(personID.Int64)
	lead.PipedriveOrganizationID = int(orgID.Int64)
	lead.PipedriveDealID = int(dealID.Int64)

	if len(followup) > 0 {
		var data entity.FollowupData
		if err := json.Unmarshal(followup, &data); err != nil {
			return nil, err
		}
		lead.FollowupData = &data
	}
	if len(sales) > 0 {
		var data entity.SalesData
		if err := json.Unmarshal(sales, &data); err != nil {
			return nil, err
		}
		lead.SalesData = &data
	}

	return &lead, nil
}

func marshalVariant(v interface{}) ([]byte, error) {
	switch data := v.(type) {
	case *entity.FollowupData:
		if data == nil {
			return nil, nil
		}
	case *entity.SalesData:
		if data == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}
