package usecase

import (
	"context"
	"log"
	"time"

	"github.com/b2bflow/leadflow/internal/timezone"
)

// Janelas de tempo dos três sweeps. O lembrete usa uma banda de tolerância
// (não um limiar exato) para absorver o jitter da cadência do cron: com o
// cron rodando a cada N minutos, a largura da banda precisa ser ≥ 2×N para
// garantir que pelo menos uma execução caia dentro dela.
const (
	ConfirmationDelay = 1 * time.Hour
	RecoveryDelay     = 1 * time.Hour
	ReminderWindowMin = 50 * time.Minute
	ReminderWindowMax = 70 * time.Minute
)

// CronSweepUseCase concentra os três sweeps disparados pelo cron externo.
//
// Cada sweep é idempotente: a flag correspondente só vira true depois do
// gateway confirmar o envio, e lead com flag true é pulado nas próximas
// execuções. Falha em um lead é logada e o sweep segue para o próximo.
type CronSweepUseCase struct {
	Repo   LeadRepository
	Sender MessageSender

	// Now é injetável nos testes; default timezone.Now
	Now func() time.Time
}

func NewCronSweepUseCase(repo LeadRepository, sender MessageSender) *CronSweepUseCase {
	return &CronSweepUseCase{
		Repo:   repo,
		Sender: sender,
		Now:    timezone.Now,
	}
}

// SendConfirmations envia a confirmação 1h DEPOIS do lead ter agendado.
// O horário do agendamento é o updated_at (bump do SetBooking).
func (uc *CronSweepUseCase) SendConfirmations(ctx context.Context) (int, error) {
	log.Println("[CRON_SWEEP] Iniciando verificação de confirmação de agendamento...")

	leads, err := uc.Repo.FindPendingConfirmations(ctx)
	if err != nil {
		return 0, &TechnicalError{Code: CodeDatabase, Message: "erro ao buscar confirmações pendentes: " + err.Error()}
	}

	now := uc.now()
	count := 0

	for _, lead := range leads {
		if lead.SchedulingDay == nil || lead.ConfirmationSent {
			continue
		}

		bookedAt := timezone.Normalize(lead.UpdatedAt)
		if now.Sub(bookedAt) < ConfirmationDelay {
			continue
		}

		meeting := timezone.Normalize(*lead.SchedulingDay)
		msg := confirmationMessage(lead.FirstName("visitante"), meeting)

		if !uc.Sender.SendMessage(lead.Phone, msg) {
			continue
		}

		if err := uc.Repo.MarkConfirmationSent(ctx, lead.Phone); err != nil {
			log.Printf("[CRON_SWEEP] ⚠️ Erro ao marcar confirmação do lead %s: %v", lead.ID, err)
			continue
		}

		log.Printf("[CRON_SWEEP] ✅ Confirmação enviada para: %s", lead.Name)
		count++
	}

	return count, nil
}

// SendRecoveries recupera leads cadastrados há mais de 1h que NÃO agendaram.
func (uc *CronSweepUseCase) SendRecoveries(ctx context.Context) (int, error) {
	log.Println("[CRON_SWEEP] Iniciando verificação de recuperação (abandono)...")

	leads, err := uc.Repo.FindAbandonedLeads(ctx)
	if err != nil {
		return 0, &TechnicalError{Code: CodeDatabase, Message: "erro ao buscar leads abandonados: " + err.Error()}
	}

	now := uc.now()
	count := 0

	for _, lead := range leads {
		if lead.SchedulingDay != nil || lead.RecoverySent {
			continue
		}

		createdAt := timezone.Normalize(lead.CreatedAt)
		if now.Sub(createdAt) < RecoveryDelay {
			continue
		}

		msg := recoveryMessage(lead.FirstName("visitante"))

		if !uc.Sender.SendMessage(lead.Phone, msg) {
			continue
		}

		if err := uc.Repo.MarkRecoverySent(ctx, lead.Phone); err != nil {
			log.Printf("[CRON_SWEEP] ⚠️ Erro ao marcar recuperação do lead %s: %v", lead.ID, err)
			continue
		}

		log.Printf("[CRON_SWEEP] ✅ Recuperação enviada para: %s", lead.Name)
		count++
	}

	return count, nil
}

// SendReminders envia o lembrete quando faltam ~60 minutos para a reunião
// (banda de 50 a 70 para garantir a captura).
func (uc *CronSweepUseCase) SendReminders(ctx context.Context) (int, error) {
	log.Println("[CRON_SWEEP] Iniciando verificação de lembrete de reunião...")

	leads, err := uc.Repo.FindUpcomingMeetings(ctx)
	if err != nil {
		return 0, &TechnicalError{Code: CodeDatabase, Message: "erro ao buscar reuniões próximas: " + err.Error()}
	}

	now := uc.now()
	count := 0

	for _, lead := range leads {
		if lead.SchedulingDay == nil || lead.ReminderSent {
			continue
		}

		meeting := timezone.Normalize(*lead.SchedulingDay)
		remaining := meeting.Sub(now)

		if remaining < ReminderWindowMin || remaining > ReminderWindowMax {
			continue
		}

		msg := reminderMessage(lead.FirstName("Cliente"), meeting, lead.MeetLink)

		if !uc.Sender.SendMessage(lead.Phone, msg) {
			continue
		}

		if err := uc.Repo.MarkReminderSent(ctx, lead.Phone); err != nil {
			log.Printf("[CRON_SWEEP] ⚠️ Erro ao marcar lembrete do lead %s: %v", lead.ID, err)
			continue
		}

		log.Printf("[CRON_SWEEP] ✅ Lembrete 1H enviado para: %s", lead.Name)
		count++
	}

	return count, nil
}

func (uc *CronSweepUseCase) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return timezone.Now()
}
