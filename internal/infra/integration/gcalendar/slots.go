package gcalendar

import "time"

// Grade de atendimento: dias úteis, 09:00 às 19:00.
const (
	slotStartHour = 9
	slotEndHour   = 19
)

type Slot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

type DaySlots struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Slots []Slot `json:"slots"`
}

// SlotRangeEnd devolve o fim da janela de agendamento: último dia do mês
// seguinte ao de now.
func SlotRangeEnd(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 2, 0)
	return firstOfNext.Add(-time.Second) // 23:59:59 do último dia
}

// AvailableSlots cruza os blocos ocupados com a grade de atendimento e gera
// a lista de horários livres de amanhã até o fim do mês seguinte. Fins de
// semana ficam de fora.
func AvailableSlots(busy []BusySlot, now time.Time) []DaySlots {
	end := SlotRangeEnd(now)

	var days []DaySlots
	for day := now.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		date := day.Format("2006-01-02")

		var slots []Slot
		for hour := slotStartHour; hour < slotEndHour; hour++ {
			slotTime := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()).Format("15:04")

			slots = append(slots, Slot{
				Time:      slotTime,
				Available: !isBusy(busy, date, slotTime),
			})
		}

		days = append(days, DaySlots{Date: date, Slots: slots})
	}

	return days
}

func isBusy(busy []BusySlot, date, slotTime string) bool {
	for _, b := range busy {
		if b.Date == date && b.Start <= slotTime && slotTime < b.End {
			return true
		}
	}
	return false
}
