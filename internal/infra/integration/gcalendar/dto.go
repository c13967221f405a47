package gcalendar

import "time"

type CreateEventInput struct {
	Summary       string
	Description   string
	Start         time.Time // já no fuso canônico
	DurationHours int       // 0 = 1 hora
	LeadEmail     string
	LeadName      string
}

// Event é o recorte que interessa do evento criado.
type Event struct {
	ID       string
	HTMLLink string // link visualizável do evento
	MeetLink string // sala do Google Meet gerada
}

// BusySlot é um bloco ocupado da agenda, já no fuso canônico.
type BusySlot struct {
	Date  string `json:"data"`        // YYYY-MM-DD
	Start string `json:"hora_inicio"` // HH:MM
	End   string `json:"hora_fim"`    // HH:MM
}

// --- wire format da API ---

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type attendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type conferenceSolutionKey struct {
	Type string `json:"type"`
}

type conferenceCreateRequest struct {
	RequestID             string                `json:"requestId"`
	ConferenceSolutionKey conferenceSolutionKey `json:"conferenceSolutionKey"`
}

type conferenceData struct {
	CreateRequest *conferenceCreateRequest `json:"createRequest,omitempty"`
	EntryPoints   []entryPoint             `json:"entryPoints,omitempty"`
}

type entryPoint struct {
	URI string `json:"uri"`
}

type eventRequest struct {
	Summary        string          `json:"summary"`
	Description    string          `json:"description"`
	Start          eventTime       `json:"start"`
	End            eventTime       `json:"end"`
	Attendees      []attendee      `json:"attendees"`
	ConferenceData *conferenceData `json:"conferenceData,omitempty"`
}

type eventResponse struct {
	ID             string          `json:"id"`
	HTMLLink       string          `json:"htmlLink"`
	HangoutLink    string          `json:"hangoutLink"`
	ConferenceData *conferenceData `json:"conferenceData"`
}

func (r *eventResponse) meetLink() string {
	if r.HangoutLink != "" {
		return r.HangoutLink
	}
	if r.ConferenceData != nil && len(r.ConferenceData.EntryPoints) > 0 {
		return r.ConferenceData.EntryPoints[0].URI
	}
	return ""
}

type freeBusyItem struct {
	ID string `json:"id"`
}

type freeBusyRequest struct {
	TimeMin string         `json:"timeMin"`
	TimeMax string         `json:"timeMax"`
	Items   []freeBusyItem `json:"items"`
}

type busyRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []busyRange `json:"busy"`
	} `json:"calendars"`
}
