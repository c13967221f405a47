package gcalendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/b2bflow/leadflow/internal/timezone"
)

const defaultDurationHours = 1

type Client struct {
	baseURL     string
	calendarID  string
	accessToken string
	httpClient  *http.Client
}

func NewClient(accessToken, calendarID, baseURL string) *Client {
	if accessToken == "" {
		log.Println("[GCALENDAR] ⚠️ ACCESS_TOKEN não configurado")
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/calendar/v3"
	}

	return &Client{
		baseURL:     baseURL,
		calendarID:  calendarID,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

func NewClientFromEnv() *Client {
	return NewClient(
		os.Getenv("GOOGLE_CALENDAR_ACCESS_TOKEN"),
		os.Getenv("GOOGLE_CALENDAR_ID"),
		os.Getenv("GOOGLE_CALENDAR_BASE_URL"),
	)
}

// CreateEvent cria o evento com sala do Meet e convida o lead. Devolve nil
// junto com o erro quando a API não retorna um evento utilizável.
func (c *Client) CreateEvent(input CreateEventInput) (*Event, error) {
	duration := input.DurationHours
	if duration <= 0 {
		duration = defaultDurationHours
	}
	end := input.Start.Add(time.Duration(duration) * time.Hour)

	body := eventRequest{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       eventTime{DateTime: input.Start.Format(time.RFC3339), TimeZone: timezone.Location().String()},
		End:         eventTime{DateTime: end.Format(time.RFC3339), TimeZone: timezone.Location().String()},
		Attendees: []attendee{
			{Email: input.LeadEmail, DisplayName: input.LeadName},
		},
		ConferenceData: &conferenceData{
			CreateRequest: &conferenceCreateRequest{
				RequestID:             fmt.Sprintf("meet-%d", time.Now().Unix()),
				ConferenceSolutionKey: conferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/calendars/%s/events?conferenceDataVersion=1&sendUpdates=all", c.baseURL, c.calendarID)
	raw, err := c.do(http.MethodPost, url, payload)
	if err != nil {
		return nil, err
	}

	var resp eventResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}

	if resp.ID == "" || resp.HTMLLink == "" {
		return nil, fmt.Errorf("resposta inválida da API do Google")
	}

	event := &Event{
		ID:       resp.ID,
		HTMLLink: resp.HTMLLink,
		MeetLink: resp.meetLink(),
	}

	log.Printf("[GCALENDAR] ✅ Evento criado: %s", event.HTMLLink)
	return event, nil
}

// BusySlots consulta o freebusy da agenda entre from e to e devolve os
// blocos ocupados já no fuso canônico.
func (c *Client) BusySlots(from, to time.Time) ([]BusySlot, error) {
	body := freeBusyRequest{
		TimeMin: from.UTC().Format(time.RFC3339),
		TimeMax: to.UTC().Format(time.RFC3339),
		Items:   []freeBusyItem{{ID: c.calendarID}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(http.MethodPost, c.baseURL+"/freeBusy", payload)
	if err != nil {
		return nil, err
	}

	var resp freeBusyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}

	var slots []BusySlot
	for _, b := range cal.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			continue
		}

		startLocal := start.In(timezone.Location())
		endLocal := end.In(timezone.Location())

		slots = append(slots, BusySlot{
			Date:  startLocal.Format("2006-01-02"),
			Start: startLocal.Format("15:04"),
			End:   endLocal.Format("15:04"),
		})
	}

	return slots, nil
}

func (c *Client) do(method, url string, payload []byte) ([]byte, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[GCALENDAR] ❌ Erro em %s: %d - %s", url, resp.StatusCode, string(body))
		return nil, fmt.Errorf("google calendar: status %d", resp.StatusCode)
	}

	return body, nil
}
