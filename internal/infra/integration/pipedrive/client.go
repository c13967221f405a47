package pipedrive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/b2bflow/leadflow/internal/timezone"
)

// IDs dos campos personalizados da conta (hashes fixos do Pipedrive)
const (
	fieldSegmento               = "3bba6a3886d88fa043d916830d8e3fa63704b325"
	fieldFaturamento            = "5dc337302075b541c01d5b4b43cdc18c6d069ac9"
	fieldFuncionarios           = "d12a57b7469d8e92be6922544fb6534ca4ed1e21"
	fieldProduto                = "675a446167008ae9d3aca7c95e57189b9199eb29"
	fieldDesafio                = "5c6b52fb5611bf4d30e6a7a69499b23ea6c76b47"
	fieldMomento                = "33a533f719c6d40e15e3ccff84a36002ac6209c9"
	fieldCapacidadeInvestimento = "d6d6bd34a685a23f535f5de7170d343602ec59b3"
)

const confirmationCallHour = 10 // ligação de confirmação D-1 às 10:00 BRT

type Client struct {
	apiToken   string
	ownerID    int
	baseURL    string
	visibleTo  int
	httpClient *http.Client
}

func NewClient(apiToken string, ownerID int, baseURL string) *Client {
	if apiToken == "" {
		log.Println("[PIPEDRIVE] ⚠️ API_TOKEN não configurado")
	}
	if baseURL == "" {
		baseURL = "https://api.pipedrive.com/v1"
	}

	return &Client{
		apiToken:   apiToken,
		ownerID:    ownerID,
		baseURL:    baseURL,
		visibleTo:  3,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func NewClientFromEnv() *Client {
	ownerID, _ := strconv.Atoi(os.Getenv("PIPEDRIVE_OWNER_ID"))
	return NewClient(os.Getenv("PIPEDRIVE_API_TOKEN"), ownerID, os.Getenv("PIPEDRIVE_BASE_URL"))
}

// ProcessNewLead executa o fluxo completo em ordem:
// 1. Cria Org -> 2. Cria Pessoa -> 3. Cria Deal.
// Qualquer passo falhando aborta o fluxo inteiro — os três IDs são
// obrigatórios para todo o espelhamento futuro no CRM.
func (c *Client) ProcessNewLead(companyName, leadName, email, phone string) (*LeadIDs, error) {
	org, err := c.CreateOrganization(companyName)
	if err != nil {
		return nil, fmt.Errorf("organização: %w", err)
	}

	person, err := c.CreatePerson(leadName, org.ID, email, phone)
	if err != nil {
		return nil, fmt.Errorf("pessoa: %w", err)
	}

	deal, err := c.CreateDeal(fmt.Sprintf("%s | %s", companyName, leadName), person.ID, org.ID)
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}

	log.Printf("[PIPEDRIVE] ✅ Fluxo completo! Deal ID: %d", deal.ID)

	return &LeadIDs{
		PersonID:       person.ID,
		OrganizationID: org.ID,
		DealID:         deal.ID,
	}, nil
}

func (c *Client) CreateOrganization(name string) (*Record, error) {
	log.Println("[PIPEDRIVE] 🏢 Criando Organização")

	return c.post("organizations", map[string]interface{}{
		"name":       name,
		"owner_id":   c.ownerID,
		"visible_to": c.visibleTo,
	})
}

func (c *Client) CreatePerson(name string, orgID int, email, phone string) (*Record, error) {
	log.Println("[PIPEDRIVE] 👤 Criando Pessoa")

	return c.post("persons", map[string]interface{}{
		"name":       name,
		"email":      email,
		"phone":      phone,
		"owner_id":   c.ownerID,
		"visible_to": c.visibleTo,
		"org_id":     orgID,
	})
}

func (c *Client) CreateDeal(title string, personID, orgID int) (*Record, error) {
	log.Println("[PIPEDRIVE] 💰 Criando Negócio")

	return c.post("deals", map[string]interface{}{
		"title":       title,
		"person_id":   personID,
		"org_id":      orgID,
		"pipeline_id": 1,
		"stage_id":    1,
		"value":       0,
		"currency":    "BRL",
		"status":      "open",
		"probability": 70,
		"visible_to":  c.visibleTo,
	})
}

// UpdateOrganizationDetails grava os campos personalizados da organização.
// Campos zerados são omitidos do PUT; com tudo zerado não faz requisição.
func (c *Client) UpdateOrganizationDetails(orgID int, details OrganizationDetails) error {
	data := map[string]interface{}{}

	if details.Segment != "" {
		data[fieldSegmento] = details.Segment
	}
	if details.InvoicingID != 0 {
		data[fieldFaturamento] = details.InvoicingID
	}
	if details.CollaboratorsID != 0 {
		data[fieldFuncionarios] = details.CollaboratorsID
	}
	if details.Product != "" {
		data[fieldProduto] = details.Product
	}
	if len(details.ChallengeIDs) > 0 {
		data[fieldDesafio] = details.ChallengeIDs
	}
	if details.StageID != 0 {
		data[fieldMomento] = details.StageID
	}
	if details.InvestmentID != 0 {
		data[fieldCapacidadeInvestimento] = details.InvestmentID
	}

	if len(data) == 0 {
		return nil
	}

	log.Printf("[PIPEDRIVE] Atualizando dados da Organização %d...", orgID)
	return c.put(fmt.Sprintf("organizations/%d", orgID), data)
}

// UpdateDealStage move o card para uma nova etapa do funil.
func (c *Client) UpdateDealStage(dealID, stageID int) error {
	log.Printf("[PIPEDRIVE] 🚀 Movendo Deal %d para etapa %d...", dealID, stageID)

	return c.put(fmt.Sprintf("deals/%d", dealID), map[string]interface{}{
		"stage_id": stageID,
	})
}

// CreateActivity cria uma atividade genérica. due_date/due_time já em UTC.
func (c *Client) CreateActivity(input ActivityInput) error {
	data := map[string]interface{}{
		"subject":   input.Subject,
		"type":      input.Type,
		"due_date":  input.DueDate,
		"due_time":  input.DueTime,
		"person_id": input.PersonID,
		"org_id":    input.OrgID,
		"done":      0,
	}
	if input.DealID != 0 {
		data["deal_id"] = input.DealID
	}

	log.Println("[PIPEDRIVE] 📅 Criando atividade")
	_, err := c.post("activities", data)
	return err
}

// ScheduleConfirmationCall cria a ligação 1 dia antes da reunião, às 10:00
// BRT, convertida para UTC antes de enviar (o Pipedrive espera UTC).
func (c *Client) ScheduleConfirmationCall(meeting time.Time, personID, orgID, dealID int) error {
	local := timezone.Normalize(meeting)

	callAt := local.AddDate(0, 0, -1)
	callAt = time.Date(callAt.Year(), callAt.Month(), callAt.Day(), confirmationCallHour, 0, 0, 0, timezone.Location())
	callUTC := callAt.UTC()

	return c.CreateActivity(ActivityInput{
		Subject:  "Ligar para confirmar reunião de amanhã",
		Type:     "call",
		DueDate:  callUTC.Format("2006-01-02"),
		DueTime:  callUTC.Format("15:04"),
		PersonID: personID,
		OrgID:    orgID,
		DealID:   dealID,
	})
}

// ScheduleMeetingActivity cria a própria reunião no horário agendado,
// também convertido BRT -> UTC.
func (c *Client) ScheduleMeetingActivity(meeting time.Time, personID, orgID, dealID int) error {
	meetingUTC := timezone.Normalize(meeting).UTC()

	return c.CreateActivity(ActivityInput{
		Subject:  "Reunião de Diagnóstico (Agendada)",
		Type:     "meeting",
		DueDate:  meetingUTC.Format("2006-01-02"),
		DueTime:  meetingUTC.Format("15:04"),
		PersonID: personID,
		OrgID:    orgID,
		DealID:   dealID,
	})
}

func (c *Client) post(endpoint string, data map[string]interface{}) (*Record, error) {
	body, err := c.do(http.MethodPost, endpoint, data, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data Record `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *Client) put(endpoint string, data map[string]interface{}) error {
	_, err := c.do(http.MethodPut, endpoint, data, http.StatusOK)
	return err
}

func (c *Client) do(method, endpoint string, data map[string]interface{}, wantStatus int) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?api_token=%s", c.baseURL, endpoint, c.apiToken)
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		log.Printf("[PIPEDRIVE] ❌ Erro em %s %s: %d - %s", method, endpoint, resp.StatusCode, string(body))
		return nil, fmt.Errorf("pipedrive %s %s: status %d", method, endpoint, resp.StatusCode)
	}

	return body, nil
}
