package zapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	defaultCountryCode = "55" // DDI Brasil
	minPhoneDigits     = 12   // 55 + DDD + número
	maxAttempts        = 3
)

var nonDigits = regexp.MustCompile(`\D`)

type Client struct {
	baseURL       string
	instanceID    string
	instanceToken string
	clientToken   string
	httpClient    *http.Client
}

func NewClient(baseURL, instanceID, instanceToken, clientToken string) *Client {
	if baseURL == "" || instanceID == "" || instanceToken == "" || clientToken == "" {
		log.Println("[ZAPI] ⚠️ Variáveis de configuração incompletas")
	}

	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		instanceID:    instanceID,
		instanceToken: instanceToken,
		clientToken:   clientToken,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientFromEnv() *Client {
	return NewClient(
		os.Getenv("ZAPI_BASE_URL"),
		os.Getenv("ZAPI_INSTANCE_ID"),
		os.Getenv("ZAPI_INSTANCE_TOKEN"),
		os.Getenv("ZAPI_CLIENT_TOKEN"),
	)
}

// FormatPhone limpa e formata o telefone para o padrão DDI+DDD+NUMERO.
// Com 10 ou 11 dígitos assume BR e prefixa o DDI 55; abaixo do mínimo
// devolve vazio (rejeitado).
func FormatPhone(phone string) string {
	clean := nonDigits.ReplaceAllString(phone, "")

	if len(clean) >= 10 && len(clean) <= 11 {
		clean = defaultCountryCode + clean
	}

	if len(clean) < minPhoneDigits {
		return ""
	}

	return clean
}

// SendMessage envia um texto simples via Z-API. Retorna true somente quando
// a API aceitou o envio; esgota 3 tentativas sem backoff antes de desistir.
func (c *Client) SendMessage(phone, message string) bool {
	target := FormatPhone(phone)
	if target == "" {
		log.Println("[ZAPI] ⚠️ Telefone inválido (muito curto), envio descartado")
		return false
	}

	if message == "" {
		log.Println("[ZAPI] ⚠️ Mensagem vazia, envio descartado")
		return false
	}

	payload, err := json.Marshal(sendTextRequest{Phone: target, Message: message})
	if err != nil {
		log.Printf("[ZAPI] ❌ Erro ao serializar payload: %v", err)
		return false
	}

	url := fmt.Sprintf("%s/instances/%s/token/%s/send-text", c.baseURL, c.instanceID, c.instanceToken)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("[ZAPI] Enviando mensagem (tentativa %d)...", attempt)

		if c.post(url, payload) {
			return true
		}
	}

	log.Println("[ZAPI] ❌ Falha definitiva após todas as tentativas")
	return false
}

func (c *Client) post(url string, payload []byte) bool {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Printf("[ZAPI] ❌ Erro ao criar requisição: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", c.clientToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ZAPI] ⚠️ Falha no envio: %v", err)
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[ZAPI] ⚠️ API retornou status %d: %s", resp.StatusCode, string(body))
		return false
	}

	log.Printf("[ZAPI] ✅ Status %d", resp.StatusCode)
	return true
}
