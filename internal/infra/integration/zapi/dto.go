package zapi

type sendTextRequest struct {
	Phone   string `json:"phone"` // Ex: "5511999999999"
	Message string `json:"message"`
}
