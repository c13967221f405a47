package pipedrive

// Record é o recorte mínimo de qualquer recurso criado/atualizado.
type Record struct {
	ID int `json:"id"`
}

// LeadIDs são os três IDs provisionados pelo fluxo org -> pessoa -> deal.
type LeadIDs struct {
	PersonID       int
	OrganizationID int
	DealID         int
}

// OrganizationDetails carrega os campos personalizados da organização.
// Valores zerados significam "sem atualização para este campo".
type OrganizationDetails struct {
	Segment         string
	InvoicingID     int
	CollaboratorsID int
	Product         string
	ChallengeIDs    []int
	StageID         int
	InvestmentID    int
}

type ActivityInput struct {
	Subject  string
	Type     string // "call" | "meeting"
	DueDate  string // YYYY-MM-DD em UTC
	DueTime  string // HH:MM em UTC
	PersonID int
	OrgID    int
	DealID   int
}
