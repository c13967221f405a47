package usecase

// Códigos de DomainError. O handler mapeia código -> status HTTP e nunca
// vaza detalhe de integração para o chamador.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeCRM               = "CRM_ERROR"
	CodeDatabase          = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
