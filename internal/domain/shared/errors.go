package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so
// errors.Is(err, ErrNotFound) matches every not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a NOT_FOUND error with an entity specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(ErrNotFound.Code, message)
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Recurso não encontrado.")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Dados inválidos.")
	ErrRequiredField   = NewDomainError("REQUIRED_FIELD", "Campo obrigatório.")
	ErrInvalidEnvelope = NewDomainError("INVALID_ENVELOPE", "Evento sem nome ou correlationId.")
)
