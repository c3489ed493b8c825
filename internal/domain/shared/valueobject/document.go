package valueobject

import (
	"github.com/casepan/backend/internal/domain/shared"
)

const (
	cepLength  = 8
	cpfLength  = 11
	cnpjLength = 14
)

// CEP is a Brazilian postal code held as 8 digits.
type CEP string

// NewCEP normalizes raw to digits and checks its length.
func NewCEP(raw string) (CEP, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cepLength {
		return "", shared.NewDomainError("INVALID_CEP", "CEP inválido. Deve conter 8 dígitos.")
	}
	return CEP(digits), nil
}

// IsValidCEP reports whether raw normalizes to a well formed CEP.
func IsValidCEP(raw string) bool {
	return len(OnlyDigits(raw)) == cepLength
}

func (c CEP) String() string { return string(c) }

// Formatted renders the CEP as 00000-000.
func (c CEP) Formatted() string {
	if len(c) != cepLength {
		return string(c)
	}
	return string(c[:5]) + "-" + string(c[5:])
}

// CPF is an individual taxpayer id held as 11 digits.
type CPF string

// NewCPF normalizes raw to digits and checks its length.
func NewCPF(raw string) (CPF, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cpfLength {
		return "", shared.NewDomainError("INVALID_CPF", "CPF inválido. Deve conter 11 dígitos.")
	}
	return CPF(digits), nil
}

func (c CPF) String() string { return string(c) }

// Last4 returns the last four digits, the only part safe to log.
func (c CPF) Last4() string { return last4(string(c)) }

// CNPJ is a company taxpayer id held as 14 digits.
type CNPJ string

// NewCNPJ normalizes raw to digits and checks its length.
func NewCNPJ(raw string) (CNPJ, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cnpjLength {
		return "", shared.NewDomainError("INVALID_CNPJ", "CNPJ inválido. Deve conter 14 dígitos.")
	}
	return CNPJ(digits), nil
}

func (c CNPJ) String() string { return string(c) }

// Last4 returns the last four digits, the only part safe to log.
func (c CNPJ) Last4() string { return last4(string(c)) }

// Last4Digits masks any document-like input down to its last four digits.
func Last4Digits(raw string) string {
	return last4(OnlyDigits(raw))
}

func last4(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
