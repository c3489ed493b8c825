package cadastro

import (
	"strings"
	"unicode/utf8"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// requiredText cleans value and fails with "<field> é obrigatório." when blank.
func requiredText(field, value string) (string, error) {
	cleaned := valueobject.CleanText(value)
	if cleaned == "" {
		return "", shared.NewDomainError(shared.ErrRequiredField.Code, field+" é obrigatório.")
	}
	return cleaned, nil
}

func normalizeUF(uf string) (string, error) {
	cleaned := valueobject.CleanText(uf)
	if utf8.RuneCountInString(cleaned) != 2 {
		return "", shared.NewDomainError("INVALID_UF", "UF inválida. Deve conter 2 caracteres.")
	}
	return strings.ToUpper(cleaned), nil
}

func requireEnderecoID(id uuid.UUID) error {
	if id == uuid.Nil {
		return shared.NewDomainError(shared.ErrRequiredField.Code, "EndereçoId é obrigatório.")
	}
	return nil
}
