package cadastro

import (
	"errors"

	"github.com/casepan/backend/internal/domain/shared"
)

var (
	// ErrEnderecoNotFound is returned for unknown address IDs
	ErrEnderecoNotFound = shared.NewNotFoundError("Endereço não encontrado.")
	// ErrPessoaFisicaNotFound is returned for unknown individual IDs
	ErrPessoaFisicaNotFound = shared.NewNotFoundError("Pessoa física não encontrada.")
	// ErrPessoaJuridicaNotFound is returned for unknown company IDs
	ErrPessoaJuridicaNotFound = shared.NewNotFoundError("Pessoa jurídica não encontrada.")
	// ErrCEPNotFound is returned when the postal-code service has no data for a CEP
	ErrCEPNotFound = shared.NewDomainError("CEP_NOT_FOUND", "CEP não encontrado no ViaCEP.")
)

// notFoundAs replaces any repository not-found error with the entity specific one.
func notFoundAs(err error, notFound *shared.DomainError) error {
	if errors.Is(err, shared.ErrNotFound) {
		return notFound
	}
	return err
}
