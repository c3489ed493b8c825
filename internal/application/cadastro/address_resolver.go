package cadastro

import (
	"context"
	"fmt"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
)

// addressResolver builds an address from a CEP lookup plus the number and
// complement only the caller knows.
type addressResolver struct {
	lookup cadastro.PostalCodeLookup
}

func (r addressResolver) resolve(ctx context.Context, cep, numero string, complemento *string) (*cadastro.Endereco, error) {
	normalized, err := valueobject.NewCEP(cep)
	if err != nil {
		return nil, err
	}

	found, err := r.lookup.Lookup(ctx, normalized.String())
	if err != nil {
		return nil, fmt.Errorf("consultar CEP %s: %w", normalized, err)
	}
	if found == nil {
		return nil, ErrCEPNotFound
	}

	return cadastro.NewEndereco(cadastro.EnderecoData{
		Cep:         normalized.String(),
		Logradouro:  found.Logradouro,
		Numero:      numero,
		Complemento: complemento,
		Bairro:      found.Bairro,
		Cidade:      found.Localidade,
		UF:          found.UF,
	})
}
