package memory

import (
	"cmp"
	"context"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrEnderecoNotFound is returned when an address ID is unknown.
var ErrEnderecoNotFound = shared.NewNotFoundError("Endereço não encontrado.")

// EnderecoRepository is an in-memory cadastro.EnderecoRepository.
type EnderecoRepository struct {
	rows *table[cadastro.Endereco]
}

// NewEnderecoRepository creates an empty address repository
func NewEnderecoRepository() *EnderecoRepository {
	return &EnderecoRepository{rows: newTable[cadastro.Endereco]()}
}

// FindByID returns a copy of the stored address
func (r *EnderecoRepository) FindByID(ctx context.Context, id uuid.UUID) (*cadastro.Endereco, error) {
	row, ok, err := r.rows.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEnderecoNotFound
	}
	return &row, nil
}

// FindAll returns all addresses ordered by CEP, then creation time
func (r *EnderecoRepository) FindAll(ctx context.Context) ([]cadastro.Endereco, error) {
	return r.rows.list(ctx, func(a, b cadastro.Endereco) int {
		return cmp.Or(cmp.Compare(a.Cep, b.Cep), a.CreatedAt.Compare(b.CreatedAt))
	})
}

// Save inserts or replaces the address
func (r *EnderecoRepository) Save(ctx context.Context, endereco *cadastro.Endereco) error {
	return r.rows.put(ctx, endereco.ID, *endereco)
}

// Delete removes the address
func (r *EnderecoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := r.rows.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEnderecoNotFound
	}
	return nil
}

// Count returns the number of stored addresses
func (r *EnderecoRepository) Count() int {
	return r.rows.len()
}
