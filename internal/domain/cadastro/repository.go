package cadastro

import (
	"context"

	"github.com/google/uuid"
)

// EnderecoRepository defines the interface for address persistence
type EnderecoRepository interface {
	// FindByID returns the address or a NOT_FOUND domain error
	FindByID(ctx context.Context, id uuid.UUID) (*Endereco, error)

	// FindAll returns every address ordered by CEP
	FindAll(ctx context.Context) ([]Endereco, error)

	// Save creates or replaces an address
	Save(ctx context.Context, endereco *Endereco) error

	// Delete removes an address, returning NOT_FOUND when it does not exist
	Delete(ctx context.Context, id uuid.UUID) error
}

// PessoaFisicaRepository defines the interface for individual persistence
type PessoaFisicaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PessoaFisica, error)
	// FindAll returns every individual ordered by name
	FindAll(ctx context.Context) ([]PessoaFisica, error)
	Save(ctx context.Context, pessoa *PessoaFisica) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PessoaJuridicaRepository defines the interface for company persistence
type PessoaJuridicaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PessoaJuridica, error)
	// FindAll returns every company ordered by corporate name
	FindAll(ctx context.Context) ([]PessoaJuridica, error)
	Save(ctx context.Context, pessoa *PessoaJuridica) error
	Delete(ctx context.Context, id uuid.UUID) error
}
