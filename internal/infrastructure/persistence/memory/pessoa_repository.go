package memory

import (
	"cmp"
	"context"
	"strings"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var (
	// ErrPessoaFisicaNotFound is returned when an individual ID is unknown.
	ErrPessoaFisicaNotFound = shared.NewNotFoundError("Pessoa física não encontrada.")
	// ErrPessoaJuridicaNotFound is returned when a company ID is unknown.
	ErrPessoaJuridicaNotFound = shared.NewNotFoundError("Pessoa jurídica não encontrada.")
)

// PessoaFisicaRepository is an in-memory cadastro.PessoaFisicaRepository.
type PessoaFisicaRepository struct {
	rows *table[cadastro.PessoaFisica]
}

// NewPessoaFisicaRepository creates an empty individual repository
func NewPessoaFisicaRepository() *PessoaFisicaRepository {
	return &PessoaFisicaRepository{rows: newTable[cadastro.PessoaFisica]()}
}

func (r *PessoaFisicaRepository) FindByID(ctx context.Context, id uuid.UUID) (*cadastro.PessoaFisica, error) {
	row, ok, err := r.rows.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPessoaFisicaNotFound
	}
	return &row, nil
}

// FindAll returns all individuals ordered by name (case-insensitive)
func (r *PessoaFisicaRepository) FindAll(ctx context.Context) ([]cadastro.PessoaFisica, error) {
	return r.rows.list(ctx, func(a, b cadastro.PessoaFisica) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Nome), strings.ToLower(b.Nome)),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
}

func (r *PessoaFisicaRepository) Save(ctx context.Context, pessoa *cadastro.PessoaFisica) error {
	return r.rows.put(ctx, pessoa.ID, *pessoa)
}

func (r *PessoaFisicaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := r.rows.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPessoaFisicaNotFound
	}
	return nil
}

// PessoaJuridicaRepository is an in-memory cadastro.PessoaJuridicaRepository.
type PessoaJuridicaRepository struct {
	rows *table[cadastro.PessoaJuridica]
}

// NewPessoaJuridicaRepository creates an empty company repository
func NewPessoaJuridicaRepository() *PessoaJuridicaRepository {
	return &PessoaJuridicaRepository{rows: newTable[cadastro.PessoaJuridica]()}
}

func (r *PessoaJuridicaRepository) FindByID(ctx context.Context, id uuid.UUID) (*cadastro.PessoaJuridica, error) {
	row, ok, err := r.rows.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPessoaJuridicaNotFound
	}
	return &row, nil
}

// FindAll returns all companies ordered by corporate name (case-insensitive)
func (r *PessoaJuridicaRepository) FindAll(ctx context.Context) ([]cadastro.PessoaJuridica, error) {
	return r.rows.list(ctx, func(a, b cadastro.PessoaJuridica) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.RazaoSocial), strings.ToLower(b.RazaoSocial)),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
}

func (r *PessoaJuridicaRepository) Save(ctx context.Context, pessoa *cadastro.PessoaJuridica) error {
	return r.rows.put(ctx, pessoa.ID, *pessoa)
}

func (r *PessoaJuridicaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := r.rows.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPessoaJuridicaNotFound
	}
	return nil
}

var (
	_ cadastro.EnderecoRepository       = (*EnderecoRepository)(nil)
	_ cadastro.PessoaFisicaRepository   = (*PessoaFisicaRepository)(nil)
	_ cadastro.PessoaJuridicaRepository = (*PessoaJuridicaRepository)(nil)
)
