package cadastro

import (
	"context"
	"errors"
	"fmt"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/google/uuid"
)

// PessoaFisicaService handles individual registration
type PessoaFisicaService struct {
	pessoaRepo   cadastro.PessoaFisicaRepository
	enderecoRepo cadastro.EnderecoRepository
	resolver     addressResolver
}

// NewPessoaFisicaService creates a new PessoaFisicaService
func NewPessoaFisicaService(
	pessoaRepo cadastro.PessoaFisicaRepository,
	enderecoRepo cadastro.EnderecoRepository,
	lookup cadastro.PostalCodeLookup,
) *PessoaFisicaService {
	return &PessoaFisicaService{
		pessoaRepo:   pessoaRepo,
		enderecoRepo: enderecoRepo,
		resolver:     addressResolver{lookup: lookup},
	}
}

// Create registers an individual and the address resolved from the CEP.
// Both records are validated before either is stored.
func (s *PessoaFisicaService) Create(ctx context.Context, req CreatePessoaFisicaRequest) (*PessoaFisicaResponse, error) {
	endereco, err := s.resolver.resolve(ctx, req.Cep, req.Numero, req.Complemento)
	if err != nil {
		return nil, err
	}
	pessoa, err := cadastro.NewPessoaFisica(req.Nome, req.Cpf, endereco.ID)
	if err != nil {
		return nil, err
	}

	if err := s.enderecoRepo.Save(ctx, endereco); err != nil {
		return nil, err
	}
	if err := s.pessoaRepo.Save(ctx, pessoa); err != nil {
		// The request context may be canceled already; the rollback must still run.
		if rbErr := s.enderecoRepo.Delete(context.WithoutCancel(ctx), endereco.ID); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback endereço %s: %w", endereco.ID, rbErr))
		}
		return nil, err
	}

	response := ToPessoaFisicaResponse(pessoa, endereco)
	return &response, nil
}

// GetByID retrieves an individual with its address
func (s *PessoaFisicaService) GetByID(ctx context.Context, id uuid.UUID) (*PessoaFisicaResponse, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPessoaFisicaNotFound)
	}

	response := ToPessoaFisicaResponse(pessoa, s.findEndereco(ctx, pessoa.EnderecoID))
	return &response, nil
}

// List returns every individual ordered by name
func (s *PessoaFisicaService) List(ctx context.Context) ([]PessoaFisicaResponse, error) {
	pessoas, err := s.pessoaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]PessoaFisicaResponse, len(pessoas))
	for i := range pessoas {
		responses[i] = ToPessoaFisicaResponse(&pessoas[i], s.findEndereco(ctx, pessoas[i].EnderecoID))
	}
	return responses, nil
}

// Update replaces name and CPF
func (s *PessoaFisicaService) Update(ctx context.Context, id uuid.UUID, req UpdatePessoaFisicaRequest) (*PessoaFisicaResponse, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPessoaFisicaNotFound)
	}
	if err := pessoa.Update(req.Nome, req.Cpf); err != nil {
		return nil, err
	}
	if err := s.pessoaRepo.Save(ctx, pessoa); err != nil {
		return nil, err
	}

	response := ToPessoaFisicaResponse(pessoa, s.findEndereco(ctx, pessoa.EnderecoID))
	return &response, nil
}

// Delete removes an individual. The address is kept.
func (s *PessoaFisicaService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFoundAs(s.pessoaRepo.Delete(ctx, id), ErrPessoaFisicaNotFound)
}

func (s *PessoaFisicaService) findEndereco(ctx context.Context, id uuid.UUID) *cadastro.Endereco {
	endereco, err := s.enderecoRepo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return endereco
}
