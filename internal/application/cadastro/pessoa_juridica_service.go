package cadastro

import (
	"context"
	"errors"
	"fmt"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/google/uuid"
)

// PessoaJuridicaService handles company registration
type PessoaJuridicaService struct {
	pessoaRepo   cadastro.PessoaJuridicaRepository
	enderecoRepo cadastro.EnderecoRepository
	resolver     addressResolver
}

// NewPessoaJuridicaService creates a new PessoaJuridicaService
func NewPessoaJuridicaService(
	pessoaRepo cadastro.PessoaJuridicaRepository,
	enderecoRepo cadastro.EnderecoRepository,
	lookup cadastro.PostalCodeLookup,
) *PessoaJuridicaService {
	return &PessoaJuridicaService{
		pessoaRepo:   pessoaRepo,
		enderecoRepo: enderecoRepo,
		resolver:     addressResolver{lookup: lookup},
	}
}

// Create registers a company and the address resolved from the CEP
func (s *PessoaJuridicaService) Create(ctx context.Context, req CreatePessoaJuridicaRequest) (*PessoaJuridicaResponse, error) {
	endereco, err := s.resolver.resolve(ctx, req.Cep, req.Numero, req.Complemento)
	if err != nil {
		return nil, err
	}
	pessoa, err := cadastro.NewPessoaJuridica(req.RazaoSocial, req.Cnpj, endereco.ID)
	if err != nil {
		return nil, err
	}

	if err := s.enderecoRepo.Save(ctx, endereco); err != nil {
		return nil, err
	}
	if err := s.pessoaRepo.Save(ctx, pessoa); err != nil {
		if rbErr := s.enderecoRepo.Delete(context.WithoutCancel(ctx), endereco.ID); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback endereço %s: %w", endereco.ID, rbErr))
		}
		return nil, err
	}

	response := ToPessoaJuridicaResponse(pessoa, endereco)
	return &response, nil
}

// GetByID retrieves a company with its address
func (s *PessoaJuridicaService) GetByID(ctx context.Context, id uuid.UUID) (*PessoaJuridicaResponse, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPessoaJuridicaNotFound)
	}

	response := ToPessoaJuridicaResponse(pessoa, s.findEndereco(ctx, pessoa.EnderecoID))
	return &response, nil
}

// List returns every company ordered by corporate name
func (s *PessoaJuridicaService) List(ctx context.Context) ([]PessoaJuridicaResponse, error) {
	pessoas, err := s.pessoaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]PessoaJuridicaResponse, len(pessoas))
	for i := range pessoas {
		responses[i] = ToPessoaJuridicaResponse(&pessoas[i], s.findEndereco(ctx, pessoas[i].EnderecoID))
	}
	return responses, nil
}

// Update replaces corporate name and CNPJ
func (s *PessoaJuridicaService) Update(ctx context.Context, id uuid.UUID, req UpdatePessoaJuridicaRequest) (*PessoaJuridicaResponse, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPessoaJuridicaNotFound)
	}
	if err := pessoa.Update(req.RazaoSocial, req.Cnpj); err != nil {
		return nil, err
	}
	if err := s.pessoaRepo.Save(ctx, pessoa); err != nil {
		return nil, err
	}

	response := ToPessoaJuridicaResponse(pessoa, s.findEndereco(ctx, pessoa.EnderecoID))
	return &response, nil
}

// Delete removes a company. The address is kept.
func (s *PessoaJuridicaService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFoundAs(s.pessoaRepo.Delete(ctx, id), ErrPessoaJuridicaNotFound)
}

func (s *PessoaJuridicaService) findEndereco(ctx context.Context, id uuid.UUID) *cadastro.Endereco {
	endereco, err := s.enderecoRepo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return endereco
}
