package cadastro

import (
	"context"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// EnderecoService handles address operations
type EnderecoService struct {
	enderecoRepo cadastro.EnderecoRepository
	lookup       cadastro.PostalCodeLookup
	resolver     addressResolver
}

// NewEnderecoService creates a new EnderecoService
func NewEnderecoService(enderecoRepo cadastro.EnderecoRepository, lookup cadastro.PostalCodeLookup) *EnderecoService {
	return &EnderecoService{
		enderecoRepo: enderecoRepo,
		lookup:       lookup,
		resolver:     addressResolver{lookup: lookup},
	}
}

// LookupCEP resolves a CEP without persisting anything. A malformed CEP
// returns (nil, nil) without reaching the postal-code service.
func (s *EnderecoService) LookupCEP(ctx context.Context, cep string) (*cadastro.PostalAddress, error) {
	normalized, err := valueobject.NewCEP(cep)
	if err != nil {
		return nil, nil
	}
	return s.lookup.Lookup(ctx, normalized.String())
}

// CreateFromCEP creates an address using the street data of the CEP
func (s *EnderecoService) CreateFromCEP(ctx context.Context, req CreateEnderecoFromCEPRequest) (*EnderecoResponse, error) {
	endereco, err := s.resolver.resolve(ctx, req.Cep, req.Numero, req.Complemento)
	if err != nil {
		return nil, err
	}
	if err := s.enderecoRepo.Save(ctx, endereco); err != nil {
		return nil, err
	}

	response := ToEnderecoResponse(endereco)
	return &response, nil
}

// Create creates an address from explicit fields
func (s *EnderecoService) Create(ctx context.Context, req CreateEnderecoRequest) (*EnderecoResponse, error) {
	endereco, err := cadastro.NewEndereco(cadastro.EnderecoData{
		Cep:         req.Cep,
		Logradouro:  req.Logradouro,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		UF:          req.UF,
	})
	if err != nil {
		return nil, err
	}
	if err := s.enderecoRepo.Save(ctx, endereco); err != nil {
		return nil, err
	}

	response := ToEnderecoResponse(endereco)
	return &response, nil
}

// GetByID retrieves an address by ID
func (s *EnderecoService) GetByID(ctx context.Context, id uuid.UUID) (*EnderecoResponse, error) {
	endereco, err := s.enderecoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrEnderecoNotFound)
	}

	response := ToEnderecoResponse(endereco)
	return &response, nil
}

// List returns every address ordered by CEP
func (s *EnderecoService) List(ctx context.Context) ([]EnderecoResponse, error) {
	enderecos, err := s.enderecoRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]EnderecoResponse, len(enderecos))
	for i := range enderecos {
		responses[i] = ToEnderecoResponse(&enderecos[i])
	}
	return responses, nil
}

// Update re-validates and replaces the mutable fields of an address
func (s *EnderecoService) Update(ctx context.Context, id uuid.UUID, req UpdateEnderecoRequest) (*EnderecoResponse, error) {
	endereco, err := s.enderecoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrEnderecoNotFound)
	}

	if err := endereco.Update(cadastro.EnderecoChanges{
		Logradouro:  req.Logradouro,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		UF:          req.UF,
	}); err != nil {
		return nil, err
	}
	if err := s.enderecoRepo.Save(ctx, endereco); err != nil {
		return nil, err
	}

	response := ToEnderecoResponse(endereco)
	return &response, nil
}

// Delete removes an address
func (s *EnderecoService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFoundAs(s.enderecoRepo.Delete(ctx, id), ErrEnderecoNotFound)
}
