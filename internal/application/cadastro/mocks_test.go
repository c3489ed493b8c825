package cadastro

import (
	"context"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPostalCodeLookup struct {
	mock.Mock
}

func (m *MockPostalCodeLookup) Lookup(ctx context.Context, cep string) (*cadastro.PostalAddress, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cadastro.PostalAddress), args.Error(1)
}

type MockPessoaFisicaRepository struct {
	mock.Mock
}

func (m *MockPessoaFisicaRepository) FindByID(ctx context.Context, id uuid.UUID) (*cadastro.PessoaFisica, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cadastro.PessoaFisica), args.Error(1)
}

func (m *MockPessoaFisicaRepository) FindAll(ctx context.Context) ([]cadastro.PessoaFisica, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cadastro.PessoaFisica), args.Error(1)
}

func (m *MockPessoaFisicaRepository) Save(ctx context.Context, pessoa *cadastro.PessoaFisica) error {
	args := m.Called(ctx, pessoa)
	return args.Error(0)
}

func (m *MockPessoaFisicaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seAddress() *cadastro.PostalAddress {
	return &cadastro.PostalAddress{
		Cep:        "01001-000",
		Logradouro: "Praça da Sé",
		Bairro:     "Sé",
		Localidade: "São Paulo",
		UF:         "SP",
	}
}
