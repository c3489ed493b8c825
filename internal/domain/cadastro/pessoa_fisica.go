package cadastro

import (
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PessoaFisica is an individual registered with a CPF.
type PessoaFisica struct {
	shared.BaseEntity
	Nome       string          `json:"nome"`
	CPF        valueobject.CPF `json:"cpf"`
	EnderecoID uuid.UUID       `json:"enderecoId"`
}

// NewPessoaFisica validates and creates a new individual
func NewPessoaFisica(nome, cpf string, enderecoID uuid.UUID) (*PessoaFisica, error) {
	if err := requireEnderecoID(enderecoID); err != nil {
		return nil, err
	}
	p := &PessoaFisica{
		BaseEntity: shared.NewBaseEntity(),
		EnderecoID: enderecoID,
	}
	if err := p.apply(nome, cpf); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces name and CPF after validating both
func (p *PessoaFisica) Update(nome, cpf string) error {
	if err := p.apply(nome, cpf); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *PessoaFisica) apply(nome, cpf string) error {
	cleanNome, err := requiredText("Nome", nome)
	if err != nil {
		return err
	}
	doc, err := valueobject.NewCPF(cpf)
	if err != nil {
		return err
	}
	p.Nome = cleanNome
	p.CPF = doc
	return nil
}
