package cadastro

import (
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PessoaJuridica is a company registered with a CNPJ.
type PessoaJuridica struct {
	shared.BaseEntity
	RazaoSocial string           `json:"razaoSocial"`
	CNPJ        valueobject.CNPJ `json:"cnpj"`
	EnderecoID  uuid.UUID        `json:"enderecoId"`
}

// NewPessoaJuridica validates and creates a new company
func NewPessoaJuridica(razaoSocial, cnpj string, enderecoID uuid.UUID) (*PessoaJuridica, error) {
	if err := requireEnderecoID(enderecoID); err != nil {
		return nil, err
	}
	p := &PessoaJuridica{
		BaseEntity: shared.NewBaseEntity(),
		EnderecoID: enderecoID,
	}
	if err := p.apply(razaoSocial, cnpj); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces corporate name and CNPJ after validating both
func (p *PessoaJuridica) Update(razaoSocial, cnpj string) error {
	if err := p.apply(razaoSocial, cnpj); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *PessoaJuridica) apply(razaoSocial, cnpj string) error {
	razao := valueobject.CleanText(razaoSocial)
	if razao == "" {
		return shared.NewDomainError(shared.ErrRequiredField.Code, "Razão social é obrigatória.")
	}
	doc, err := valueobject.NewCNPJ(cnpj)
	if err != nil {
		return err
	}
	p.RazaoSocial = razao
	p.CNPJ = doc
	return nil
}
