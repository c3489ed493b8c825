package cadastro

import (
	"time"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/google/uuid"
)

// LookupCEPRequest asks for the address of a CEP
type LookupCEPRequest struct {
	Cep string `json:"cep" binding:"max=20" example:"01001-000"`
}

// CreateEnderecoFromCEPRequest creates an address whose street data comes from the CEP lookup
type CreateEnderecoFromCEPRequest struct {
	Cep         string  `json:"cep" binding:"max=20" example:"01001-000"`
	Numero      string  `json:"numero" binding:"max=20" example:"100"`
	Complemento *string `json:"complemento" binding:"omitempty,max=200" example:"apto 12"`
}

// CreateEnderecoRequest creates an address from explicit fields
type CreateEnderecoRequest struct {
	Cep         string  `json:"cep" binding:"max=20" example:"01001-000"`
	Logradouro  string  `json:"logradouro" binding:"max=200" example:"Praça da Sé"`
	Numero      string  `json:"numero" binding:"max=20" example:"100"`
	Complemento *string `json:"complemento" binding:"omitempty,max=200"`
	Bairro      string  `json:"bairro" binding:"max=100" example:"Sé"`
	Cidade      string  `json:"cidade" binding:"max=100" example:"São Paulo"`
	UF          string  `json:"uf" binding:"max=2" example:"SP"`
}

// UpdateEnderecoRequest replaces the mutable fields of an address
type UpdateEnderecoRequest struct {
	Logradouro  string  `json:"logradouro" binding:"max=200" example:"Praça da Sé"`
	Numero      string  `json:"numero" binding:"max=20" example:"100"`
	Complemento *string `json:"complemento" binding:"omitempty,max=200"`
	Bairro      string  `json:"bairro" binding:"max=100" example:"Sé"`
	Cidade      string  `json:"cidade" binding:"max=100" example:"São Paulo"`
	UF          string  `json:"uf" binding:"max=2" example:"SP"`
}

// CreatePessoaFisicaRequest registers an individual together with the address of a CEP
type CreatePessoaFisicaRequest struct {
	Nome        string  `json:"nome" binding:"max=200" example:"Maria da Silva"`
	Cpf         string  `json:"cpf" binding:"max=20" example:"123.456.789-09"`
	Cep         string  `json:"cep" binding:"max=20" example:"01001-000"`
	Numero      string  `json:"numero" binding:"max=20" example:"100"`
	Complemento *string `json:"complemento" binding:"omitempty,max=200"`
}

// UpdatePessoaFisicaRequest replaces name and CPF
type UpdatePessoaFisicaRequest struct {
	Nome string `json:"nome" binding:"max=200" example:"Maria da Silva"`
	Cpf  string `json:"cpf" binding:"max=20" example:"123.456.789-09"`
}

// CreatePessoaJuridicaRequest registers a company together with the address of a CEP
type CreatePessoaJuridicaRequest struct {
	RazaoSocial string  `json:"razaoSocial" binding:"max=200" example:"ACME Comércio Ltda"`
	Cnpj        string  `json:"cnpj" binding:"max=20" example:"12.345.678/0001-95"`
	Cep         string  `json:"cep" binding:"max=20" example:"01001-000"`
	Numero      string  `json:"numero" binding:"max=20" example:"100"`
	Complemento *string `json:"complemento" binding:"omitempty,max=200"`
}

// UpdatePessoaJuridicaRequest replaces corporate name and CNPJ
type UpdatePessoaJuridicaRequest struct {
	RazaoSocial string `json:"razaoSocial" binding:"max=200" example:"ACME Comércio Ltda"`
	Cnpj        string `json:"cnpj" binding:"max=20" example:"12.345.678/0001-95"`
}

// EnderecoResponse is the API representation of an address
type EnderecoResponse struct {
	ID          uuid.UUID `json:"id"`
	Cep         string    `json:"cep"`
	Logradouro  string    `json:"logradouro"`
	Numero      string    `json:"numero"`
	Complemento *string   `json:"complemento"`
	Bairro      string    `json:"bairro"`
	Cidade      string    `json:"cidade"`
	UF          string    `json:"uf"`
	CreatedAt   time.Time `json:"createdAtUtc"`
	UpdatedAt   time.Time `json:"updatedAtUtc"`
}

// PessoaFisicaResponse is the API representation of an individual
type PessoaFisicaResponse struct {
	ID         uuid.UUID         `json:"id"`
	Nome       string            `json:"nome"`
	Cpf        string            `json:"cpf"`
	EnderecoID uuid.UUID         `json:"enderecoId"`
	Endereco   *EnderecoResponse `json:"endereco,omitempty"`
	CreatedAt  time.Time         `json:"createdAtUtc"`
	UpdatedAt  time.Time         `json:"updatedAtUtc"`
}

// PessoaJuridicaResponse is the API representation of a company
type PessoaJuridicaResponse struct {
	ID          uuid.UUID         `json:"id"`
	RazaoSocial string            `json:"razaoSocial"`
	Cnpj        string            `json:"cnpj"`
	EnderecoID  uuid.UUID         `json:"enderecoId"`
	Endereco    *EnderecoResponse `json:"endereco,omitempty"`
	CreatedAt   time.Time         `json:"createdAtUtc"`
	UpdatedAt   time.Time         `json:"updatedAtUtc"`
}

// ToEnderecoResponse converts a domain address to its response
func ToEnderecoResponse(e *cadastro.Endereco) EnderecoResponse {
	return EnderecoResponse{
		ID:          e.ID,
		Cep:         e.Cep.String(),
		Logradouro:  e.Logradouro,
		Numero:      e.Numero,
		Complemento: e.Complemento,
		Bairro:      e.Bairro,
		Cidade:      e.Cidade,
		UF:          e.UF,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToPessoaFisicaResponse converts a domain individual to its response.
// endereco may be nil when the address is no longer available.
func ToPessoaFisicaResponse(p *cadastro.PessoaFisica, endereco *cadastro.Endereco) PessoaFisicaResponse {
	resp := PessoaFisicaResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Cpf:        p.CPF.String(),
		EnderecoID: p.EnderecoID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if endereco != nil {
		e := ToEnderecoResponse(endereco)
		resp.Endereco = &e
	}
	return resp
}

// ToPessoaJuridicaResponse converts a domain company to its response
func ToPessoaJuridicaResponse(p *cadastro.PessoaJuridica, endereco *cadastro.Endereco) PessoaJuridicaResponse {
	resp := PessoaJuridicaResponse{
		ID:          p.ID,
		RazaoSocial: p.RazaoSocial,
		Cnpj:        p.CNPJ.String(),
		EnderecoID:  p.EnderecoID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if endereco != nil {
		e := ToEnderecoResponse(endereco)
		resp.Endereco = &e
	}
	return resp
}
