package cadastro

import (
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
)

// Endereco is a postal address owned by people and companies.
type Endereco struct {
	shared.BaseEntity
	Cep         valueobject.CEP `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Numero      string          `json:"numero"`
	Complemento *string         `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Cidade      string          `json:"cidade"`
	UF          string          `json:"uf"`
}

// EnderecoData carries the raw values used to build an address.
type EnderecoData struct {
	Cep         string
	Logradouro  string
	Numero      string
	Complemento *string
	Bairro      string
	Cidade      string
	UF          string
}

// EnderecoChanges carries the mutable fields of an address. The CEP is fixed
// once the address exists.
type EnderecoChanges struct {
	Logradouro  string
	Numero      string
	Complemento *string
	Bairro      string
	Cidade      string
	UF          string
}

// NewEndereco validates data and creates a new address
func NewEndereco(data EnderecoData) (*Endereco, error) {
	cep, err := valueobject.NewCEP(data.Cep)
	if err != nil {
		return nil, err
	}

	e := &Endereco{
		BaseEntity: shared.NewBaseEntity(),
		Cep:        cep,
	}
	if err := e.apply(EnderecoChanges{
		Logradouro:  data.Logradouro,
		Numero:      data.Numero,
		Complemento: data.Complemento,
		Bairro:      data.Bairro,
		Cidade:      data.Cidade,
		UF:          data.UF,
	}); err != nil {
		return nil, err
	}
	return e, nil
}

// Update re-validates every mutable field and applies them in place.
// On error the address is left untouched.
func (e *Endereco) Update(changes EnderecoChanges) error {
	if err := e.apply(changes); err != nil {
		return err
	}
	e.Touch()
	return nil
}

func (e *Endereco) apply(c EnderecoChanges) error {
	logradouro, err := requiredText("Logradouro", c.Logradouro)
	if err != nil {
		return err
	}
	numero, err := requiredText("Número", c.Numero)
	if err != nil {
		return err
	}
	bairro, err := requiredText("Bairro", c.Bairro)
	if err != nil {
		return err
	}
	cidade, err := requiredText("Cidade", c.Cidade)
	if err != nil {
		return err
	}
	uf, err := normalizeUF(c.UF)
	if err != nil {
		return err
	}

	e.Logradouro = logradouro
	e.Numero = numero
	e.Complemento = valueobject.OptionalText(c.Complemento)
	e.Bairro = bairro
	e.Cidade = cidade
	e.UF = uf
	return nil
}
