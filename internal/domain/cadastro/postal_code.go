package cadastro

import "context"

// PostalAddress is the address data a postal-code service knows for a CEP.
type PostalAddress struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
}

// PostalCodeLookup resolves a CEP to an address.
type PostalCodeLookup interface {
	// Lookup returns (nil, nil) when the CEP is malformed or unknown,
	// and an error only when the remote service could not be consulted.
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}
