package cadastro

import (
	"errors"
	"testing"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validEnderecoData() EnderecoData {
	return EnderecoData{
		Cep:         "01001-000",
		Logradouro:  " Praça da Sé ",
		Numero:      "100",
		Complemento: strPtr("  "),
		Bairro:      "Sé",
		Cidade:      "São Paulo",
		UF:          "sp",
	}
}

func TestNewEndereco(t *testing.T) {
	t.Run("creates address with normalized fields", func(t *testing.T) {
		e, err := NewEndereco(validEnderecoData())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, "01001000", e.Cep.String())
		assert.Equal(t, "Praça da Sé", e.Logradouro)
		assert.Nil(t, e.Complemento, "blank complemento becomes nil")
		assert.Equal(t, "SP", e.UF)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("keeps non-blank complemento", func(t *testing.T) {
		data := validEnderecoData()
		data.Complemento = strPtr(" apto 1 ")
		e, err := NewEndereco(data)
		require.NoError(t, err)
		require.NotNil(t, e.Complemento)
		assert.Equal(t, "apto 1", *e.Complemento)
	})

	tests := []struct {
		name    string
		mutate  func(*EnderecoData)
		code    string
		message string
	}{
		{"invalid cep", func(d *EnderecoData) { d.Cep = "123" }, "INVALID_CEP", "CEP inválido. Deve conter 8 dígitos."},
		{"missing logradouro", func(d *EnderecoData) { d.Logradouro = " " }, "REQUIRED_FIELD", "Logradouro é obrigatório."},
		{"missing numero", func(d *EnderecoData) { d.Numero = "" }, "REQUIRED_FIELD", "Número é obrigatório."},
		{"missing bairro", func(d *EnderecoData) { d.Bairro = "" }, "REQUIRED_FIELD", "Bairro é obrigatório."},
		{"missing cidade", func(d *EnderecoData) { d.Cidade = "" }, "REQUIRED_FIELD", "Cidade é obrigatório."},
		{"invalid uf", func(d *EnderecoData) { d.UF = "SPX" }, "INVALID_UF", "UF inválida. Deve conter 2 caracteres."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validEnderecoData()
			tt.mutate(&data)

			e, err := NewEndereco(data)
			assert.Nil(t, e)
			var de *shared.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}

func TestEndereco_Update(t *testing.T) {
	e, err := NewEndereco(validEnderecoData())
	require.NoError(t, err)
	before := e.UpdatedAt

	t.Run("applies valid changes", func(t *testing.T) {
		err := e.Update(EnderecoChanges{
			Logradouro:  "Rua Nova",
			Numero:      "7",
			Complemento: strPtr("fundos"),
			Bairro:      "Centro",
			Cidade:      "Campinas",
			UF:          "sp",
		})
		require.NoError(t, err)
		assert.Equal(t, "Rua Nova", e.Logradouro)
		assert.Equal(t, "Campinas", e.Cidade)
		assert.Equal(t, "01001000", e.Cep.String(), "cep is immutable")
		assert.False(t, e.UpdatedAt.Before(before))
	})

	t.Run("rejects invalid changes without mutating", func(t *testing.T) {
		snapshot := *e
		err := e.Update(EnderecoChanges{Logradouro: "", Numero: "1", Bairro: "b", Cidade: "c", UF: "RJ"})
		require.Error(t, err)
		assert.Equal(t, snapshot, *e)
	})
}
