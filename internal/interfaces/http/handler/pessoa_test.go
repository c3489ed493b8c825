package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPessoaFisicaHandler_Create(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/pessoas-fisicas", gin.H{
		"nome":   "  Maria da Silva ",
		"cpf":    "123.456.789-09",
		"cep":    "01001-000",
		"numero": "10",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, msgPessoaFisicaCreated, body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Maria da Silva", data["nome"])
	assert.Equal(t, "12345678909", data["cpf"])
	endereco := data["endereco"].(map[string]any)
	assert.Equal(t, data["enderecoId"], endereco["id"])
	assert.Equal(t, "Praça da Sé", endereco["logradouro"])
	assert.Equal(t, 1, ts.enderecos.Count())

	ev := ts.publisher.last(t)
	assert.Equal(t, "PessoaFisicaCreated", ev.Name)
	assert.Equal(t, body["correlationId"], ev.CorrelationID)
	payload := ev.Payload.Payload.(gin.H)
	assert.Equal(t, "8909", payload["cpfLast4"])
	assert.Equal(t, "01001-000", payload["cep"])
	assert.NotContains(t, payload, "cpf")
}

func TestPessoaFisicaHandler_Create_InvalidCPFStoresNothing(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/pessoas-fisicas", gin.H{
		"nome":   "Maria",
		"cpf":    "123",
		"cep":    "01001-000",
		"numero": "10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, msgPessoaFisicaCreateFailed, body["message"])
	assert.Equal(t, "CPF inválido. Deve conter 11 dígitos.", body["error"])
	assert.Zero(t, ts.enderecos.Count())

	ev := ts.publisher.last(t)
	assert.Equal(t, "PessoaFisicaCreateFailed", ev.Name)
	assert.Equal(t, tracking.OutcomeFailure, ev.Payload.Outcome)
	assert.Equal(t, "123", ev.Payload.Payload.(gin.H)["cpfLast4"])
	assert.NotContains(t, ev.Payload.Payload.(gin.H), "id")
}

func TestPessoaFisicaHandler_CRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/pessoas-fisicas", gin.H{
		"nome": "Bruno", "cpf": "98765432100", "cep": "01001000", "numero": "1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := dataOf(t, w)["id"].(string)

	w = ts.do(t, http.MethodPost, "/api/pessoas-fisicas", gin.H{
		"nome": "Ana", "cpf": "11122233344", "cep": "01001000", "numero": "2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, http.MethodGet, "/api/pessoas-fisicas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := dataOf(t, w)
	assert.Equal(t, float64(2), list["count"])
	items := list["items"].([]any)
	assert.Equal(t, "Ana", items[0].(map[string]any)["nome"])
	assert.Equal(t, "PessoaFisicaListOk", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodGet, "/api/pessoas-fisicas/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bruno", dataOf(t, w)["nome"])
	assert.Equal(t, "PessoaFisicaGetOk", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodPut, "/api/pessoas-fisicas/"+id, gin.H{"nome": "Bruno Souza", "cpf": "987.654.321-00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bruno Souza", dataOf(t, w)["nome"])
	ev := ts.publisher.last(t)
	assert.Equal(t, "PessoaFisicaUpdated", ev.Name)
	assert.Equal(t, "2100", ev.Payload.Payload.(gin.H)["cpfLast4"])

	w = ts.do(t, http.MethodDelete, "/api/pessoas-fisicas/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PessoaFisicaDeleted", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodGet, "/api/pessoas-fisicas/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgPessoaFisicaNotFound, decode(t, w)["message"])
	assert.Equal(t, "PessoaFisicaGetNotFound", ts.publisher.last(t).Name)
}

func TestPessoaFisicaHandler_UpdateAndDelete_NotFound(t *testing.T) {
	ts := newTestServer(t)
	missing := uuid.NewString()

	w := ts.do(t, http.MethodPut, "/api/pessoas-fisicas/"+missing, gin.H{"nome": "X", "cpf": "12345678909"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PessoaFisicaUpdateNotFound", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodDelete, "/api/pessoas-fisicas/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PessoaFisicaDeleteNotFound", ts.publisher.last(t).Name)

	items, err := ts.fisicas.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPessoaFisicaHandler_Update_Invalid(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/pessoas-fisicas", gin.H{
		"nome": "Bruno", "cpf": "98765432100", "cep": "01001000", "numero": "1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := dataOf(t, w)["id"].(string)

	w = ts.do(t, http.MethodPut, "/api/pessoas-fisicas/"+id, gin.H{"nome": " ", "cpf": "98765432100"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nome é obrigatório.", decode(t, w)["error"])
	assert.Equal(t, "PessoaFisicaUpdateFailed", ts.publisher.last(t).Name)

	stored, err := ts.fisicas.FindByID(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.Equal(t, "Bruno", stored.Nome)
}

func TestPessoaJuridicaHandler_Create(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/pessoas-juridicas", gin.H{
		"razaoSocial": "ACME Comércio Ltda",
		"cnpj":        "12.345.678/0001-95",
		"cep":         "01001-000",
		"numero":      "500",
		"complemento": "sala 3",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataOf(t, w)
	assert.Equal(t, "ACME Comércio Ltda", data["razaoSocial"])
	assert.Equal(t, "12345678000195", data["cnpj"])

	ev := ts.publisher.last(t)
	assert.Equal(t, "PessoaJuridicaCreated", ev.Name)
	payload := ev.Payload.Payload.(gin.H)
	assert.Equal(t, "0195", payload["cnpjLast4"])
	assert.Equal(t, data["id"], payload["id"].(uuid.UUID).String())
}

func TestPessoaJuridicaHandler_Create_UnknownCEP(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/pessoas-juridicas", gin.H{
		"razaoSocial": "ACME",
		"cnpj":        "12345678000195",
		"cep":         "99999999",
		"numero":      "1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgPessoaJuridicaCreateFailed, decode(t, w)["message"])
	assert.Zero(t, ts.enderecos.Count())
	assert.Equal(t, "PessoaJuridicaCreateFailed", ts.publisher.last(t).Name)
}

func TestPessoaJuridicaHandler_UpdateAndDelete(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/pessoas-juridicas", gin.H{
		"razaoSocial": "ACME", "cnpj": "12345678000195", "cep": "01001000", "numero": "1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := dataOf(t, w)["id"].(string)

	w = ts.do(t, http.MethodPut, "/api/pessoas-juridicas/"+id, gin.H{"razaoSocial": "ACME SA", "cnpj": "12345678000195"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, msgPessoaJuridicaUpdated, decode(t, w)["message"])
	assert.Equal(t, "PessoaJuridicaUpdated", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodDelete, "/api/pessoas-juridicas/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PessoaJuridicaDeleted", ts.publisher.last(t).Name)

	w = ts.do(t, http.MethodDelete, "/api/pessoas-juridicas/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgPessoaJuridicaNotFound, decode(t, w)["message"])
	assert.Equal(t, "PessoaJuridicaDeleteNotFound", ts.publisher.last(t).Name)
}

func TestPessoaJuridicaHandler_InvalidID(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodDelete, "/api/pessoas-juridicas/123", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PessoaJuridicaDeleteFailed", ts.publisher.last(t).Name)
}
