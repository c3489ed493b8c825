package handler

import (
	"net/http"

	cadastroapp "github.com/casepan/backend/internal/application/cadastro"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/casepan/backend/internal/interfaces/http/dto"
	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
)

const (
	msgPessoaJuridicaCreated      = "Cadastro de pessoa jurídica realizado com sucesso."
	msgPessoaJuridicaCreateFailed = "Houve um erro ao cadastrar a pessoa jurídica."
	msgPessoaJuridicaGetOk        = "Consulta de pessoa jurídica realizada com sucesso."
	msgPessoaJuridicaGetFailed    = "Houve um erro ao consultar a pessoa jurídica."
	msgPessoaJuridicaListOk       = "Listagem de pessoas jurídicas realizada com sucesso."
	msgPessoaJuridicaListFailed   = "Houve um erro ao listar as pessoas jurídicas."
	msgPessoaJuridicaUpdated      = "Cadastro de pessoa jurídica atualizado com sucesso."
	msgPessoaJuridicaUpdateFailed = "Houve um erro ao atualizar a pessoa jurídica."
	msgPessoaJuridicaDeleted      = "Cadastro de pessoa jurídica removido com sucesso."
	msgPessoaJuridicaDeleteFailed = "Houve um erro ao remover a pessoa jurídica."
	msgPessoaJuridicaNotFound     = "Pessoa jurídica não encontrada."
)

// PessoaJuridicaHandler handles company endpoints.
// Events carry only the last four CNPJ digits.
type PessoaJuridicaHandler struct {
	BaseHandler
	pessoaService *cadastroapp.PessoaJuridicaService
}

// NewPessoaJuridicaHandler creates a new PessoaJuridicaHandler
func NewPessoaJuridicaHandler(tracker *tracking.Tracker, pessoaService *cadastroapp.PessoaJuridicaService) *PessoaJuridicaHandler {
	return &PessoaJuridicaHandler{
		BaseHandler:   NewBaseHandler(tracker),
		pessoaService: pessoaService,
	}
}

// Create godoc
// @ID           createPessoaJuridica
// @Summary      Register a company
// @Description  Looks the CEP up, stores the address and then the company
// @Tags         pessoas-juridicas
// @Accept       json
// @Produce      json
// @Param        request  body      cadastroapp.CreatePessoaJuridicaRequest  true  "Company"
// @Success      201      {object}  dto.SuccessResponse{data=cadastroapp.PessoaJuridicaResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Router       /pessoas-juridicas [post]
func (h *PessoaJuridicaHandler) Create(c *gin.Context) {
	var req cadastroapp.CreatePessoaJuridicaRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaCreateFailed", msgPessoaJuridicaCreateFailed, cnpjPayload(nil, req.Cnpj, req.Cep), err))
		return
	}

	pessoa, err := h.pessoaService.Create(c.Request.Context(), req)
	if err != nil {
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaJuridicaCreateFailed", msgPessoaJuridicaCreateFailed, cnpjPayload(nil, req.Cnpj, req.Cep), err))
		return
	}

	h.Success(c, http.StatusCreated,
		tracking.Success("PessoaJuridicaCreated", msgPessoaJuridicaCreated, cnpjPayload(pessoa.ID, req.Cnpj, req.Cep)),
		pessoa)
}

// GetByID godoc
// @ID           getPessoaJuridica
// @Summary      Get a company
// @Tags         pessoas-juridicas
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  dto.SuccessResponse{data=cadastroapp.PessoaJuridicaResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /pessoas-juridicas/{id} [get]
func (h *PessoaJuridicaHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaGetFailed", msgPessoaJuridicaGetFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	pessoa, err := h.pessoaService.GetByID(c.Request.Context(), id)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaJuridicaGetNotFound", msgPessoaJuridicaNotFound, gin.H{"id": id}))
			return
		}
		h.Failure(c, tracking.Failure("PessoaJuridicaGetFailed", msgPessoaJuridicaGetFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK, tracking.Success("PessoaJuridicaGetOk", msgPessoaJuridicaGetOk, gin.H{"id": id}), pessoa)
}

// List godoc
// @ID           listPessoasJuridicas
// @Summary      List companies
// @Description  Lists every company ordered by corporate name
// @Tags         pessoas-juridicas
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=dto.ListResponse[cadastroapp.PessoaJuridicaResponse]}
// @Router       /pessoas-juridicas [get]
func (h *PessoaJuridicaHandler) List(c *gin.Context) {
	items, err := h.pessoaService.List(c.Request.Context())
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaListFailed", msgPessoaJuridicaListFailed, nil, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaJuridicaListOk", msgPessoaJuridicaListOk, gin.H{"count": len(items)}),
		dto.NewListResponse(items))
}

// Update godoc
// @ID           updatePessoaJuridica
// @Summary      Update a company
// @Tags         pessoas-juridicas
// @Accept       json
// @Produce      json
// @Param        id       path      string                                   true  "Company id"
// @Param        request  body      cadastroapp.UpdatePessoaJuridicaRequest  true  "Corporate name and CNPJ"
// @Success      200      {object}  dto.SuccessResponse{data=cadastroapp.PessoaJuridicaResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Failure      404      {object}  dto.FailureResponse
// @Router       /pessoas-juridicas/{id} [put]
func (h *PessoaJuridicaHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaUpdateFailed", msgPessoaJuridicaUpdateFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	var req cadastroapp.UpdatePessoaJuridicaRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaUpdateFailed", msgPessoaJuridicaUpdateFailed, gin.H{"id": id}, err))
		return
	}

	pessoa, err := h.pessoaService.Update(c.Request.Context(), id, req)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaJuridicaUpdateNotFound", msgPessoaJuridicaNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaJuridicaUpdateFailed", msgPessoaJuridicaUpdateFailed,
				gin.H{"id": id, "cnpjLast4": valueobject.Last4Digits(req.Cnpj)}, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaJuridicaUpdated", msgPessoaJuridicaUpdated,
			gin.H{"id": id, "cnpjLast4": valueobject.Last4Digits(req.Cnpj)}),
		pessoa)
}

// Delete godoc
// @ID           deletePessoaJuridica
// @Summary      Delete a company
// @Tags         pessoas-juridicas
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  dto.SuccessResponse{data=dto.IDResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /pessoas-juridicas/{id} [delete]
func (h *PessoaJuridicaHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaJuridicaDeleteFailed", msgPessoaJuridicaDeleteFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	if err := h.pessoaService.Delete(c.Request.Context(), id); err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaJuridicaDeleteNotFound", msgPessoaJuridicaNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaJuridicaDeleteFailed", msgPessoaJuridicaDeleteFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaJuridicaDeleted", msgPessoaJuridicaDeleted, gin.H{"id": id}),
		dto.IDResponse{ID: id.String()})
}

// RegisterRoutes mounts the company endpoints on rg
func (h *PessoaJuridicaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pessoas := rg.Group("/pessoas-juridicas")
	pessoas.POST("", h.Create)
	pessoas.GET("", h.List)
	pessoas.GET("/:id", h.GetByID)
	pessoas.PUT("/:id", h.Update)
	pessoas.DELETE("/:id", h.Delete)
}

// cnpjPayload builds a create event payload; id is omitted when nil
func cnpjPayload(id any, cnpj, cep string) gin.H {
	payload := gin.H{"cnpjLast4": valueobject.Last4Digits(cnpj), "cep": cep}
	if id != nil {
		payload["id"] = id
	}
	return payload
}
