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
	msgPessoaFisicaCreated      = "Cadastro de pessoa física realizado com sucesso."
	msgPessoaFisicaCreateFailed = "Houve um erro ao cadastrar a pessoa física."
	msgPessoaFisicaGetOk        = "Consulta de pessoa física realizada com sucesso."
	msgPessoaFisicaGetFailed    = "Houve um erro ao consultar a pessoa física."
	msgPessoaFisicaListOk       = "Listagem de pessoas físicas realizada com sucesso."
	msgPessoaFisicaListFailed   = "Houve um erro ao listar as pessoas físicas."
	msgPessoaFisicaUpdated      = "Cadastro de pessoa física atualizado com sucesso."
	msgPessoaFisicaUpdateFailed = "Houve um erro ao atualizar a pessoa física."
	msgPessoaFisicaDeleted      = "Cadastro de pessoa física removido com sucesso."
	msgPessoaFisicaDeleteFailed = "Houve um erro ao remover a pessoa física."
	msgPessoaFisicaNotFound     = "Pessoa física não encontrada."
)

// PessoaFisicaHandler handles individual endpoints.
// Events carry only the last four CPF digits.
type PessoaFisicaHandler struct {
	BaseHandler
	pessoaService *cadastroapp.PessoaFisicaService
}

// NewPessoaFisicaHandler creates a new PessoaFisicaHandler
func NewPessoaFisicaHandler(tracker *tracking.Tracker, pessoaService *cadastroapp.PessoaFisicaService) *PessoaFisicaHandler {
	return &PessoaFisicaHandler{
		BaseHandler:   NewBaseHandler(tracker),
		pessoaService: pessoaService,
	}
}

// Create godoc
// @ID           createPessoaFisica
// @Summary      Register an individual
// @Description  Looks the CEP up, stores the address and then the individual
// @Tags         pessoas-fisicas
// @Accept       json
// @Produce      json
// @Param        request  body      cadastroapp.CreatePessoaFisicaRequest  true  "Individual"
// @Success      201      {object}  dto.SuccessResponse{data=cadastroapp.PessoaFisicaResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Router       /pessoas-fisicas [post]
func (h *PessoaFisicaHandler) Create(c *gin.Context) {
	var req cadastroapp.CreatePessoaFisicaRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaCreateFailed", msgPessoaFisicaCreateFailed, cpfPayload(nil, req.Cpf, req.Cep), err))
		return
	}

	pessoa, err := h.pessoaService.Create(c.Request.Context(), req)
	if err != nil {
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaFisicaCreateFailed", msgPessoaFisicaCreateFailed, cpfPayload(nil, req.Cpf, req.Cep), err))
		return
	}

	h.Success(c, http.StatusCreated,
		tracking.Success("PessoaFisicaCreated", msgPessoaFisicaCreated, cpfPayload(pessoa.ID, req.Cpf, req.Cep)),
		pessoa)
}

// GetByID godoc
// @ID           getPessoaFisica
// @Summary      Get an individual
// @Tags         pessoas-fisicas
// @Produce      json
// @Param        id   path      string  true  "Individual id"
// @Success      200  {object}  dto.SuccessResponse{data=cadastroapp.PessoaFisicaResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /pessoas-fisicas/{id} [get]
func (h *PessoaFisicaHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaGetFailed", msgPessoaFisicaGetFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	pessoa, err := h.pessoaService.GetByID(c.Request.Context(), id)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaFisicaGetNotFound", msgPessoaFisicaNotFound, gin.H{"id": id}))
			return
		}
		h.Failure(c, tracking.Failure("PessoaFisicaGetFailed", msgPessoaFisicaGetFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK, tracking.Success("PessoaFisicaGetOk", msgPessoaFisicaGetOk, gin.H{"id": id}), pessoa)
}

// List godoc
// @ID           listPessoasFisicas
// @Summary      List individuals
// @Description  Lists every individual ordered by name
// @Tags         pessoas-fisicas
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=dto.ListResponse[cadastroapp.PessoaFisicaResponse]}
// @Router       /pessoas-fisicas [get]
func (h *PessoaFisicaHandler) List(c *gin.Context) {
	items, err := h.pessoaService.List(c.Request.Context())
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaListFailed", msgPessoaFisicaListFailed, nil, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaFisicaListOk", msgPessoaFisicaListOk, gin.H{"count": len(items)}),
		dto.NewListResponse(items))
}

// Update godoc
// @ID           updatePessoaFisica
// @Summary      Update an individual
// @Tags         pessoas-fisicas
// @Accept       json
// @Produce      json
// @Param        id       path      string                                 true  "Individual id"
// @Param        request  body      cadastroapp.UpdatePessoaFisicaRequest  true  "Name and CPF"
// @Success      200      {object}  dto.SuccessResponse{data=cadastroapp.PessoaFisicaResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Failure      404      {object}  dto.FailureResponse
// @Router       /pessoas-fisicas/{id} [put]
func (h *PessoaFisicaHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaUpdateFailed", msgPessoaFisicaUpdateFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	var req cadastroapp.UpdatePessoaFisicaRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaUpdateFailed", msgPessoaFisicaUpdateFailed, gin.H{"id": id}, err))
		return
	}

	pessoa, err := h.pessoaService.Update(c.Request.Context(), id, req)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaFisicaUpdateNotFound", msgPessoaFisicaNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaFisicaUpdateFailed", msgPessoaFisicaUpdateFailed,
				gin.H{"id": id, "cpfLast4": valueobject.Last4Digits(req.Cpf)}, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaFisicaUpdated", msgPessoaFisicaUpdated,
			gin.H{"id": id, "cpfLast4": valueobject.Last4Digits(req.Cpf)}),
		pessoa)
}

// Delete godoc
// @ID           deletePessoaFisica
// @Summary      Delete an individual
// @Tags         pessoas-fisicas
// @Produce      json
// @Param        id   path      string  true  "Individual id"
// @Success      200  {object}  dto.SuccessResponse{data=dto.IDResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /pessoas-fisicas/{id} [delete]
func (h *PessoaFisicaHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("PessoaFisicaDeleteFailed", msgPessoaFisicaDeleteFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	if err := h.pessoaService.Delete(c.Request.Context(), id); err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("PessoaFisicaDeleteNotFound", msgPessoaFisicaNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("PessoaFisicaDeleteFailed", msgPessoaFisicaDeleteFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("PessoaFisicaDeleted", msgPessoaFisicaDeleted, gin.H{"id": id}),
		dto.IDResponse{ID: id.String()})
}

// RegisterRoutes mounts the individual endpoints on rg
func (h *PessoaFisicaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pessoas := rg.Group("/pessoas-fisicas")
	pessoas.POST("", h.Create)
	pessoas.GET("", h.List)
	pessoas.GET("/:id", h.GetByID)
	pessoas.PUT("/:id", h.Update)
	pessoas.DELETE("/:id", h.Delete)
}

// cpfPayload builds a create event payload; id is omitted when nil
func cpfPayload(id any, cpf, cep string) gin.H {
	payload := gin.H{"cpfLast4": valueobject.Last4Digits(cpf), "cep": cep}
	if id != nil {
		payload["id"] = id
	}
	return payload
}
