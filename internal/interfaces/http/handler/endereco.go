package handler

import (
	"net/http"

	cadastroapp "github.com/casepan/backend/internal/application/cadastro"
	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/interfaces/http/dto"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
)

const (
	msgEnderecoCreated      = "Endereço cadastrado com sucesso."
	msgEnderecoCreateFailed = "Houve um erro ao cadastrar o endereço."
	msgEnderecoGetOk        = "Consulta de endereço realizada com sucesso."
	msgEnderecoGetFailed    = "Houve um erro ao consultar o endereço."
	msgEnderecoListOk       = "Listagem de endereços realizada com sucesso."
	msgEnderecoListFailed   = "Houve um erro ao listar os endereços."
	msgEnderecoUpdated      = "Endereço atualizado com sucesso."
	msgEnderecoUpdateFailed = "Houve um erro ao atualizar o endereço."
	msgEnderecoDeleted      = "Endereço removido com sucesso."
	msgEnderecoDeleteFailed = "Houve um erro ao remover o endereço."
	msgEnderecoNotFound     = "Endereço não encontrado."
	msgLookupOk             = "Consulta de CEP realizada com sucesso."
	msgLookupNotFound       = "CEP não encontrado."
	msgLookupFailed         = "Houve um erro ao consultar o CEP."
)

// EnderecoHandler handles address endpoints
type EnderecoHandler struct {
	BaseHandler
	enderecoService *cadastroapp.EnderecoService
}

// NewEnderecoHandler creates a new EnderecoHandler
func NewEnderecoHandler(tracker *tracking.Tracker, enderecoService *cadastroapp.EnderecoService) *EnderecoHandler {
	return &EnderecoHandler{
		BaseHandler:     NewBaseHandler(tracker),
		enderecoService: enderecoService,
	}
}

// Create godoc
// @ID           createEndereco
// @Summary      Create an address from a CEP
// @Description  Looks the CEP up and stores the address with the given number and complement
// @Tags         enderecos
// @Accept       json
// @Produce      json
// @Param        X-Correlation-Id  header    string                                    false  "Correlation id"
// @Param        request           body      cadastroapp.CreateEnderecoFromCEPRequest  true   "Address"
// @Success      201               {object}  dto.SuccessResponse{data=cadastroapp.EnderecoResponse}
// @Failure      400               {object}  dto.FailureResponse
// @Router       /enderecos [post]
func (h *EnderecoHandler) Create(c *gin.Context) {
	var req cadastroapp.CreateEnderecoFromCEPRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("EnderecoCreateFailed", msgEnderecoCreateFailed, gin.H{"cep": req.Cep}, err))
		return
	}

	endereco, err := h.enderecoService.CreateFromCEP(c.Request.Context(), req)
	if err != nil {
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("EnderecoCreateFailed", msgEnderecoCreateFailed, gin.H{"cep": req.Cep}, err))
		return
	}

	h.Success(c, http.StatusCreated,
		tracking.Success("EnderecoCreated", msgEnderecoCreated, gin.H{"id": endereco.ID, "cep": req.Cep}),
		endereco)
}

// CreateManual godoc
// @ID           createEnderecoManual
// @Summary      Create an address from explicit fields
// @Tags         enderecos
// @Accept       json
// @Produce      json
// @Param        request  body      cadastroapp.CreateEnderecoRequest  true  "Address"
// @Success      201      {object}  dto.SuccessResponse{data=cadastroapp.EnderecoResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Router       /enderecos/manual [post]
func (h *EnderecoHandler) CreateManual(c *gin.Context) {
	var req cadastroapp.CreateEnderecoRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("EnderecoCreateFailed", msgEnderecoCreateFailed, gin.H{"cep": req.Cep, "manual": true}, err))
		return
	}

	endereco, err := h.enderecoService.Create(c.Request.Context(), req)
	if err != nil {
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("EnderecoCreateFailed", msgEnderecoCreateFailed, gin.H{"cep": req.Cep, "manual": true}, err))
		return
	}

	h.Success(c, http.StatusCreated,
		tracking.Success("EnderecoCreated", msgEnderecoCreated, gin.H{"id": endereco.ID, "cep": req.Cep, "manual": true}),
		endereco)
}

// GetByID godoc
// @ID           getEndereco
// @Summary      Get an address
// @Tags         enderecos
// @Produce      json
// @Param        id   path      string  true  "Address id"
// @Success      200  {object}  dto.SuccessResponse{data=cadastroapp.EnderecoResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /enderecos/{id} [get]
func (h *EnderecoHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("EnderecoGetFailed", msgEnderecoGetFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	endereco, err := h.enderecoService.GetByID(c.Request.Context(), id)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("EnderecoGetNotFound", msgEnderecoNotFound, gin.H{"id": id}))
			return
		}
		h.Failure(c, tracking.Failure("EnderecoGetFailed", msgEnderecoGetFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK, tracking.Success("EnderecoGetOk", msgEnderecoGetOk, gin.H{"id": id}), endereco)
}

// List godoc
// @ID           listEnderecos
// @Summary      List addresses
// @Description  Lists every address ordered by CEP
// @Tags         enderecos
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=dto.ListResponse[cadastroapp.EnderecoResponse]}
// @Router       /enderecos [get]
func (h *EnderecoHandler) List(c *gin.Context) {
	items, err := h.enderecoService.List(c.Request.Context())
	if err != nil {
		h.Failure(c, tracking.Failure("EnderecoListFailed", msgEnderecoListFailed, nil, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("EnderecoListOk", msgEnderecoListOk, gin.H{"count": len(items)}),
		dto.NewListResponse(items))
}

// Update godoc
// @ID           updateEndereco
// @Summary      Update an address
// @Tags         enderecos
// @Accept       json
// @Produce      json
// @Param        id       path      string                             true  "Address id"
// @Param        request  body      cadastroapp.UpdateEnderecoRequest  true  "Address"
// @Success      200      {object}  dto.SuccessResponse{data=cadastroapp.EnderecoResponse}
// @Failure      400      {object}  dto.FailureResponse
// @Failure      404      {object}  dto.FailureResponse
// @Router       /enderecos/{id} [put]
func (h *EnderecoHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("EnderecoUpdateFailed", msgEnderecoUpdateFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	var req cadastroapp.UpdateEnderecoRequest
	if err := bindJSON(c, &req); err != nil {
		h.Failure(c, tracking.Failure("EnderecoUpdateFailed", msgEnderecoUpdateFailed, gin.H{"id": id}, err))
		return
	}

	endereco, err := h.enderecoService.Update(c.Request.Context(), id, req)
	if err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("EnderecoUpdateNotFound", msgEnderecoNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("EnderecoUpdateFailed", msgEnderecoUpdateFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK, tracking.Success("EnderecoUpdated", msgEnderecoUpdated, gin.H{"id": id}), endereco)
}

// Delete godoc
// @ID           deleteEndereco
// @Summary      Delete an address
// @Tags         enderecos
// @Produce      json
// @Param        id   path      string  true  "Address id"
// @Success      200  {object}  dto.SuccessResponse{data=dto.IDResponse}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /enderecos/{id} [delete]
func (h *EnderecoHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Failure(c, tracking.Failure("EnderecoDeleteFailed", msgEnderecoDeleteFailed, gin.H{"id": c.Param("id")}, err))
		return
	}

	if err := h.enderecoService.Delete(c.Request.Context(), id); err != nil {
		if dto.IsNotFound(err) {
			h.NotFound(c, tracking.NotFound("EnderecoDeleteNotFound", msgEnderecoNotFound, gin.H{"id": id}))
			return
		}
		h.FailureWithStatus(c, http.StatusBadRequest,
			tracking.Failure("EnderecoDeleteFailed", msgEnderecoDeleteFailed, gin.H{"id": id}, err))
		return
	}

	h.Success(c, http.StatusOK,
		tracking.Success("EnderecoDeleted", msgEnderecoDeleted, gin.H{"id": id}),
		dto.IDResponse{ID: id.String()})
}

// Lookup godoc
// @ID           lookupCEP
// @Summary      Look a CEP up
// @Description  Always answers a JSON array with zero or one address. The user message and the
// @Description  correlation id travel in the X-User-Message and X-Correlation-Id headers.
// @Tags         enderecos
// @Accept       json
// @Produce      json
// @Param        request  body      cadastroapp.LookupCEPRequest  true  "CEP"
// @Success      200      {array}   cadastro.PostalAddress
// @Failure      400      {array}   cadastro.PostalAddress
// @Failure      500      {array}   cadastro.PostalAddress
// @Router       /enderecos/lookup [post]
func (h *EnderecoHandler) Lookup(c *gin.Context) {
	var req cadastroapp.LookupCEPRequest
	if err := bindJSON(c, &req); err != nil {
		h.lookupResponse(c, http.StatusBadRequest,
			tracking.Failure("EnderecoLookupFailed", msgLookupFailed, gin.H{"cep": req.Cep}, err), nil)
		return
	}

	address, err := h.enderecoService.LookupCEP(c.Request.Context(), req.Cep)
	if err != nil {
		h.lookupResponse(c, http.StatusInternalServerError,
			tracking.Failure("EnderecoLookupFailed", msgLookupFailed, gin.H{"cep": req.Cep}, err), nil)
		return
	}

	payload := gin.H{"cep": req.Cep, "found": address != nil}
	if address == nil {
		h.lookupResponse(c, http.StatusOK, tracking.NotFound("EnderecoLookupNotFound", msgLookupNotFound, payload), nil)
		return
	}
	h.lookupResponse(c, http.StatusOK, tracking.Success("EnderecoLookupOk", msgLookupOk, payload), address)
}

func (h *EnderecoHandler) lookupResponse(c *gin.Context, status int, ev tracking.TrackedEvent, address *cadastro.PostalAddress) {
	correlationID := h.tracker.Track(c, ev)
	c.Header(middleware.UserMessageHeader, ev.UserMessage)
	c.Header(middleware.CorrelationIDHeader, correlationID)

	items := []cadastro.PostalAddress{}
	if address != nil {
		items = append(items, *address)
	}
	c.JSON(status, items)
}

// RegisterRoutes mounts the address endpoints on rg
func (h *EnderecoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	enderecos := rg.Group("/enderecos")
	enderecos.POST("", h.Create)
	enderecos.POST("/manual", h.CreateManual)
	enderecos.POST("/lookup", h.Lookup)
	enderecos.GET("", h.List)
	enderecos.GET("/:id", h.GetByID)
	enderecos.PUT("/:id", h.Update)
	enderecos.DELETE("/:id", h.Delete)
}
