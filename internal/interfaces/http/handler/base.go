package handler

import (
	"net/http"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/interfaces/http/dto"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrInvalidID is returned when the :id path parameter is not a UUID
var ErrInvalidID = shared.NewDomainError(dto.ErrCodeInvalidInput, "Id inválido.")

// BaseHandler provides the tracked response helpers shared by every handler.
// Each response goes through the tracker first so the body carries the same
// correlation id as the published event.
type BaseHandler struct {
	tracker *tracking.Tracker
}

// NewBaseHandler creates a BaseHandler
func NewBaseHandler(tracker *tracking.Tracker) BaseHandler {
	return BaseHandler{tracker: tracker}
}

// Success tracks ev and writes a success envelope with status
func (h *BaseHandler) Success(c *gin.Context, status int, ev tracking.TrackedEvent, data any) {
	correlationID := h.tracker.Track(c, ev)
	c.JSON(status, dto.NewSuccessResponse(correlationID, ev.UserMessage, data))
}

// NotFound tracks ev and writes a 404 failure envelope
func (h *BaseHandler) NotFound(c *gin.Context, ev tracking.TrackedEvent) {
	correlationID := h.tracker.Track(c, ev)
	c.JSON(http.StatusNotFound, dto.NewFailureResponse(correlationID, ev.UserMessage, nil))
}

// Failure tracks ev and writes a failure envelope whose status derives from ev.Err
func (h *BaseHandler) Failure(c *gin.Context, ev tracking.TrackedEvent) {
	h.FailureWithStatus(c, dto.StatusForError(ev.Err), ev)
}

// FailureWithStatus tracks ev and writes a failure envelope with an explicit status
func (h *BaseHandler) FailureWithStatus(c *gin.Context, status int, ev tracking.TrackedEvent) {
	correlationID := h.tracker.Track(c, ev)
	c.JSON(status, dto.NewFailureResponse(correlationID, ev.UserMessage, ev.Err))
}

// bindJSON decodes the request body into req. Binding errors become an
// INVALID_INPUT domain error carrying the translated validation message.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return shared.NewDomainError(dto.ErrCodeInvalidInput, middleware.ValidationMessage(err))
	}
	return nil
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
