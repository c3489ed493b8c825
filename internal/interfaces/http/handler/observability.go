package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/casepan/backend/internal/application/observability"
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/interfaces/http/dto"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ErrInvalidSampleSize is returned when the max query parameter is not a number
var ErrInvalidSampleSize = shared.NewDomainError(dto.ErrCodeInvalidInput, "max deve ser um número inteiro.")

// ObservabilityHandler exposes read-only views of the event pipeline.
// Its requests are not tracked so reading the volumetry does not change it.
type ObservabilityHandler struct {
	volumetry *observability.VolumetryService
	queue     observability.QueueInspector
}

// NewObservabilityHandler creates a new ObservabilityHandler. queue may be
// nil when SQS is not configured.
func NewObservabilityHandler(volumetry *observability.VolumetryService, queue observability.QueueInspector) *ObservabilityHandler {
	return &ObservabilityHandler{volumetry: volumetry, queue: queue}
}

// Volumetria godoc
// @ID           getVolumetria
// @Summary      Summarise recent events
// @Description  Groups the last tail events of the event file by event name and by endpoint
// @Tags         observability
// @Produce      json
// @Param        tail  query     int  false  "Number of lines to read (1..100000)"  default(5000)
// @Success      200   {object}  dto.SuccessResponse{data=observability.VolumetrySummary}
// @Failure      400   {object}  dto.FailureResponse
// @Failure      500   {object}  dto.FailureResponse
// @Router       /observability/volumetria [get]
func (h *ObservabilityHandler) Volumetria(c *gin.Context) {
	tail := 0
	if raw := c.Query("tail"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, http.StatusBadRequest, observability.ErrInvalidTail)
			return
		}
		tail = n
	}

	summary, err := h.volumetry.Summarize(c.Request.Context(), tail)
	if err != nil {
		if errors.Is(err, observability.ErrInvalidTail) {
			h.fail(c, http.StatusBadRequest, err)
			return
		}
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	h.ok(c, summary)
}

// EventsFile godoc
// @ID           getEventsFile
// @Summary      Describe the event file
// @Tags         observability
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=observability.EventLogInfo}
// @Failure      500  {object}  dto.FailureResponse
// @Router       /observability/events-file [get]
func (h *ObservabilityHandler) EventsFile(c *gin.Context) {
	info, err := h.volumetry.EventFile(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	h.ok(c, info)
}

// QueueStats godoc
// @ID           getQueueStats
// @Summary      Approximate SQS queue depth
// @Tags         observability
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=observability.QueueStats}
// @Failure      502  {object}  dto.FailureResponse
// @Failure      503  {object}  dto.FailureResponse
// @Router       /observability/sqs [get]
func (h *ObservabilityHandler) QueueStats(c *gin.Context) {
	if h.queue == nil {
		h.fail(c, http.StatusServiceUnavailable, observability.ErrQueueNotConfigured)
		return
	}

	stats, err := h.queue.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, queueErrorStatus(err), err)
		return
	}
	h.ok(c, stats)
}

// QueueSample godoc
// @ID           getQueueSample
// @Summary      Peek at SQS messages
// @Description  Receives up to max messages (1..10) without deleting them
// @Tags         observability
// @Produce      json
// @Param        max  query     int  false  "Messages to peek"  default(1)
// @Success      200  {object}  dto.SuccessResponse{data=[]observability.QueueMessage}
// @Failure      400  {object}  dto.FailureResponse
// @Failure      502  {object}  dto.FailureResponse
// @Failure      503  {object}  dto.FailureResponse
// @Router       /observability/sqs/sample [get]
func (h *ObservabilityHandler) QueueSample(c *gin.Context) {
	if h.queue == nil {
		h.fail(c, http.StatusServiceUnavailable, observability.ErrQueueNotConfigured)
		return
	}

	size := 1
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, http.StatusBadRequest, ErrInvalidSampleSize)
			return
		}
		size = n
	}

	messages, err := h.queue.Sample(c.Request.Context(), size)
	if err != nil {
		h.fail(c, queueErrorStatus(err), err)
		return
	}
	if messages == nil {
		messages = []observability.QueueMessage{}
	}
	h.ok(c, messages)
}

// RegisterRoutes mounts the observability endpoints on rg
func (h *ObservabilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	obs := rg.Group("/observability")
	obs.GET("/volumetria", h.Volumetria)
	obs.GET("/events-file", h.EventsFile)
	obs.GET("/sqs", h.QueueStats)
	obs.GET("/sqs/sample", h.QueueSample)
}

func (h *ObservabilityHandler) ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(middleware.GetCorrelationID(c), "", data))
}

func (h *ObservabilityHandler) fail(c *gin.Context, status int, err error) {
	c.JSON(status, dto.NewFailureResponse(middleware.GetCorrelationID(c), dto.ErrorMessage(err), nil))
}

func queueErrorStatus(err error) int {
	if errors.Is(err, observability.ErrQueueNotConfigured) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
