package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// heartbeatInterval keeps idle event streams alive through proxies.
const heartbeatInterval = 30 * time.Second

// countsHandler serves the document counts and pushes fresh counts whenever a
// submission is accepted.
type countsHandler struct {
	counts portssvc.CountsSvc
	events portssvc.EventSubscriber
}

func newCountsHandler(counts portssvc.CountsSvc, events portssvc.EventSubscriber) *countsHandler {
	return &countsHandler{counts: counts, events: events}
}

func registerCountsRoutes(rg *gin.RouterGroup, counts portssvc.CountsSvc, events portssvc.EventSubscriber) {
	h := newCountsHandler(counts, events)
	rg.GET("/counts", h.getCounts)
	if events != nil {
		rg.GET("/events", h.streamEvents)
	}
}

// getCounts godoc
// @Summary Get document counts
// @Description Number of documents of each kind held by the backend
// @Tags counts
// @Produce json
// @Success 200 {object} domain.Counts
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend unavailable"
// @Security BearerAuth
// @Router /counts [get]
func (h *countsHandler) getCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	counts, err := h.counts.GetCounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to read document counts")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// streamEvents godoc
// @Summary Stream document count changes
// @Description Server-sent events: a "counts" event on connect and after every accepted submission, preceded by the "submitted" event that caused it
// @Tags counts
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /events [get]
func (h *countsHandler) streamEvents(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	ch, cancel := h.events.Subscribe()
	defer cancel()
	logger.Info("Event stream opened")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	pushCounts := func() {
		counts, err := h.counts.GetCounts(ctx)
		if err != nil {
			logger.Warn("Failed to refresh counts for event stream", slog.String("error", err.Error()))
			c.SSEvent("error", gin.H{"error": "counts unavailable"})
			return
		}
		c.SSEvent("counts", counts)
	}
	pushCounts()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			logger.Info("Event stream closed by client")
			return false
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("submitted", evt)
			pushCounts()
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
