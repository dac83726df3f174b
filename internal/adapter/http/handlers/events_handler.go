package handlers

import (
	"net/http"
	"time"

	response "calcplanner/internal/adapter/http/dto/response"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	EventCatalog = "catalog"
	EventHandoff = "handoff"
)

// EventsHandler streams catalog and hand-off changes to the entry form over
// server-sent events, so an open form picks up price edits and "edit this
// estimate" requests without polling.
type EventsHandler struct {
	catalog   usecase.ICatalogUseCase
	handoff   usecase.IEditHandoff
	heartbeat time.Duration
}

func NewEventsHandler(catalog usecase.ICatalogUseCase, handoff usecase.IEditHandoff, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	return &EventsHandler{catalog: catalog, handoff: handoff, heartbeat: heartbeat}
}

type handoffEvent struct {
	Pending  bool                       `json:"pending"`
	Estimate *response.EstimateResponse `json:"estimate,omitempty"`
}

type streamEvent struct {
	name string
	data any
}

// Stream godoc
// @Summary  Live catalog and hand-off updates
// @Tags     events
// @Produce  text/event-stream
// @Success  200
// @Router   /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	events := make(chan streamEvent, 16)
	push := func(ev streamEvent) {
		// drop the event when the client lags behind
		select {
		case events <- ev:
		default:
		}
	}

	cancelCatalog := h.catalog.Subscribe(func(materials []entities.Material) {
		push(streamEvent{name: EventCatalog, data: response.FromCatalog(entities.CatalogSnapshot{
			Materials: materials,
			Source:    entities.SourceStored,
		})})
	})
	defer cancelCatalog()

	cancelHandoff := h.handoff.Subscribe(func(e *entities.Estimate) {
		push(streamEvent{name: EventHandoff, data: toHandoffEvent(e)})
	})
	defer cancelHandoff()

	headers := c.Writer.Header()
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// initial state
	var current *entities.Estimate
	if p, ok := h.handoff.Pending(); ok {
		current = &p
	}
	c.SSEvent(EventHandoff, toHandoffEvent(current))
	c.Writer.Flush()

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			c.SSEvent(ev.name, ev.data)
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": heartbeat\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

func toHandoffEvent(e *entities.Estimate) handoffEvent {
	if e == nil {
		return handoffEvent{}
	}
	res := response.FromEstimate(*e)
	return handoffEvent{Pending: true, Estimate: &res}
}
