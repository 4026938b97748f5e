package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events ordered by date ascending. When the domain query parameter is present it must be one of Tech, Non-Tech, Cultural, Sports and the result contains only events of that domain.
// @Tags events
// @Produce json
// @Param domain query string false "Domain filter" Enums(Tech, Non-Tech, Cultural, Sports)
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "Invalid domain"
// @Failure 500 {object} helpers.ErrorResponse "Error fetching events"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var filter domain.EventFilter
	if raw := r.URL.Query().Get("domain"); raw != "" {
		d, err := domain.ParseDomain(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid domain", "")
			return
		}
		filter.Domain = &d
	}

	events, err := c.Service.ListEvents(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Error fetching events", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns a single event.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse "Event not found"
// @Failure 500 {object} helpers.ErrorResponse "Error fetching event"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found", "")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Error fetching event", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Domain      string `json:"domain"`
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. All four fields are required; id, createdAt and updatedAt are server-assigned.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "All fields are required / Invalid domain / Invalid date"
// @Failure 500 {object} helpers.ErrorResponse "Error creating event"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeJSON(w, r, &req, "All fields are required") {
		return
	}
	if req.Name == "" || req.Description == "" || req.Date == "" || req.Domain == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "All fields are required", "")
		return
	}
	d, err := domain.ParseDomain(req.Domain)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid domain", "")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	event := domain.NewEvent(req.Name, req.Description, date, d)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, "All fields are required", "")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Error creating event", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}
