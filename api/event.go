// Package api provides the HTTP handlers for the events service.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"eventdesk/event"
)

// EventStore is the narrow persistence interface the handlers depend on.
// Implemented by *store.Store.
type EventStore interface {
	Create(ctx context.Context, req event.CreateRequest) (event.Event, error)
	Get(ctx context.Context, id string) (*event.Event, error)
	List(ctx context.Context, statusFilter string) ([]event.Event, error)
	Update(ctx context.Context, id string, req event.UpdateRequest) (*event.Event, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ErrorResponse is the error body for all failure modes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

type EventAPI struct {
	store  EventStore
	logger *slog.Logger
}

func NewEventAPI(store EventStore, logger *slog.Logger) *EventAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventAPI{
		store:  store,
		logger: logger,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.POST("/events", a.createEvent)
	g.GET("/events", a.listEvents)
	g.GET("/events/:id", a.getEvent)
	g.PUT("/events/:id", a.updateEvent)
	g.DELETE("/events/:id", a.deleteEvent)
}

func (a *EventAPI) createEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var req event.CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
	}

	rec, err := a.store.Create(ctx, req)
	if err != nil {
		return a.storeError(c, err)
	}

	return c.JSON(http.StatusCreated, rec)
}

func (a *EventAPI) listEvents(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := a.store.List(ctx, c.QueryParam("status"))
	if err != nil {
		return a.storeError(c, err)
	}
	if records == nil {
		records = []event.Event{}
	}

	return c.JSON(http.StatusOK, records)
}

func (a *EventAPI) getEvent(c echo.Context) error {
	ctx := c.Request().Context()

	rec, err := a.store.Get(ctx, c.Param("id"))
	if err != nil {
		return a.storeError(c, err)
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: "event not found"})
	}

	return c.JSON(http.StatusOK, rec)
}

func (a *EventAPI) updateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var req event.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
	}

	rec, err := a.store.Update(ctx, c.Param("id"), req)
	if err != nil {
		return a.storeError(c, err)
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: "event not found"})
	}

	return c.JSON(http.StatusOK, rec)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	existed, err := a.store.Delete(ctx, id)
	if err != nil {
		return a.storeError(c, err)
	}
	if !existed {
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: "event not found"})
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Message: "event deleted",
		EventID: id,
	})
}

// storeError maps adapter failures to HTTP responses: validation to 422 and
// everything else to 500 with the underlying message exposed.
func (a *EventAPI) storeError(c echo.Context, err error) error {
	var vErr *event.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: vErr.Error()})
	}

	a.logger.Error("store operation failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}
