package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campusevents/internal/errors"
	"campusevents/internal/service"
)

// EventHandler handles admin event catalog endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventForm represents the fields of an event listing.
type EventForm struct {
	Title                string `json:"title" form:"title" validate:"required"`
	Description          string `json:"description" form:"description" validate:"required"`
	RegistrationDeadline string `json:"registration_deadline" form:"registration_deadline" validate:"required"`
}

// AddEvent godoc
// @Summary Create an event listing
// @Tags events
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body EventForm true "Event fields"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/add_event [post]
func (h *EventHandler) AddEvent(c echo.Context) error {
	var form EventForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.eventService.Create(c.Request().Context(), form.Title, form.Description, form.RegistrationDeadline); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// EditEventForm godoc
// @Summary Current values of an event, for form pre-population
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/edit_event/{id} [get]
func (h *EventHandler) EditEventForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// EditEvent godoc
// @Summary Update an event listing
// @Tags events
// @Accept json
// @Accept x-www-form-urlencoded
// @Param id path int true "Event ID"
// @Param request body EventForm true "Event fields"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/edit_event/{id} [post]
func (h *EventHandler) EditEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var form EventForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.eventService.Update(c.Request().Context(), id, form.Title, form.Description, form.RegistrationDeadline); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteEvent godoc
// @Summary Delete an event listing
// @Tags events
// @Param id path int true "Event ID"
// @Success 302
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/delete_event/{id} [get]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
