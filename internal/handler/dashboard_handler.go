package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusevents/internal/errors"
	"campusevents/internal/middleware"
	"campusevents/internal/service"
)

// DashboardHandler serves the role dashboards.
type DashboardHandler struct {
	eventService   service.EventService
	requestService service.RequestService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(eventService service.EventService, requestService service.RequestService) *DashboardHandler {
	return &DashboardHandler{eventService: eventService, requestService: requestService}
}

// UserDashboard godoc
// @Summary Student dashboard: event listings and the student's own requests
// @Tags dashboards
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/dashboard [get]
func (h *DashboardHandler) UserDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := h.eventService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user := middleware.CurrentUser(c)
	requests, err := h.requestService.ListByStudentID(ctx, user.StudentID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"student_id": user.StudentID,
		"events":     events,
		"requests":   requests,
	})
}

// AdminDashboard godoc
// @Summary Admin dashboard: all requests and event listings
// @Tags dashboards
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	requests, err := h.requestService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	events, err := h.eventService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"requests": requests,
		"events":   events,
	})
}
