package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusevents/internal/errors"
	"campusevents/internal/service"
)

// RequestHandler handles event-request endpoints.
type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// SubmitRequestForm represents a student's event request submission.
type SubmitRequestForm struct {
	EventTitle        string `json:"event_title" form:"event_title" validate:"required"`
	Department        string `json:"department" form:"department" validate:"required"`
	StudentID         string `json:"student_id" form:"student_id" validate:"required"`
	EventDescription  string `json:"event_description" form:"event_description" validate:"required"`
	RehearsalDate     string `json:"rehearsal_date" form:"rehearsal_date" validate:"required"`
	ParticipantsNames string `json:"participants_names" form:"participants_names" validate:"required"`
	PracticeTiming    string `json:"practice_timing" form:"practice_timing" validate:"required"`
}

// SubmitRequest godoc
// @Summary Submit an event/rehearsal request
// @Tags requests
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body SubmitRequestForm true "Request fields"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /user/submit_request [post]
func (h *RequestHandler) SubmitRequest(c echo.Context) error {
	var form SubmitRequestForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.requestService.Submit(c.Request().Context(), service.SubmitRequestInput{
		EventTitle:        form.EventTitle,
		Department:        form.Department,
		StudentID:         form.StudentID,
		EventDescription:  form.EventDescription,
		RehearsalDate:     form.RehearsalDate,
		ParticipantsNames: form.ParticipantsNames,
		PracticeTiming:    form.PracticeTiming,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Redirect(http.StatusFound, "/user/dashboard")
}

// UpdateRequestStatus godoc
// @Summary Apply an admin decision to an event request
// @Tags requests
// @Param id path int true "Request ID"
// @Param status path string true "New status" Enums(pending, approved, rejected)
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/update_request_status/{id}/{status} [get]
func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.requestService.UpdateStatus(c.Request().Context(), id, c.Param("status")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}
