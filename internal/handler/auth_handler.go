package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"campusevents/internal/auth"
	"campusevents/internal/errors"
	"campusevents/internal/middleware"
	"campusevents/internal/service"
)

// AuthHandler handles login, registration, and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// RegisterRequest represents a student registration submission.
type RegisterRequest struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// UserLoginRequest represents a student login submission.
type UserLoginRequest struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// AdminLoginRequest represents an admin login submission.
type AdminLoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterPage godoc
// @Summary Registration page descriptor
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/register [get]
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":   "user_register",
		"fields": []string{"student_id", "password"},
	})
}

// Register godoc
// @Summary Register a student account
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body RegisterRequest true "Registration data"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.RegisterUser(c.Request().Context(), req.StudentID, req.Password); err != nil {
		if err == errors.ErrStudentIDTaken {
			return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
				Error: fmt.Sprintf("student %s is already registered", req.StudentID),
				Code:  "STUDENT_ID_TAKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to register",
			Code:  "REGISTRATION_FAILED",
		})
	}

	// Registration does not log the student in.
	return c.Redirect(http.StatusFound, middleware.UserLoginPath)
}

// UserLoginPage godoc
// @Summary Student login page descriptor
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/login [get]
func (h *AuthHandler) UserLoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":          "user_login",
		"fields":        []string{"student_id", "password"},
		"authenticated": middleware.CurrentUser(c) != nil,
	})
}

// UserLogin godoc
// @Summary Log in as a student
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body UserLoginRequest true "Login credentials"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/login [post]
func (h *AuthHandler) UserLogin(c echo.Context) error {
	var req UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.LoginUser(c.Request().Context(), req.StudentID, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// A fresh token carries only the user slot, discarding any prior identity.
	h.sessions.WriteCookie(c, token)
	return c.Redirect(http.StatusFound, "/user/dashboard")
}

// AdminLoginPage godoc
// @Summary Admin login page descriptor
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/login [get]
func (h *AuthHandler) AdminLoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":          "admin_login",
		"fields":        []string{"username", "password"},
		"authenticated": middleware.CurrentAdmin(c) != nil,
	})
}

// AdminLogin godoc
// @Summary Log in as an administrator
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body AdminLoginRequest true "Login credentials"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.LoginAdmin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.sessions.WriteCookie(c, token)
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout godoc
// @Summary Clear the session
// @Tags auth
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Clears whichever role was active; there is nothing role-specific here.
	h.sessions.ClearCookie(c)
	return c.Redirect(http.StatusFound, "/")
}
