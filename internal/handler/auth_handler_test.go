package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campusevents/internal/auth"
	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterUser(ctx context.Context, studentID, password string) (*model.User, error) {
	args := m.Called(ctx, studentID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) LoginUser(ctx context.Context, studentID, password string) (string, *model.User, error) {
	args := m.Called(ctx, studentID, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, username, password string) (string, *model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newFormContext(method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestSessions() *auth.SessionService {
	return auth.NewSessionService("test-secret", time.Hour)
}

func TestRegisterRedirectsToLogin(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, newTestSessions())

	svc.On("RegisterUser", mock.Anything, "S1", "pw1").Return(&model.User{ID: 1, StudentID: "S1"}, nil)

	c, rec := newFormContext(http.MethodPost, "/user/register", url.Values{
		"student_id": {"S1"},
		"password":   {"pw1"},
	})
	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRegisterDuplicateNamesStudentID(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, newTestSessions())

	svc.On("RegisterUser", mock.Anything, "S1", "pw1").Return(nil, apperrors.ErrStudentIDTaken)

	c, _ := newFormContext(http.MethodPost, "/user/register", url.Values{
		"student_id": {"S1"},
		"password":   {"pw1"},
	})
	err := h.Register(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Contains(t, resp.Error, "S1")
}

func TestRegisterEmptyFieldsRejected(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, newTestSessions())

	c, _ := newFormContext(http.MethodPost, "/user/register", url.Values{
		"student_id": {"S1"},
	})
	err := h.Register(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserLoginSetsSessionAndRedirects(t *testing.T) {
	svc := new(MockAuthService)
	sessions := newTestSessions()
	h := NewAuthHandler(svc, sessions)

	token, err := sessions.IssueUser(3)
	assert.NoError(t, err)
	svc.On("LoginUser", mock.Anything, "S1", "pw1").Return(token, &model.User{ID: 3, StudentID: "S1"}, nil)

	c, rec := newFormContext(http.MethodPost, "/user/login", url.Values{
		"student_id": {"S1"},
		"password":   {"pw1"},
	})
	assert.NoError(t, h.UserLogin(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/dashboard", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == auth.CookieName && cookie.Value == token {
			found = true
		}
	}
	assert.True(t, found, "session cookie must be written")
}

func TestUserLoginWrongPassword(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, newTestSessions())

	svc.On("LoginUser", mock.Anything, "S1", "bad").Return("", nil, apperrors.ErrIncorrectPassword)

	c, rec := newFormContext(http.MethodPost, "/user/login", url.Values{
		"student_id": {"S1"},
		"password":   {"bad"},
	})
	err := h.UserLogin(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	// Session untouched on failure.
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdminLoginRedirectsToDashboard(t *testing.T) {
	svc := new(MockAuthService)
	sessions := newTestSessions()
	h := NewAuthHandler(svc, sessions)

	token, err := sessions.IssueAdmin(1)
	assert.NoError(t, err)
	svc.On("LoginAdmin", mock.Anything, "root", "hunter2").Return(token, &model.Admin{ID: 1, Username: "root"}, nil)

	c, rec := newFormContext(http.MethodPost, "/admin/login", url.Values{
		"username": {"root"},
		"password": {"hunter2"},
	})
	assert.NoError(t, h.AdminLogin(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestLogoutClearsSession(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, newTestSessions())

	c, rec := newFormContext(http.MethodGet, "/logout", url.Values{})
	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	var cleared bool
	for _, cookie := range cookies {
		if cookie.Name == auth.CookieName && cookie.Value == "" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be cleared")
}
