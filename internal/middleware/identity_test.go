package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubAdminRepo struct {
	admin *model.Admin
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *model.Admin) error { return nil }
func (s *stubAdminRepo) Update(ctx context.Context, admin *model.Admin) error { return nil }

func (s *stubAdminRepo) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func newTestContext(t *testing.T, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoadIdentityResolvesUser(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", time.Hour)
	user := &model.User{ID: 3, StudentID: "S1"}
	resolve := LoadIdentity(sessions, &stubUserRepo{user: user}, &stubAdminRepo{})

	token, err := sessions.IssueUser(3)
	assert.NoError(t, err)

	c, _ := newTestContext(t, token)
	err = resolve(func(c echo.Context) error {
		assert.Equal(t, user, CurrentUser(c))
		assert.Nil(t, CurrentAdmin(c))
		return nil
	})(c)
	assert.NoError(t, err)
}

func TestLoadIdentityAnonymousWithoutCookie(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", time.Hour)
	resolve := LoadIdentity(sessions, &stubUserRepo{}, &stubAdminRepo{})

	c, _ := newTestContext(t, "")
	err := resolve(func(c echo.Context) error {
		assert.Nil(t, CurrentUser(c))
		assert.Nil(t, CurrentAdmin(c))
		return nil
	})(c)
	assert.NoError(t, err)
}

func TestLoadIdentityToleratesGarbageCookie(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", time.Hour)
	resolve := LoadIdentity(sessions, &stubUserRepo{}, &stubAdminRepo{})

	c, _ := newTestContext(t, "not-a-token")
	called := false
	err := resolve(func(c echo.Context) error {
		called = true
		assert.Nil(t, CurrentUser(c))
		return nil
	})(c)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestLoadIdentityLookupMissIsAnonymous(t *testing.T) {
	sessions := auth.NewSessionService("test-secret", time.Hour)
	// Token points at a user that no longer exists.
	resolve := LoadIdentity(sessions, &stubUserRepo{}, &stubAdminRepo{})

	token, err := sessions.IssueUser(42)
	assert.NoError(t, err)

	c, _ := newTestContext(t, token)
	err = resolve(func(c echo.Context) error {
		assert.Nil(t, CurrentUser(c))
		return nil
	})(c)
	assert.NoError(t, err)
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	c, rec := newTestContext(t, "")

	called := false
	err := RequireUser(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	assert.NoError(t, err)
	assert.False(t, called, "handler must not run on redirect")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, UserLoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	c, rec := newTestContext(t, "")

	err := RequireAdmin(func(c echo.Context) error { return nil })(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, AdminLoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestRequireUserIgnoresAdminSlot(t *testing.T) {
	c, rec := newTestContext(t, "")
	c.Set(ContextAdminKey, &model.Admin{ID: 1, Username: "root"})

	err := RequireUser(func(c echo.Context) error { return nil })(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, UserLoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestRequireUserPassesResolvedUser(t *testing.T) {
	c, _ := newTestContext(t, "")
	c.Set(ContextUserKey, &model.User{ID: 3, StudentID: "S1"})

	called := false
	err := RequireUser(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}
