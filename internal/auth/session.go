package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie written on login and cleared on logout.
const CookieName = "campus_session"

// ErrInvalidSession is returned when a session token fails validation.
var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the signed session payload. At most one slot is set per
// token: issuing always starts from a clean claim set, so logging in as one
// role discards any identity the previous token carried.
type SessionClaims struct {
	UserID  uint `json:"user_id,omitempty"`
	AdminID uint `json:"admin_id,omitempty"`
	jwt.RegisteredClaims
}

// SessionService signs and validates session tokens.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a session service with the given secret and TTL.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// IssueUser returns a token whose only identity slot is the user id.
func (s *SessionService) IssueUser(userID uint) (string, error) {
	return s.issue(SessionClaims{UserID: userID})
}

// IssueAdmin returns a token whose only identity slot is the admin id.
func (s *SessionService) IssueAdmin(adminID uint) (string, error) {
	return s.issue(SessionClaims{AdminID: adminID})
}

func (s *SessionService) issue(claims SessionClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(s.secret)
}

// Parse validates a session token and returns its claims.
func (s *SessionService) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// WriteCookie stores a session token on the response.
func (s *SessionService) WriteCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie invalidates the session cookie on the response.
func (s *SessionService) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
