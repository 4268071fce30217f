package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newServer(s *Sessions) *echo.Echo {
	e := echo.New()
	g := e.Group("", s.Session())
	g.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"username": Username(c), "role": Role(c)})
	})
	g.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, AdminOnly())
	return e
}

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessions("secret", time.Hour)
	tok, exp, err := s.Issue("ana", "usuario")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "usuario", claims.Role)
	assert.NotEmpty(t, claims.ID)

	_, err = NewSessions("other", time.Hour).Parse(tok)
	assert.Error(t, err)
}

func TestSessionExpires(t *testing.T) {
	s := NewSessions("secret", time.Minute)
	tok, _, err := s.Issue("ana", "usuario")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = s.Parse(tok)
	assert.Error(t, err)
}

func TestSessionMiddleware(t *testing.T) {
	s := NewSessions("secret", time.Hour)
	e := newServer(s)
	userTok, _, err := s.Issue("ana", "usuario")
	require.NoError(t, err)
	adminTok, _, err := s.Issue("admin", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		cookie string
		bearer string
		want   int
	}{
		{"no session", "/me", "", "", http.StatusUnauthorized},
		{"garbage", "/me", "not-a-token", "", http.StatusUnauthorized},
		{"cookie", "/me", userTok, "", http.StatusOK},
		{"bearer", "/me", "", userTok, http.StatusOK},
		{"user on admin route", "/admin", userTok, "", http.StatusForbidden},
		{"admin on admin route", "/admin", adminTok, "", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.bearer)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestClearCookie(t *testing.T) {
	ck := NewSessions("secret", time.Hour).Cookie("", time.Time{})
	assert.Equal(t, SessionCookie, ck.Name)
	assert.Equal(t, -1, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, path := range []string{"/ok", "/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}
