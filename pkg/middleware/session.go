package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cultivos/entities"
)

const (
	SessionCookie = "cultivos_session"

	// context keys set by Session
	CtxUsername = "username"
	CtxRole     = "role"
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Sessions) Issue(username, role string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return tok, exp, nil
}

func (s *Sessions) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if claims.Username == "" {
		return nil, errors.New("session has no username")
	}
	return claims, nil
}

// Cookie wraps a token for the browser. An empty token clears the session.
func (s *Sessions) Cookie(token string, expires time.Time) *http.Cookie {
	ck := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	}
	if token == "" {
		ck.MaxAge = -1
	}
	return ck
}

// Session requires a valid token from the session cookie or an
// "Authorization: Bearer" header and stores username and role on the context.
func (s *Sessions) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				tok = ck.Value
			}
			if tok == "" {
				if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
					tok = strings.TrimPrefix(h, "Bearer ")
				}
			}
			if tok == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
			}
			claims, err := s.Parse(tok)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired session"})
			}
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// AdminOnly must run after Session.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(CtxRole).(string); role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "administrator only"})
			}
			return next(c)
		}
	}
}

// Username is the logged-in user, or "" outside Session.
func Username(c echo.Context) string {
	v, _ := c.Get(CtxUsername).(string)
	return v
}

func Role(c echo.Context) string {
	v, _ := c.Get(CtxRole).(string)
	return v
}
