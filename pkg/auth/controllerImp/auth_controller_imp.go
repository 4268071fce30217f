package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cultivos/pkg/apperr"
	"cultivos/pkg/auth/controller"
	"cultivos/pkg/auth/service"
	"cultivos/pkg/middleware"
)

type authCtrl struct {
	svc      service.AuthService
	sessions *middleware.Sessions
}

func NewAuthController(svc service.AuthService, sessions *middleware.Sessions) controller.AuthController {
	return &authCtrl{svc: svc, sessions: sessions}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	u, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	tok, exp, err := h.sessions.Issue(u.Username, u.Role)
	if err != nil {
		return fail(c, err)
	}
	c.SetCookie(h.sessions.Cookie(tok, exp))
	return c.JSON(http.StatusOK, echo.Map{
		"username":   u.Username,
		"role":       u.Role,
		"email":      u.Email,
		"token":      tok,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Cookie("", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"username": middleware.Username(c),
		"role":     middleware.Role(c),
	})
}

func (h *authCtrl) Recover(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.RecoverByEmail(req.Email)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *authCtrl) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *authCtrl) CreateUser(c echo.Context) error {
	var req service.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	u, err := h.svc.CreateUser(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *authCtrl) UpdateUser(c echo.Context) error {
	var req service.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	u, err := h.svc.UpdateUser(c.Param("username"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *authCtrl) DeleteUser(c echo.Context) error {
	if err := h.svc.DeleteUser(c.Param("username")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
