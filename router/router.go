package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	authCtrl "cultivos/pkg/auth/controller"
	catalogCtrl "cultivos/pkg/catalog/controller"
	hectareaCtrl "cultivos/pkg/hectarea/controller"
	managementCtrl "cultivos/pkg/management/controller"
	"cultivos/pkg/middleware"
)

type Controllers struct {
	Health     interface{ Health(echo.Context) error }
	Auth       authCtrl.AuthController
	Hectarea   hectareaCtrl.HectareaController
	Catalog    catalogCtrl.CatalogController
	Management managementCtrl.ManagementController
}

// New registers every route. Only /health, /login and /recover work without
// a session; catalog mutations and /users also require the admin role.
func New(e *echo.Echo, ctl Controllers, sessions *middleware.Sessions, log *zap.Logger) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", ctl.Health.Health)
	e.POST("/login", ctl.Auth.Login)
	e.POST("/recover", ctl.Auth.Recover)

	api := e.Group("", sessions.Session())
	admin := middleware.AdminOnly()

	api.POST("/logout", ctl.Auth.Logout)
	api.GET("/whoami", ctl.Auth.WhoAmI)

	users := api.Group("/users", admin)
	users.GET("", ctl.Auth.ListUsers)
	users.POST("", ctl.Auth.CreateUser)
	users.PUT("/:username", ctl.Auth.UpdateUser)
	users.DELETE("/:username", ctl.Auth.DeleteUser)

	h := api.Group("/hectareas")
	h.POST("/preview", ctl.Hectarea.Preview)
	h.POST("", ctl.Hectarea.Create)
	h.GET("", ctl.Hectarea.List)
	h.GET("/next", ctl.Hectarea.Next)
	h.GET("/export", ctl.Hectarea.Export)
	h.GET("/:numero", ctl.Hectarea.Get)
	h.PUT("/:numero", ctl.Hectarea.Update)
	h.DELETE("/:numero", ctl.Hectarea.Delete)

	cat := api.Group("/catalog")
	cat.GET("/crop/names", ctl.Catalog.CropNames)
	cat.GET("/:kind", ctl.Catalog.List)
	cat.GET("/:kind/search", ctl.Catalog.Search)
	cat.GET("/:kind/export", ctl.Catalog.Export)
	cat.GET("/:kind/:id", ctl.Catalog.Get)
	cat.POST("/:kind", ctl.Catalog.Create, admin)
	cat.PUT("/:kind/:id", ctl.Catalog.Update, admin)
	cat.DELETE("/:kind/:id", ctl.Catalog.Delete, admin)

	m := api.Group("/management")
	m.GET("", ctl.Management.List)
	m.GET("/:codigo", ctl.Management.Get)
	m.POST("", ctl.Management.Create)
	m.PUT("/:codigo", ctl.Management.Update)
	m.DELETE("/:codigo", ctl.Management.Delete)

	return e
}
