package main

import (
	"github.com/labstack/echo/v4"

	"cultivos/entities"
	"cultivos/router"

	authCtrlImp "cultivos/pkg/auth/controllerImp"
	authRepoImp "cultivos/pkg/auth/repositoryImp"
	authSvc "cultivos/pkg/auth/service"
	authSvcImp "cultivos/pkg/auth/serviceImp"

	catalogCtrlImp "cultivos/pkg/catalog/controllerImp"
	catalogRepoImp "cultivos/pkg/catalog/repositoryImp"
	catalogSvc "cultivos/pkg/catalog/service"
	catalogSvcImp "cultivos/pkg/catalog/serviceImp"

	hectareaCtrlImp "cultivos/pkg/hectarea/controllerImp"
	hectareaRepoImp "cultivos/pkg/hectarea/repositoryImp"
	hectareaSvc "cultivos/pkg/hectarea/service"
	hectareaSvcImp "cultivos/pkg/hectarea/serviceImp"

	managementCtrlImp "cultivos/pkg/management/controllerImp"
	managementRepoImp "cultivos/pkg/management/repositoryImp"
	managementSvc "cultivos/pkg/management/service"
	managementSvcImp "cultivos/pkg/management/serviceImp"

	healthCtrlImp "cultivos/pkg/health/controllerImp"
	"cultivos/pkg/middleware"
)

type services struct {
	auth       authSvc.AuthService
	plots      hectareaSvc.HectareaService
	management managementSvc.ManagementService
	soils      catalogSvc.CatalogService[entities.SoilType]
	climates   catalogSvc.CatalogService[entities.Climate]
	vegetables catalogSvc.CatalogService[entities.VegetableType]
	crops      catalogSvc.CatalogService[entities.CropType]
}

// services requires e.db to be open.
func (e *env) services() services {
	db := e.db
	return services{
		auth:       authSvcImp.NewAuthService(authRepoImp.New(db), e.cfg.AdminUsername, e.log),
		plots:      hectareaSvcImp.NewHectareaService(hectareaRepoImp.New(db), e.rules, e.log),
		management: managementSvcImp.NewManagementService(managementRepoImp.New(db), e.log),
		soils:      catalogSvcImp.New[entities.SoilType](catalogSvc.KindSoil, catalogRepoImp.New[entities.SoilType](db), e.log),
		climates:   catalogSvcImp.New[entities.Climate](catalogSvc.KindClimate, catalogRepoImp.New[entities.Climate](db), e.log),
		vegetables: catalogSvcImp.New[entities.VegetableType](catalogSvc.KindVegetable, catalogRepoImp.New[entities.VegetableType](db), e.log),
		crops:      catalogSvcImp.New[entities.CropType](catalogSvc.KindCrop, catalogRepoImp.New[entities.CropType](db), e.log),
	}
}

func (e *env) server() (*echo.Echo, error) {
	if _, err := e.store(); err != nil {
		return nil, err
	}
	svc := e.services()
	sessions := middleware.NewSessions(e.cfg.SessionSecret, e.cfg.SessionTTL)

	srv := echo.New()
	srv.HideBanner = true
	return router.New(srv, router.Controllers{
		Health:     healthCtrlImp.NewHealthCtrl(e.db, e.rules),
		Auth:       authCtrlImp.NewAuthController(svc.auth, sessions),
		Hectarea:   hectareaCtrlImp.New(svc.plots),
		Catalog:    catalogCtrlImp.New(svc.soils, svc.climates, svc.vegetables, svc.crops),
		Management: managementCtrlImp.New(svc.management),
	}, sessions, e.log), nil
}
