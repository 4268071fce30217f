package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Search(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
	CropNames(c echo.Context) error
}
