package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	"cultivos/pkg/management/controller"
	"cultivos/pkg/management/service"
)

type managementCtrl struct{ svc service.ManagementService }

func New(svc service.ManagementService) controller.ManagementController {
	return &managementCtrl{svc}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

func code(c echo.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("codigo"), 10, 32)
	if err != nil || n == 0 {
		return 0, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
	}
	return uint(n), nil
}

// List returns the joined report; ?view=raw returns the stored ids.
func (h *managementCtrl) List(c echo.Context) error {
	if c.QueryParam("view") == "raw" {
		rows, err := h.svc.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	}
	rows, err := h.svc.Report()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *managementCtrl) Get(c echo.Context) error {
	n, err := code(c)
	if n == 0 {
		return err
	}
	m, err := h.svc.Get(n)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *managementCtrl) Create(c echo.Context) error {
	var m entities.CropManagement
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Create(&m)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *managementCtrl) Update(c echo.Context) error {
	n, err := code(c)
	if n == 0 {
		return err
	}
	var m entities.CropManagement
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Update(n, &m)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *managementCtrl) Delete(c echo.Context) error {
	n, err := code(c)
	if n == 0 {
		return err
	}
	if err := h.svc.Delete(n); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
