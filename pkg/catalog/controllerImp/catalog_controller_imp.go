package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	"cultivos/pkg/catalog/controller"
	"cultivos/pkg/catalog/service"
	"cultivos/pkg/catalog/serviceImp"
	"cultivos/pkg/export"
)

// kindHandler serves one catalog kind; CatalogCtrl dispatches on :kind.
type kindHandler interface {
	list(c echo.Context) error
	get(c echo.Context, key uint) error
	search(c echo.Context, q string) error
	create(c echo.Context) error
	update(c echo.Context, key uint) error
	delete(c echo.Context, key uint) error
	export(c echo.Context) error
}

type handler[T any, P entities.CatalogPtr[T]] struct {
	svc service.CatalogService[T]
}

func (h handler[T, P]) list(c echo.Context) error {
	if c.QueryParam("view") == "options" {
		opts, err := h.svc.Options()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, opts)
	}
	rows, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h handler[T, P]) get(c echo.Context, key uint) error {
	e, err := h.svc.Get(key)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h handler[T, P]) search(c echo.Context, q string) error {
	rows, err := h.svc.Search(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h handler[T, P]) create(c echo.Context) error {
	e := new(T)
	if err := c.Bind(e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	out, err := h.svc.Create(e)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h handler[T, P]) update(c echo.Context, key uint) error {
	e := new(T)
	if err := c.Bind(e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	out, err := h.svc.Update(key, e)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h handler[T, P]) delete(c echo.Context, key uint) error {
	if err := h.svc.Delete(key); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h handler[T, P]) export(c echo.Context) error {
	rows, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	sheet := P(new(T)).TableName()
	var buf bytes.Buffer
	if err := export.WriteCatalog[T, P](&buf, sheet, rows); err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sheet+".xlsx"))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

type CatalogCtrl struct {
	kinds map[string]kindHandler
	crops service.CatalogService[entities.CropType]
}

func New(
	soils service.CatalogService[entities.SoilType],
	climates service.CatalogService[entities.Climate],
	vegetables service.CatalogService[entities.VegetableType],
	crops service.CatalogService[entities.CropType],
) controller.CatalogController {
	return &CatalogCtrl{
		kinds: map[string]kindHandler{
			service.KindSoil:      handler[entities.SoilType, *entities.SoilType]{soils},
			service.KindClimate:   handler[entities.Climate, *entities.Climate]{climates},
			service.KindVegetable: handler[entities.VegetableType, *entities.VegetableType]{vegetables},
			service.KindCrop:      handler[entities.CropType, *entities.CropType]{crops},
		},
		crops: crops,
	}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

func (h *CatalogCtrl) kind(c echo.Context) (kindHandler, error) {
	k, ok := h.kinds[c.Param("kind")]
	if !ok {
		return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "unknown catalog " + strconv.Quote(c.Param("kind"))})
	}
	return k, nil
}

func parseKey(c echo.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(n), err == nil && n > 0
}

func badKey(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

func (h *CatalogCtrl) List(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	return k.list(c)
}

func (h *CatalogCtrl) Get(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	key, ok := parseKey(c)
	if !ok {
		return badKey(c)
	}
	return k.get(c, key)
}

func (h *CatalogCtrl) Search(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	return k.search(c, c.QueryParam("q"))
}

func (h *CatalogCtrl) Create(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	return k.create(c)
}

func (h *CatalogCtrl) Update(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	key, ok := parseKey(c)
	if !ok {
		return badKey(c)
	}
	return k.update(c, key)
}

func (h *CatalogCtrl) Delete(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	key, ok := parseKey(c)
	if !ok {
		return badKey(c)
	}
	return k.delete(c, key)
}

func (h *CatalogCtrl) Export(c echo.Context) error {
	k, err := h.kind(c)
	if k == nil {
		return err
	}
	return k.export(c)
}

func (h *CatalogCtrl) CropNames(c echo.Context) error {
	names, err := serviceImp.CropNames(h.crops)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, names)
}
