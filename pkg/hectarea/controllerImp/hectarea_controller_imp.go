package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cultivos/pkg/apperr"
	"cultivos/pkg/export"
	"cultivos/pkg/harvest"
	"cultivos/pkg/hectarea/controller"
	"cultivos/pkg/hectarea/service"
)

type HectareaCtrl struct{ svc service.HectareaService }

func New(svc service.HectareaService) controller.HectareaController { return &HectareaCtrl{svc} }

// text accepts a JSON string, number or null. Forms send temperatures either
// way and the lenient parser decides what is usable.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	*t = text(b)
	return nil
}

type plotReq struct {
	Number         int    `json:"number"`
	CropType       string `json:"crop_type"`
	SowingDate     string `json:"sowing_date"`
	FirstHarvest   string `json:"first_harvest_date"`
	RoutineHarvest string `json:"routine_harvest_date"`
	SoilType       string `json:"soil_type"`
	Temperature    text   `json:"temperature"`
}

func (r plotReq) input() harvest.Input {
	return harvest.Input{
		Number:         r.Number,
		CropType:       r.CropType,
		SowingDate:     r.SowingDate,
		FirstHarvest:   r.FirstHarvest,
		RoutineHarvest: r.RoutineHarvest,
		SoilType:       r.SoilType,
		Temperature:    string(r.Temperature),
	}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

func parseNumber(c echo.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("numero"))
	return n, err == nil && n > 0
}

func badNumber(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plot number"})
}

func (h *HectareaCtrl) Preview(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Preview(req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HectareaCtrl) Create(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Register(req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *HectareaCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HectareaCtrl) Next(c echo.Context) error {
	n, err := h.svc.NextNumber()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"number": n})
}

func (h *HectareaCtrl) Get(c echo.Context) error {
	n, ok := parseNumber(c)
	if !ok {
		return badNumber(c)
	}
	out, err := h.svc.Get(n)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HectareaCtrl) Update(c echo.Context) error {
	n, ok := parseNumber(c)
	if !ok {
		return badNumber(c)
	}
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Update(n, service.UpdateInput{
		CropType:       req.CropType,
		SowingDate:     req.SowingDate,
		FirstHarvest:   req.FirstHarvest,
		RoutineHarvest: req.RoutineHarvest,
		SoilType:       req.SoilType,
		Temperature:    string(req.Temperature),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HectareaCtrl) Delete(c echo.Context) error {
	n, ok := parseNumber(c)
	if !ok {
		return badNumber(c)
	}
	if err := h.svc.Delete(n); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HectareaCtrl) Export(c echo.Context) error {
	plots, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	var buf bytes.Buffer
	if err := export.WritePlots(&buf, plots); err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hectareas.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
