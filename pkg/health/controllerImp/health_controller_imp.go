package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cultivos/pkg/harvest"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	rules *harvest.Table
}

func NewHealthCtrl(db *gorm.DB, rules *harvest.Table) *HealthCtrl {
	return &HealthCtrl{db: db, rules: rules}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) database(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.database(ctx)
	rules := check{OK: h.rules != nil && h.rules.Len() > 0}
	if !rules.OK {
		rules.Err = "no crop rules loaded"
	}

	allOK := db.OK && rules.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":   db,
			"crop_rules": rules,
		},
		"crop_rules": 0,
		"time":       time.Now().Format(time.RFC3339),
	}
	if h.rules != nil {
		resp["crop_rules"] = h.rules.Len()
	}
	return c.JSON(status, resp)
}
