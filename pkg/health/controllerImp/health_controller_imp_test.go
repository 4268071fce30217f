package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cultivos/database/testdb"
	"cultivos/pkg/harvest"
)

func get(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthOK(t *testing.T) {
	code, body := get(t, NewHealthCtrl(testdb.Open(t), harvest.DefaultTable()))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"ok": true}, body["status"])
	assert.EqualValues(t, harvest.DefaultTable().Len(), body["crop_rules"])
}

func TestHealthWithoutDatabase(t *testing.T) {
	code, body := get(t, NewHealthCtrl(nil, harvest.DefaultTable()))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "gorm db is nil", checks["database"].(map[string]any)["err"])
}
