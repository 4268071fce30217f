package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("CROP_RULES_CSV", "")
	t.Setenv("CROP_RULES_XLSX", "")
	return filepath.Join(dir, "cultivos.db")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, e := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	require.NoError(t, e.close())
	return out.String(), err
}

func TestCalc(t *testing.T) {
	testEnv(t)

	out, err := run(t, "calc", "--crop", "Limones", "--sowing", "2024-02-29", "--first", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Primera cosecha:   2029-02-28")
	assert.Contains(t, out, "Cosecha rutinaria: 2029-08-27")

	out, err = run(t, "calc", "--crop", "trigo", "--sowing", "2024-01-01", "--temp", "19.5", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"first_harvest_date": "2024-04-30"`)
	assert.Contains(t, out, `"temperature": 19.5`)

	_, err = run(t, "calc", "--crop", "trigo", "--sowing", "2024/01/01")
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")

	_, err = run(t, "calc", "--crop", "trigo")
	assert.Error(t, err)
}

func TestPlotsCommands(t *testing.T) {
	db := testEnv(t)

	out, err := run(t, "--db", db, "plots", "add", "--crop", "tomate", "--sowing", "2024-01-01", "--soil", "Franco")
	require.NoError(t, err)
	assert.Contains(t, out, "Hectárea:          1")

	_, err = run(t, "--db", db, "plots", "add", "--number", "4", "--crop", "maíz", "--sowing", "2024-03-01")
	require.NoError(t, err)
	_, err = run(t, "--db", db, "plots", "add", "--number", "4", "--crop", "maíz", "--sowing", "2024-03-01")
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "--db", db, "plots", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "2024-03-11")
	assert.Contains(t, lines[1], "Franco")
	assert.True(t, strings.HasPrefix(lines[2], "4 "))

	out, err = run(t, "--db", db, "plots", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "plot 1 deleted")
	_, err = run(t, "--db", db, "plots", "delete", "1")
	assert.ErrorContains(t, err, "not found")
}

func TestExportAndMigrate(t *testing.T) {
	db := testEnv(t)

	out, err := run(t, "--db", db, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	_, err = run(t, "--db", db, "plots", "add", "--crop", "trigo", "--sowing", "2024-01-01")
	require.NoError(t, err)

	plots := filepath.Join(filepath.Dir(db), "hectareas.xlsx")
	_, err = run(t, "--db", db, "export", "--out", plots)
	require.NoError(t, err)
	f, err := excelize.OpenFile(plots)
	require.NoError(t, err)
	rows, err := f.GetRows("hectareas")
	require.NoError(t, err)
	f.Close()
	require.Len(t, rows, 2)
	assert.Equal(t, "trigo", rows[1][1])

	climates := filepath.Join(filepath.Dir(db), "clima.xlsx")
	_, err = run(t, "--db", db, "export", "--kind", "climate", "--out", climates)
	require.NoError(t, err)
	_, err = os.Stat(climates)
	assert.NoError(t, err)

	_, err = run(t, "--db", db, "export", "--kind", "planets", "--out", climates)
	assert.ErrorContains(t, err, "unknown export kind")
}

func TestServerEndToEnd(t *testing.T) {
	db := testEnv(t)
	e := &env{dbPath: db}
	require.NoError(t, e.setup())
	t.Cleanup(func() { e.close() })
	srv, err := e.server()
	require.NoError(t, err)

	do := func(method, path, body string, ck *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if ck != nil {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/hectareas", "", nil).Code)

	rec := do(http.MethodPost, "/login", `{"username":"admin","password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	admin := rec.Result().Cookies()[0]

	rec = do(http.MethodPost, "/hectareas", `{"crop_type":"maiz","sowing_date":"2024-03-01"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"first_harvest_date":"2024-05-30"`)

	require.Equal(t, http.StatusCreated, do(http.MethodPost, "/users", `{"username":"ana","password":"pw"}`, admin).Code)
	rec = do(http.MethodPost, "/login", `{"username":"ana","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ana := rec.Result().Cookies()[0]

	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/catalog/soil", "", ana).Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, "/catalog/soil", `{"name":"Turba"}`, ana).Code)
	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/catalog/soil", `{"name":"Turba"}`, admin).Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/users", "", ana).Code)
	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/management", `{"user_id":2,"vegetable_id":1,"soil_id":5,"climate_id":1}`, ana).Code)

	rec = do(http.MethodGet, "/management", "", ana)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ana"`)
	assert.Contains(t, rec.Body.String(), `"soil":"Turba"`)
}
