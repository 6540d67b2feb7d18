package web

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/service"
	"github.com/leo2lion/distribution-law/pkg/histplotter"
)

func newRouter() *mux.Router {
	r := mux.NewRouter()
	Register(r, service.New(), config.Default(), histplotter.DefaultOptions(), log.NewNopLogger())
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex(t *testing.T) {
	rec := get(t, newRouter(), "/?n=1000&seed=5")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dynamic TVL Distribution Tool")
	assert.Contains(t, body, "Descriptive Statistics of the Distribution")
	assert.Contains(t, body, "/histogram.png?")
	assert.Contains(t, body, "seed=5")
	assert.Contains(t, body, `value="1000"`)
	assert.Contains(t, body, "<th>75%</th>")
}

func TestIndexInvalid(t *testing.T) {
	rec := get(t, newRouter(), "/?min=99999&max=50000")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, `value="99999"`)
	assert.NotContains(t, body, "/histogram.png?")
}

func TestExport(t *testing.T) {
	h := newRouter()
	rec := get(t, h, "/export.csv?n=200&prop_low=0.5&prop_high=0&seed=8")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Mock_TVL_Distribution.csv")

	records, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 301)
	assert.Equal(t, "TVL", records[0][0])

	again := get(t, h, "/export.csv?n=200&prop_low=0.5&prop_high=0&seed=8")
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestHistogram(t *testing.T) {
	rec := get(t, newRouter(), "/histogram.png?n=500&bins=20&seed=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = get(t, newRouter(), "/histogram.png?n=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
