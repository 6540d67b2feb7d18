package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/generator"
)

func TestGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42

	svc := New()
	res, err := svc.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.Seed())
	assert.Equal(t, 8000, res.Samples.Len())
	assert.Equal(t, 8000, res.Summary.Count)
	assert.Len(t, res.Bins, 100)

	again, err := svc.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, res.Samples.Values(), again.Samples.Values())
}

func TestGeneratePicksSeed(t *testing.T) {
	seeds := []uint64{0, 7}
	svc := &service{seed: func() uint64 {
		s := seeds[0]
		seeds = seeds[1:]
		return s
	}}
	res, err := svc.Generate(context.Background(), config.Default())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.Seed())
}

func TestGenerateInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.LowLo, cfg.LowHi = 40000, 1000
	_, err := New().Generate(context.Background(), cfg)
	require.True(t, errors.Is(err, generator.ErrInvalidParameter))

	cfg = config.Default()
	cfg.N = 10
	_, err = New().Generate(context.Background(), cfg)
	require.True(t, errors.Is(err, config.ErrOutOfBounds))
}

type countingCounter struct {
	lvs   []string
	total *float64
}

func (c countingCounter) With(lvs ...string) metrics.Counter {
	return countingCounter{lvs: lvs, total: c.total}
}

func (c countingCounter) Add(delta float64) { *c.total += delta }

func TestMiddlewares(t *testing.T) {
	var total float64
	var buf bytes.Buffer
	svc := LoggingMiddleware(log.NewLogfmtLogger(&buf))(New())
	svc = InstrumentingMiddleware(countingCounter{total: &total}, discard.NewHistogram(), discard.NewHistogram())(svc)

	cfg := config.Default()
	cfg.Seed = 3
	_, err := svc.Generate(context.Background(), cfg)
	require.NoError(t, err)
	cfg.StdDev = 0
	_, err = svc.Generate(context.Background(), cfg)
	require.Error(t, err)

	assert.Equal(t, 2.0, total)
	out := buf.String()
	assert.Contains(t, out, "method=generate")
	assert.Contains(t, out, "seed=3")
	assert.Contains(t, out, "count=8000")
	assert.Contains(t, out, "level=warn")
}

func TestHTTPGenerate(t *testing.T) {
	h := MakeHTTPHandler(New(), log.NewNopLogger())

	body := `{"n": 1000, "prop_low": 0, "prop_high": 0.2, "seed": 9, "bins": 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Seed    uint64               `json:"seed"`
		Count   int                  `json:"count"`
		Summary map[string]float64   `json:"summary"`
		Bins    []map[string]float64 `json:"bins"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(9), resp.Seed)
	assert.Equal(t, 1200, resp.Count)
	assert.Equal(t, 1200.0, resp.Summary["count"])
	assert.Contains(t, resp.Summary, "25%")
	assert.Len(t, resp.Bins, 10)
}

func TestHTTPErrors(t *testing.T) {
	h := MakeHTTPHandler(New(), log.NewNopLogger())
	cases := []struct {
		name string
		body string
		code int
		want string
	}{
		{"invalid parameter", `{"low_lo": 40000, "low_hi": 1000}`, http.StatusBadRequest, "low range [40000, 1000] is reversed: invalid parameter"},
		{"out of bounds", `{"n": 5}`, http.StatusBadRequest, "out of bounds"},
		{"malformed body", `{"n": `, http.StatusBadRequest, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, c.code, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
			assert.Contains(t, resp["error"], c.want)
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(config.ErrMalformed))
}
