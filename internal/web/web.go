// Package web serves the interactive form, the histogram image and the CSV
// export.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/presenter"
	"github.com/leo2lion/distribution-law/internal/service"
	"github.com/leo2lion/distribution-law/pkg/histplotter"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"format": presenter.FormatValue,
}).Parse(indexHTML))

type field struct {
	Section string
	Key     string
	Label   string
	Step    string
	Value   string
}

var fields = []field{
	{Key: config.CfgN, Label: "Number of values (n)", Step: "100"},
	{Key: config.CfgMean, Label: "Mean deposit ($)", Step: "1000"},
	{Key: config.CfgStd, Label: "Deposit standard deviation ($)", Step: "1000"},
	{Key: config.CfgMin, Label: "Minimum value ($)", Step: "50"},
	{Key: config.CfgMax, Label: "Maximum value ($)", Step: "5000"},
	{Section: "Add 'Power Users'", Key: config.CfgPropLow, Label: "Proportion (low values)", Step: "0.01"},
	{Key: config.CfgPropHigh, Label: "Proportion (high values)", Step: "0.01"},
	{Key: config.CfgLowLo, Label: "Low value range start ($)", Step: "1000"},
	{Key: config.CfgLowHi, Label: "Low value range end ($)", Step: "1000"},
	{Key: config.CfgHighLo, Label: "High value range start ($)", Step: "5000"},
	{Key: config.CfgHighHi, Label: "High value range end ($)", Step: "5000"},
	{Section: "Output", Key: config.CfgSeed, Label: "Seed (0 = random)", Step: "1"},
	{Key: config.CfgBins, Label: "Histogram bins", Step: "1"},
}

type page struct {
	Fields  []field
	Error   string
	Query   template.URL
	Seed    uint64
	Summary []presenter.Row
}

type handler struct {
	svc      service.Service
	defaults config.Config
	plot     histplotter.Options
	logger   log.Logger
}

// Register adds the interactive routes to r:
//
//	GET /               form, summary and embedded histogram
//	GET /histogram.png  histogram image
//	GET /export.csv     CSV attachment
//
// All routes read the generation parameters from the query string, falling
// back to defaults.
func Register(r *mux.Router, svc service.Service, defaults config.Config, plot histplotter.Options, logger log.Logger) {
	h := &handler{svc: svc, defaults: defaults, plot: plot, logger: logger}
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/histogram.png", h.histogram).Methods(http.MethodGet)
	r.HandleFunc("/export.csv", h.export).Methods(http.MethodGet)
}

func (h *handler) generate(r *http.Request) (*service.Result, error) {
	cfg, err := config.FromForm(r.URL.Query(), h.defaults)
	if err != nil {
		return nil, err
	}
	return h.svc.Generate(r.Context(), *cfg)
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	res, err := h.generate(r)

	var p page
	status := http.StatusOK
	if err != nil {
		status = service.StatusCode(err)
		p.Error = err.Error()
		p.Fields = formFields(h.defaults.Form(), r.URL.Query())
	} else {
		// pin the seed so the image and the download match this page
		query := res.Config.Form()
		p.Query = template.URL(query.Encode())
		p.Seed = res.Seed()
		p.Summary = res.Summary.Rows()
		p.Fields = formFields(query, nil)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, p); err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *handler) histogram(w http.ResponseWriter, r *http.Request) {
	res, err := h.generate(r)
	if err != nil {
		http.Error(w, err.Error(), service.StatusCode(err))
		return
	}

	opts := h.plot
	opts.Bins = res.Config.Bins
	var buf bytes.Buffer
	if err := presenter.WriteHistogram(&buf, "png", res.Samples.Values(), res.Config.Markers(), opts); err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	buf.WriteTo(w)
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	res, err := h.generate(r)
	if err != nil {
		http.Error(w, err.Error(), service.StatusCode(err))
		return
	}

	var buf bytes.Buffer
	if err := presenter.WriteCSV(&buf, res.Samples.Values()); err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+presenter.CSVFilename+`"`)
	buf.WriteTo(w)
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	level.Error(h.logger).Log("msg", "rendering response", "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// formFields fills the form inputs from values, letting raw override them
// so a rejected submission is shown as typed.
func formFields(values, raw url.Values) []field {
	out := make([]field, len(fields))
	for i, f := range fields {
		f.Value = values.Get(f.Key)
		if v := raw.Get(f.Key); v != "" {
			f.Value = v
		}
		out[i] = f
	}
	return out
}
