package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/generator"
)

// MakeHTTPHandler mounts the JSON API on a new router:
//
//	POST /api/v1/generate
func MakeHTTPHandler(s Service, logger log.Logger) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
		kithttp.ServerErrorEncoder(encodeError),
	}

	generateHandler := kithttp.NewServer(
		MakeGenerateEndpoint(s),
		decodeGenerateRequest,
		encodeResponse,
		opts...,
	)

	r := mux.NewRouter()
	r.Handle("/api/v1/generate", generateHandler).Methods(http.MethodPost)
	return r
}

var errBadRequest = errors.New("malformed request body")

// decodeGenerateRequest overlays the JSON body on the defaults, so absent
// fields keep their default values.
func decodeGenerateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	cfg := config.Default()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		return nil, errBadRequest
	}
	return generateRequest{cfg}, nil
}

type errorer interface {
	error() error
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if e, ok := response.(errorer); ok && e.error() != nil {
		encodeError(ctx, e.error(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// StatusCode maps errors to HTTP status codes: parameter problems are the
// caller's fault, everything else is ours.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, generator.ErrInvalidParameter),
		errors.Is(err, config.ErrOutOfBounds),
		errors.Is(err, config.ErrMalformed),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(StatusCode(err))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
