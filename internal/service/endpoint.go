package service

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/presenter"
)

type generateRequest struct {
	config.Config
}

type generateResponse struct {
	Seed    uint64             `json:"seed"`
	Count   int                `json:"count"`
	Summary *presenter.Summary `json:"summary,omitempty"`
	Bins    []presenter.Bin    `json:"bins,omitempty"`
	Err     error              `json:"-"`
}

func (r generateResponse) error() error { return r.Err }

// MakeGenerateEndpoint returns an endpoint answering with the summary and
// bin counts of a generated sample set. Service errors are carried in the
// response.
func MakeGenerateEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(generateRequest)
		res, err := s.Generate(ctx, req.Config)
		if err != nil {
			return generateResponse{Err: err}, nil
		}
		return generateResponse{
			Seed:    res.Seed(),
			Count:   res.Samples.Len(),
			Summary: &res.Summary,
			Bins:    res.Bins,
		}, nil
	}
}
