// Package service exposes sample set generation as a go-kit service.
package service

import (
	"context"
	"math/rand/v2"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/generator"
	"github.com/leo2lion/distribution-law/internal/presenter"
)

// Service generates sample sets and their statistics.
type Service interface {
	Generate(ctx context.Context, cfg config.Config) (*Result, error)
}

// Result is one generated sample set. Seed is the seed actually used.
type Result struct {
	Config  config.Config
	Samples *generator.SampleSet
	Summary presenter.Summary
	Bins    []presenter.Bin
}

// Seed returns the seed the result was generated with.
func (r *Result) Seed() uint64 {
	return r.Config.Seed
}

type service struct {
	seed func() uint64
}

// New returns the basic service. A zero seed in a request is replaced by
// one drawn from the runtime's random generator.
func New() Service {
	return &service{seed: rand.Uint64}
}

func (s *service) Generate(_ context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	for cfg.Seed == 0 {
		cfg.Seed = s.seed()
	}

	set, err := generator.Generate(cfg.Params, generator.NewSource(cfg.Seed))
	if err != nil {
		return nil, err
	}
	values := set.Values()
	summary, err := presenter.Describe(values)
	if err != nil {
		return nil, err
	}
	bins, err := presenter.Bins(values, cfg.Bins)
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:  cfg,
		Samples: set,
		Summary: summary,
		Bins:    bins,
	}, nil
}
