package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/leo2lion/distribution-law/internal/config"
)

// Middleware decorates a Service.
type Middleware func(Service) Service

// LoggingMiddleware logs every generation with its parameters and outcome.
func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

func (mw loggingMiddleware) Generate(ctx context.Context, cfg config.Config) (res *Result, err error) {
	defer func(begin time.Time) {
		logger := level.Info(mw.logger)
		if err != nil {
			logger = level.Warn(mw.logger)
		}
		count, seed := 0, cfg.Seed
		if res != nil {
			count, seed = res.Samples.Len(), res.Seed()
		}
		logger.Log(
			"method", "generate",
			"n", cfg.N,
			"seed", seed,
			"count", count,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return mw.next.Generate(ctx, cfg)
}

// InstrumentingMiddleware records request counts, latency in seconds and
// sample set sizes.
func InstrumentingMiddleware(requestCount metrics.Counter, requestLatency, sampleCount metrics.Histogram) Middleware {
	return func(next Service) Service {
		return instrumentingMiddleware{
			requestCount:   requestCount,
			requestLatency: requestLatency,
			sampleCount:    sampleCount,
			next:           next,
		}
	}
}

type instrumentingMiddleware struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	sampleCount    metrics.Histogram
	next           Service
}

func (mw instrumentingMiddleware) Generate(ctx context.Context, cfg config.Config) (res *Result, err error) {
	defer func(begin time.Time) {
		lvs := []string{"method", "generate", "error", fmt.Sprint(err != nil)}
		mw.requestCount.With(lvs...).Add(1)
		mw.requestLatency.With(lvs...).Observe(time.Since(begin).Seconds())
		if res != nil {
			mw.sampleCount.Observe(float64(res.Samples.Len()))
		}
	}(time.Now())
	return mw.next.Generate(ctx, cfg)
}
