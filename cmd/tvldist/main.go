package main

import (
	"context"
	"os"

	"github.com/go-kit/log/level"

	"github.com/leo2lion/distribution-law/internal/logging"
)

var logger = logging.GetLogger("tvldist")

func main() {
	logging.Initialize(os.Stderr, logging.FmtLogfmt, logging.LevelInfo)
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}
