package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/logging"
	"github.com/leo2lion/distribution-law/internal/presenter"
	"github.com/leo2lion/distribution-law/internal/service"
	"github.com/leo2lion/distribution-law/pkg/histplotter"
)

const (
	asciiBins  = 20
	asciiWidth = 50
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		csvPath  string
		plotPath string
		ascii    bool
		smooth   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample set, export it and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}

			svc := service.LoggingMiddleware(logging.GetLogger("service"))(service.New())
			res, err := svc.Generate(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			values := res.Samples.Values()

			if csvPath != "" {
				if err := presenter.SaveCSV(csvPath, values); err != nil {
					return err
				}
				level.Info(logger).Log("msg", "exported samples", "path", csvPath, "rows", len(values))
			}
			if plotPath != "" {
				opts := histplotter.DefaultOptions()
				opts.Bins = cfg.Bins
				opts.Smooth = smooth
				if err := presenter.GenerateHistogram(plotPath, values, res.Config.Markers(), opts); err != nil {
					return err
				}
				level.Info(logger).Log("msg", "saved histogram", "path", plotPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Descriptive Statistics of the Distribution (seed %d)\n", res.Seed())
			presenter.RenderSummary(out, res.Summary)
			if ascii {
				fmt.Fprintln(out)
				return presenter.PrintTerminalHistogram(out, values, asciiBins, asciiWidth)
			}
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&csvPath, "csv", presenter.CSVFilename, "CSV export path, empty to skip")
	cmd.Flags().StringVar(&plotPath, "plot", "tvl_histogram.png", "histogram path (png, svg, pdf), empty to skip")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "also draw the histogram in the terminal")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "overlay smoothed bin counts on the histogram")
	return cmd
}
