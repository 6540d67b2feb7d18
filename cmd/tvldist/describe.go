package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leo2lion/distribution-law/internal/presenter"
	"github.com/leo2lion/distribution-law/pkg/readsamples"
)

func newDescribeCmd() *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Print the statistics of an exported sample set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readsamples.ReadFile(args[0])
			if err != nil {
				return err
			}
			summary, err := presenter.Describe(values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Descriptive Statistics of %s\n", args[0])
			presenter.RenderSummary(out, summary)
			if ascii {
				fmt.Fprintln(out)
				return presenter.PrintTerminalHistogram(out, values, asciiBins, asciiWidth)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "also draw the histogram in the terminal")
	return cmd
}
