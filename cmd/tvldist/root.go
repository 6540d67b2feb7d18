package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leo2lion/distribution-law/internal/logging"
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	logFlags *logging.Flags
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "tvldist",
		Short:         "Dynamic TVL distribution tool",
		Long:          "Generate synthetic TVL (Total Value Locked) deposit distributions: a truncated normal base population plus uniform low and high power users.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Initialize(os.Stderr, a.logFlags.Format, a.logFlags.Level)
			if a.cfgFile == "" {
				return nil
			}
			a.v.SetConfigFile(a.cfgFile)
			return errors.Wrap(a.v.ReadInConfig(), "reading config file")
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	a.logFlags = logging.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newGenerateCmd(a),
		newDescribeCmd(),
		newServeCmd(a),
	)
	return root
}
