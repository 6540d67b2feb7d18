// Package config binds the generator parameters to flags, environment,
// config files and form values, and enforces the input-surface bounds.
package config

import (
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leo2lion/distribution-law/internal/generator"
)

const (
	CfgN        = "n"
	CfgMean     = "mean"
	CfgStd      = "std"
	CfgMin      = "min"
	CfgMax      = "max"
	CfgPropLow  = "prop_low"
	CfgPropHigh = "prop_high"
	CfgLowLo    = "low_lo"
	CfgLowHi    = "low_hi"
	CfgHighLo   = "high_lo"
	CfgHighHi   = "high_hi"
	CfgSeed     = "seed"
	CfgBins     = "bins"

	// EnvPrefix prefixes environment overrides, e.g. TVL_MEAN.
	EnvPrefix = "TVL"
)

// Config is one generation request: the generator parameters plus the seed
// and the histogram bin count.
type Config struct {
	generator.Params `mapstructure:",squash"`

	// Seed 0 asks for a fresh random seed.
	Seed uint64 `json:"seed" mapstructure:"seed"`
	Bins int    `json:"bins" mapstructure:"bins"`
}

// Default returns the parameters used when nothing is configured.
func Default() Config {
	return Config{
		Params: generator.Params{
			N:        5000,
			Mean:     75000,
			StdDev:   20000,
			MinValue: 50,
			MaxValue: 200000,
			PropLow:  0.1,
			PropHigh: 0.5,
			LowLo:    2000,
			LowHi:    50000,
			HighLo:   100000,
			HighHi:   200000,
		},
		Bins: 100,
	}
}

// Values returns cfg keyed like the flags and form fields.
func (cfg Config) Values() map[string]any {
	return map[string]any{
		CfgN:        cfg.N,
		CfgMean:     cfg.Mean,
		CfgStd:      cfg.StdDev,
		CfgMin:      cfg.MinValue,
		CfgMax:      cfg.MaxValue,
		CfgPropLow:  cfg.PropLow,
		CfgPropHigh: cfg.PropHigh,
		CfgLowLo:    cfg.LowLo,
		CfgLowHi:    cfg.LowHi,
		CfgHighLo:   cfg.HighLo,
		CfgHighHi:   cfg.HighHi,
		CfgSeed:     cfg.Seed,
		CfgBins:     cfg.Bins,
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// RegisterFlags adds the parameter flags to fs.
func RegisterFlags(fs *flag.FlagSet) {
	d := Default()
	fs.Int(flagName(CfgN), d.N, "number of values (n)")
	fs.Float64(flagName(CfgMean), d.Mean, "mean deposit ($)")
	fs.Float64(flagName(CfgStd), d.StdDev, "deposit standard deviation ($)")
	fs.Float64(flagName(CfgMin), d.MinValue, "minimum value ($)")
	fs.Float64(flagName(CfgMax), d.MaxValue, "maximum value ($)")
	fs.Float64(flagName(CfgPropLow), d.PropLow, "proportion of low power users")
	fs.Float64(flagName(CfgPropHigh), d.PropHigh, "proportion of high power users")
	fs.Float64(flagName(CfgLowLo), d.LowLo, "low value range start ($)")
	fs.Float64(flagName(CfgLowHi), d.LowHi, "low value range end ($)")
	fs.Float64(flagName(CfgHighLo), d.HighLo, "high value range start ($)")
	fs.Float64(flagName(CfgHighHi), d.HighHi, "high value range end ($)")
	fs.Uint64(flagName(CfgSeed), d.Seed, "random seed, 0 picks one")
	fs.Int(flagName(CfgBins), d.Bins, "number of histogram bins")
}

// Bind wires defaults, the flags registered by RegisterFlags and TVL_*
// environment variables into v.
func Bind(v *viper.Viper, fs *flag.FlagSet) error {
	for key, val := range Default().Values() {
		v.SetDefault(key, val)
		if f := fs.Lookup(flagName(key)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "config: binding flag %s", f.Name)
			}
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return nil
}

// Load reads the bound configuration from v and checks it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Check applies the input-surface bounds and then the generator's own
// consistency rules.
func (cfg Config) Check() error {
	if err := CheckBounds(cfg.Params); err != nil {
		return err
	}
	if cfg.Bins < 1 || cfg.Bins > MaxBins {
		return errors.Wrapf(ErrOutOfBounds, "bins must be in [1, %d], got %d", MaxBins, cfg.Bins)
	}
	return cfg.Params.Validate()
}
