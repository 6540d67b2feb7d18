package config

import (
	"net/url"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// FromForm overlays the non-empty form values on base and checks the result.
// Values are decoded weakly, so "5000" fills an int field.
func FromForm(form url.Values, base Config) (*Config, error) {
	input := make(map[string]any, len(form))
	for key := range base.Values() {
		if v := form.Get(key); v != "" {
			input[key] = v
		}
	}

	cfg := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(input); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Form encodes cfg so that FromForm(cfg.Form(), ...) reproduces it.
func (cfg Config) Form() url.Values {
	form := url.Values{}
	for key, v := range cfg.Values() {
		form.Set(key, formatAny(v))
	}
	return form
}

func formatAny(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		panic("config: unsupported value type")
	}
}
