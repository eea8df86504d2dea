// Package config resolves the pricing inputs and output settings of the CLI.
//
// Sources are layered, later ones overriding earlier ones:
//
//	defaults → YAML file → dotenv file → explicit CLI flags
//
// Flags are applied by the caller; this package handles the first three.
package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/contactkeval/vanilla-option/internal/pricing"
)

// Output formats understood by the report writer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultEnvFile is read when no env file is given explicitly.
const DefaultEnvFile = ".env"

const envPrefix = "VANILLA_"

// Config struct
type Config struct {
	Strike     float64 `yaml:"strike"`     // K
	Rate       float64 `yaml:"rate"`       // r, continuously compounded
	Maturity   float64 `yaml:"maturity"`   // T in years
	Spot       float64 `yaml:"spot"`       // S
	Volatility float64 `yaml:"volatility"` // sigma, annualized
	Strict     bool    `yaml:"strict"`     // reject inputs outside the formula's domain
	Verbosity  int     `yaml:"verbosity"`  // 0=errors,1=info,2=debug,3=trace
	Format     string  `yaml:"format"`     // "text" or "json"
	Places     int32   `yaml:"places"`     // decimal places in reports
}

// Default returns the default option set with text output at 4 places.
func Default() Config {
	return Config{
		Strike:     pricing.DefaultStrike,
		Rate:       pricing.DefaultRate,
		Maturity:   pricing.DefaultMaturity,
		Spot:       pricing.DefaultSpot,
		Volatility: pricing.DefaultVolatility,
		Verbosity:  1,
		Format:     FormatText,
		Places:     4,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	return cfg, nil
}

// LoadEnvFile overlays VANILLA_* keys from a dotenv file.
// A missing file is ignored unless required is set.
func (c *Config) LoadEnvFile(path string, required bool) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "reading env file %s", path)
	}
	return c.ApplyEnv(env)
}

// ApplyEnv overlays recognised VANILLA_* keys; other keys are ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	floats := map[string]*float64{
		"STRIKE":     &c.Strike,
		"RATE":       &c.Rate,
		"MATURITY":   &c.Maturity,
		"SPOT":       &c.Spot,
		"VOLATILITY": &c.Volatility,
	}

	for key, raw := range env {
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, envPrefix)
		val := strings.TrimSpace(raw)

		if dst, ok := floats[name]; ok {
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return errors.Wrapf(err, "%s", key)
			}
			*dst = f
			continue
		}

		switch name {
		case "STRICT":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return errors.Wrapf(err, "%s", key)
			}
			c.Strict = b
		case "VERBOSITY":
			v, err := strconv.Atoi(val)
			if err != nil {
				return errors.Wrapf(err, "%s", key)
			}
			c.Verbosity = v
		case "FORMAT":
			c.Format = strings.ToLower(val)
		case "PLACES":
			p, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				return errors.Wrapf(err, "%s", key)
			}
			c.Places = int32(p)
		}
	}
	return nil
}

// Validate checks the output settings. Pricing inputs are only checked
// by Option when Strict is set.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	if c.Places < 0 {
		return errors.Errorf("places must not be negative, got %d", c.Places)
	}
	return nil
}

// Option builds the priced instrument from the resolved inputs.
func (c Config) Option() (pricing.VanillaOption, error) {
	if c.Strict {
		return pricing.NewStrictVanillaOption(c.Strike, c.Rate, c.Maturity, c.Spot, c.Volatility)
	}
	return pricing.NewVanillaOption(c.Strike, c.Rate, c.Maturity, c.Spot, c.Volatility), nil
}
