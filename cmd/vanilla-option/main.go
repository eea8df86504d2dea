package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contactkeval/vanilla-option/internal/config"
	"github.com/contactkeval/vanilla-option/internal/logger"
	"github.com/contactkeval/vanilla-option/internal/pricing"
	"github.com/contactkeval/vanilla-option/internal/report"
)

type runArgs struct {
	configPath string
	envFile    string
	kind       string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var args runArgs
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "vanilla-option",
		Short: "Price a European vanilla option with the Black-Scholes formula",
		Example: `  vanilla-option
  vanilla-option --strike 110 --spot 100 --volatility 0.3 --kind put
  vanilla-option --config option.yaml --format json`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolveConfig(cmd, args, cfg)
			if err != nil {
				return err
			}
			return run(stdout, resolved, args.kind)
		},
	}

	f := cmd.Flags()
	f.StringVar(&args.configPath, "config", "", "path to YAML config")
	f.StringVar(&args.envFile, "env-file", "", "dotenv file with VANILLA_* overrides (default .env if present)")
	f.StringVar(&args.kind, "kind", "both", "call, put or both")
	f.Float64VarP(&cfg.Strike, "strike", "k", cfg.Strike, "strike price K")
	f.Float64VarP(&cfg.Rate, "rate", "r", cfg.Rate, "risk-free rate r")
	f.Float64VarP(&cfg.Maturity, "maturity", "t", cfg.Maturity, "time to maturity T in years")
	f.Float64VarP(&cfg.Spot, "spot", "s", cfg.Spot, "spot price S")
	f.Float64VarP(&cfg.Volatility, "volatility", "v", cfg.Volatility, "volatility sigma")
	f.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject non-positive K, T, S or sigma")
	f.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "0=errors,1=info,2=debug,3=trace")
	f.StringVar(&cfg.Format, "format", cfg.Format, "text or json")
	f.Int32Var(&cfg.Places, "places", cfg.Places, "decimal places in the output")

	return cmd
}

// resolveConfig layers file and env settings under the flags the user set.
func resolveConfig(cmd *cobra.Command, args runArgs, fromFlags config.Config) (config.Config, error) {
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return cfg, err
	}

	envFile, required := args.envFile, true
	if envFile == "" {
		envFile, required = config.DefaultEnvFile, false
	}
	if err := cfg.LoadEnvFile(envFile, required); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("strike") {
		cfg.Strike = fromFlags.Strike
	}
	if flags.Changed("rate") {
		cfg.Rate = fromFlags.Rate
	}
	if flags.Changed("maturity") {
		cfg.Maturity = fromFlags.Maturity
	}
	if flags.Changed("spot") {
		cfg.Spot = fromFlags.Spot
	}
	if flags.Changed("volatility") {
		cfg.Volatility = fromFlags.Volatility
	}
	if flags.Changed("strict") {
		cfg.Strict = fromFlags.Strict
	}
	if flags.Changed("verbosity") {
		cfg.Verbosity = fromFlags.Verbosity
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(fromFlags.Format)
	}
	if flags.Changed("places") {
		cfg.Places = fromFlags.Places
	}

	return cfg, cfg.Validate()
}

func run(stdout io.Writer, cfg config.Config, kind string) error {
	logger.SetVerbosity(cfg.Verbosity)

	opt, err := cfg.Option()
	if err != nil {
		logger.Errorf("rejected inputs: %v", err)
		return err
	}

	logger.Infof("pricing K=%v r=%v T=%v S=%v sigma=%v strict=%t",
		opt.K(), opt.R(), opt.T(), opt.S(), opt.Sigma(), cfg.Strict)
	d1, d2 := pricing.D1D2(opt)
	logger.Debugf("d1=%.6f d2=%.6f N(d1)=%.6f N(d2)=%.6f",
		d1, d2, pricing.NormCDF(d1), pricing.NormCDF(d2))

	if strings.EqualFold(kind, "both") {
		q, err := report.NewQuote(opt, cfg.Places)
		if err != nil {
			return err
		}
		logger.Tracef("quote=%+v", q)
		return report.Write(stdout, q, cfg.Format)
	}

	k, err := pricing.ParseKind(kind)
	if err != nil {
		return err
	}
	price := pricing.Price(k, opt)
	logger.Tracef("%s raw=%v", k, price)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%s price is not finite (%v); check strike, maturity, spot and volatility", k, price)
	}

	out := decimal.NewFromFloat(price).StringFixed(cfg.Places)
	if cfg.Format == config.FormatJSON {
		return json.NewEncoder(stdout).Encode(map[string]string{k.String(): out})
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
