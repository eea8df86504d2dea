package pricing

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned by strict construction when an input
// falls outside the domain of the Black-Scholes formula.
var ErrInvalidParameter = errors.New("invalid option parameter")

// Default parameter set: an at-the-money one-year option.
const (
	DefaultStrike     = 100.0
	DefaultRate       = 0.05 // 5% interest rate
	DefaultMaturity   = 1.0  // one year until maturity
	DefaultSpot       = 100.0
	DefaultVolatility = 0.2 // 20% volatility
)

// VanillaOption holds the market parameters of a European vanilla option.
//
// It is a plain value: copying it yields an independent option with the
// same fields, and two options are equal when all five fields are equal.
// Fields are unexported so a constructed option cannot be mutated.
type VanillaOption struct {
	k     float64 // strike price
	r     float64 // risk-free interest rate
	t     float64 // time to maturity in years
	s     float64 // underlying spot price
	sigma float64 // volatility of the underlying
}

// NewVanillaOption stores the five parameters exactly as given.
//
// No validation is performed. Non-positive strike, maturity, spot or
// volatility produce NaN or meaningless prices; checking them is the
// caller's job (see NewStrictVanillaOption).
func NewVanillaOption(k, r, t, s, sigma float64) VanillaOption {
	return VanillaOption{k: k, r: r, t: t, s: s, sigma: sigma}
}

// DefaultVanillaOption returns K=100, r=0.05, T=1, S=100, sigma=0.2.
func DefaultVanillaOption() VanillaOption {
	return NewVanillaOption(DefaultStrike, DefaultRate, DefaultMaturity, DefaultSpot, DefaultVolatility)
}

// NewStrictVanillaOption is NewVanillaOption followed by Validate.
func NewStrictVanillaOption(k, r, t, s, sigma float64) (VanillaOption, error) {
	o := NewVanillaOption(k, r, t, s, sigma)
	if err := o.Validate(); err != nil {
		return VanillaOption{}, err
	}
	return o, nil
}

func (o VanillaOption) K() float64     { return o.k }
func (o VanillaOption) R() float64     { return o.r }
func (o VanillaOption) T() float64     { return o.t }
func (o VanillaOption) S() float64     { return o.s }
func (o VanillaOption) Sigma() float64 { return o.sigma }

// Validate reports whether the option lies in the domain of the closed-form
// formulas: every field finite, and strike, maturity, spot and volatility
// strictly positive. The returned error wraps ErrInvalidParameter.
func (o VanillaOption) Validate() error {
	fields := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"strike", o.k, true},
		{"rate", o.r, false},
		{"maturity", o.t, true},
		{"spot", o.s, true},
		{"volatility", o.sigma, true},
	}

	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Wrapf(ErrInvalidParameter, "%s must be finite, got %v", f.name, f.v)
		}
		if f.positive && f.v <= 0 {
			return errors.Wrapf(ErrInvalidParameter, "%s must be positive, got %v", f.name, f.v)
		}
	}
	return nil
}
