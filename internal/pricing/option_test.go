package pricing

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVanillaOption(t *testing.T) {
	o := DefaultVanillaOption()

	assert.Equal(t, 100.0, o.K())
	assert.Equal(t, 0.05, o.R())
	assert.Equal(t, 1.0, o.T())
	assert.Equal(t, 100.0, o.S())
	assert.Equal(t, 0.2, o.Sigma())
}

func TestAccessorsPassThrough(t *testing.T) {
	o := NewVanillaOption(123.45, -0.0125, 0.0833, 98.7, 1.75)

	assert.Equal(t, 123.45, o.K())
	assert.Equal(t, -0.0125, o.R())
	assert.Equal(t, 0.0833, o.T())
	assert.Equal(t, 98.7, o.S())
	assert.Equal(t, 1.75, o.Sigma())
}

func TestCopyFidelity(t *testing.T) {
	src := NewVanillaOption(90, 0.03, 2, 110, 0.45)

	cp := src
	assert.Equal(t, src, cp)
	assert.True(t, src == cp)
	assert.Equal(t, src.K(), cp.K())
	assert.Equal(t, src.R(), cp.R())
	assert.Equal(t, src.T(), cp.T())
	assert.Equal(t, src.S(), cp.S())
	assert.Equal(t, src.Sigma(), cp.Sigma())

	// Reassigning the copy leaves the source untouched.
	cp = DefaultVanillaOption()
	assert.Equal(t, 90.0, src.K())
	assert.NotEqual(t, src, cp)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		opt   VanillaOption
		field string
	}{
		{"zero strike", NewVanillaOption(0, 0.05, 1, 100, 0.2), "strike"},
		{"negative maturity", NewVanillaOption(100, 0.05, -1, 100, 0.2), "maturity"},
		{"zero spot", NewVanillaOption(100, 0.05, 1, 0, 0.2), "spot"},
		{"zero volatility", NewVanillaOption(100, 0.05, 1, 100, 0), "volatility"},
		{"nan rate", NewVanillaOption(100, math.NaN(), 1, 100, 0.2), "rate"},
		{"infinite spot", NewVanillaOption(100, 0.05, 1, math.Inf(1), 0.2), "spot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opt.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	assert.NoError(t, DefaultVanillaOption().Validate())
	assert.NoError(t, NewVanillaOption(100, -0.02, 1, 100, 0.2).Validate())
}

func TestNewStrictVanillaOption(t *testing.T) {
	o, err := NewStrictVanillaOption(100, 0.05, 1, 100, 0.2)
	require.NoError(t, err)
	assert.Equal(t, DefaultVanillaOption(), o)

	o, err = NewStrictVanillaOption(100, 0.05, 0, 100, 0.2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, VanillaOption{}, o)
}
