package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verbosity int) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := Verbosity()
	SetOutput(&buf)
	SetVerbosity(verbosity)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbosity(int(prev))
	})
	return &buf
}

func TestVerbosityFiltersLevels(t *testing.T) {
	cases := []struct {
		verbosity int
		want      []string
		dropped   []string
	}{
		{0, []string{"err-msg"}, []string{"info-msg", "debug-msg", "trace-msg"}},
		{1, []string{"err-msg", "info-msg"}, []string{"debug-msg", "trace-msg"}},
		{2, []string{"err-msg", "info-msg", "debug-msg"}, []string{"trace-msg"}},
		{3, []string{"err-msg", "info-msg", "debug-msg", "trace-msg"}, nil},
	}

	for _, tc := range cases {
		buf := capture(t, tc.verbosity)

		Errorf("err-msg")
		Infof("info-msg")
		Debugf("debug-msg")
		Tracef("trace-msg")

		out := buf.String()
		for _, w := range tc.want {
			assert.Contains(t, out, w, "verbosity=%d", tc.verbosity)
		}
		for _, d := range tc.dropped {
			assert.NotContains(t, out, d, "verbosity=%d", tc.verbosity)
		}
	}
}

func TestSetVerbosityClamps(t *testing.T) {
	capture(t, -5)
	assert.Equal(t, Error, Verbosity())

	SetVerbosity(42)
	assert.Equal(t, Trace, Verbosity())
}

func TestFormatting(t *testing.T) {
	buf := capture(t, 1)

	Infof("call=%.4f put=%.4f", 10.4506, 5.5735)
	assert.Contains(t, buf.String(), "call=10.4506 put=5.5735")
	assert.Contains(t, buf.String(), "level=info")
}
