package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false).Named("cleave")
	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d", 2)
	require.NoError(t, l.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "cleave")
	require.Contains(t, out, "shown 2")

	buf.Reset()
	l = New(&buf, true)
	l.Debugf("now visible")
	require.Contains(t, buf.String(), "now visible")

	Nop().Errorf("goes nowhere")
}
