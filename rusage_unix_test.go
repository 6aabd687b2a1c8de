//go:build unix

package cleave

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTakeRusage(t *testing.T) {
	s := takeRusage()
	require.True(t, s.valid)
	require.Greater(t, s.usage.MaxRssBytes, int64(0))
	require.Greater(t, s.usage.CpuUserNsecs+s.usage.CpuSysNsecs, int64(0))
}
