package cleave

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRusageSub(t *testing.T) {
	start := rusageSnapshot{valid: true, usage: sysUsage{
		CpuUserNsecs: 100, CpuSysNsecs: 50, MaxRssBytes: 1 << 20, MinFlt: 7, CtxSwYield: 3,
	}}
	end := rusageSnapshot{valid: true, usage: sysUsage{
		CpuUserNsecs: 250, CpuSysNsecs: 60, MaxRssBytes: 3 << 20, MinFlt: 9, CtxSwYield: 10,
	}}

	require.Equal(t, sysUsage{
		CpuUserNsecs: 150,
		CpuSysNsecs:  10,
		MaxRssBytes:  3 << 20,
		MinFlt:       2,
		CtxSwYield:   7,
	}, end.sub(start))

	// either side missing: nothing to report
	require.Equal(t, sysUsage{}, end.sub(rusageSnapshot{}))
	require.Equal(t, sysUsage{}, rusageSnapshot{}.sub(start))
}

func TestRusageInSummary(t *testing.T) {
	dir := t.TempDir()
	cl, err := New(Settings{Prefix: dir + "/x"})
	require.NoError(t, err)
	require.NoError(t, cl.ProcessReader(context.Background(), strings.NewReader("a\nb\n")))

	sys := cl.statSummary.SysStats
	require.GreaterOrEqual(t, sys.CpuUserNsecs, int64(0))
	require.GreaterOrEqual(t, sys.CpuSysNsecs, int64(0))
	require.GreaterOrEqual(t, sys.MinFlt, int64(0))

	if takeRusage().valid {
		require.Greater(t, sys.MaxRssBytes, int64(0))
	}

	// rusage fields sit flat inside "sys"
	b, err := json.Marshal(cl.statSummary)
	require.NoError(t, err)

	var decoded struct {
		Sys map[string]interface{} `json:"sys"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Contains(t, decoded.Sys, "maxMemoryUsed")
	require.Contains(t, decoded.Sys, "elapsedNanoseconds")
}
