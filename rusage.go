package cleave

// sysUsage is the process resource consumption attributed to one split run
type sysUsage struct {
	CpuUserNsecs int64 `json:"cpuUserNanoseconds"`
	CpuSysNsecs  int64 `json:"cpuSystemNanoseconds"`
	MaxRssBytes  int64 `json:"maxMemoryUsed"`
	MinFlt       int64 `json:"cacheMinorFaults"`
	MajFlt       int64 `json:"cacheMajorFaults"`
	BioRead      int64 `json:"blockIoReads,omitempty"`
	BioWrite     int64 `json:"blockIoWrites,omitempty"`
	CtxSwYield   int64 `json:"cpuVoluntaryYields"`
	CtxSwForced  int64 `json:"cpuForcedYields"`
}

// rusageSnapshot holds cumulative process counters at one point in time.
// The zero value (valid == false) stands for "not available on this platform".
type rusageSnapshot struct {
	valid bool
	usage sysUsage
}

// sub returns what was consumed between start and s. Peak memory is not a
// counter, it is reported as observed at s.
func (s rusageSnapshot) sub(start rusageSnapshot) sysUsage {
	if !s.valid || !start.valid {
		return sysUsage{}
	}

	return sysUsage{
		CpuUserNsecs: s.usage.CpuUserNsecs - start.usage.CpuUserNsecs,
		CpuSysNsecs:  s.usage.CpuSysNsecs - start.usage.CpuSysNsecs,
		MaxRssBytes:  s.usage.MaxRssBytes,
		MinFlt:       s.usage.MinFlt - start.usage.MinFlt,
		MajFlt:       s.usage.MajFlt - start.usage.MajFlt,
		BioRead:      s.usage.BioRead - start.usage.BioRead,
		BioWrite:     s.usage.BioWrite - start.usage.BioWrite,
		CtxSwYield:   s.usage.CtxSwYield - start.usage.CtxSwYield,
		CtxSwForced:  s.usage.CtxSwForced - start.usage.CtxSwForced,
	}
}
