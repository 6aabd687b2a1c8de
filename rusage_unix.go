//go:build unix

package cleave

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func takeRusage() rusageSnapshot {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return rusageSnapshot{}
	}

	maxRss := int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		// KiB everywhere except mac
		maxRss *= 1024
	}

	return rusageSnapshot{
		valid: true,
		usage: sysUsage{
			CpuUserNsecs: unix.TimevalToNsec(ru.Utime),
			CpuSysNsecs:  unix.TimevalToNsec(ru.Stime),
			MaxRssBytes:  maxRss,
			MinFlt:       int64(ru.Minflt),
			MajFlt:       int64(ru.Majflt),
			BioRead:      int64(ru.Inblock),
			BioWrite:     int64(ru.Oublock),
			CtxSwYield:   int64(ru.Nvcsw),
			CtxSwForced:  int64(ru.Nivcsw),
		},
	}
}
