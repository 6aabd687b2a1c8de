package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

func init() {
	ReadOptimizations = append(ReadOptimizations, Optimization{
		Name: "fadvise-sequential",
		Action: func(f *os.File, s os.FileInfo) error {
			if !s.Mode().IsRegular() {
				return os.ErrInvalid
			}
			return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
		},
	})
}
