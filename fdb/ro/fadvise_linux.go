//go:build linux

package ro

import (
	"os"

	"golang.org/x/sys/unix"
)

func fadviseRandom(f *os.File) error {
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM)
}
