//go:build !linux

package ro

import "os"

func fadviseRandom(f *os.File) error {
	return nil
}
