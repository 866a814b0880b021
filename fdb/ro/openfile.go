package ro

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OpenFile opens path and loads it fully into memory before handing it to
// Open. On Linux the fd is hinted FADV_RANDOM first: like the teacher's
// compactindexsized.Open, this format is accessed by offset all over the
// file rather than sequentially, so readahead would be wasted work.
func OpenFile(path string) (Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return Database{}, fmt.Errorf("fdb: opening %s: %w", path, err)
	}
	defer f.Close()

	if err := fadviseRandom(f); err != nil {
		slog.Warn("fadvise(RANDOM) failed", "path", path, "error", err)
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		return Database{}, fmt.Errorf("fdb: reading %s: %w", path, err)
	}
	return Open(buf)
}
