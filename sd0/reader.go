package sd0

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrBadMagic = errors.New("sd0: bad magic")

// Reader decompresses an sd0 stream segment by segment, presenting the
// concatenated raw output through the ordinary io.Reader contract.
type Reader struct {
	r   io.Reader
	cur io.ReadCloser
}

// NewReader wraps r, verifying and consuming the sd0 magic.
func NewReader(r io.Reader) (*Reader, error) {
	var magic [5]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("sd0: reading magic: %w", err)
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}
	return &Reader{r: r}, nil
}

func (sr *Reader) Read(p []byte) (int, error) {
	for {
		if sr.cur == nil {
			var lenBuf [4]byte
			n, err := io.ReadFull(sr.r, lenBuf[:])
			if n == 0 && err != nil {
				return 0, io.EOF
			}
			if err != nil {
				return 0, fmt.Errorf("sd0: reading segment length: %w", err)
			}
			length := binary.LittleEndian.Uint32(lenBuf[:])
			segment := io.LimitReader(sr.r, int64(length))
			zr, err := zlib.NewReader(segment)
			if err != nil {
				return 0, fmt.Errorf("sd0: opening segment: %w", err)
			}
			sr.cur = zr
		}
		n, err := sr.cur.Read(p)
		if err == io.EOF {
			sr.cur.Close()
			sr.cur = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

// Decode is a convenience wrapper decompressing a full sd0 stream held in
// memory, mirroring the original crate's decode().
func Decode(data []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
