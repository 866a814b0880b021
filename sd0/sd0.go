// Package sd0 implements the segmented-deflate (".sd0") stream format:
// a magic header followed by a sequence of independently zlib-compressed
// chunks, each no larger than SegmentSize bytes of raw input. Grounded on
// original_source's modules/pack/src/sd0/mod.rs and the sd0-decode/
// sd0-encode examples; kept at the external-collaborator depth the
// format needs here (stream framing only, not the sibling si0 index
// format's line-oriented metadata).
package sd0

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the 5-byte header every sd0 stream starts with.
var Magic = [5]byte{'s', 'd', '0', 0x01, 0xff}

// SegmentSize is the largest amount of raw input compressed into a
// single chunk.
const SegmentSize = 0x40000

// Writer compresses what's written to it into magic-prefixed,
// fixed-size raw segments, each its own independent zlib stream. Callers
// must call Close to flush any partial trailing segment.
type Writer struct {
	w       io.Writer
	level   int
	buf     []byte
	wrote   bool
	flushed bool
}

// NewWriter wraps w, writing the sd0 magic immediately.
func NewWriter(w io.Writer, level int) (*Writer, error) {
	if _, err := w.Write(Magic[:]); err != nil {
		return nil, fmt.Errorf("sd0: writing magic: %w", err)
	}
	return &Writer{w: w, level: level, buf: make([]byte, 0, SegmentSize)}, nil
}

func (sw *Writer) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		n := SegmentSize - len(sw.buf)
		if n > len(p) {
			n = len(p)
		}
		sw.buf = append(sw.buf, p[:n]...)
		p = p[n:]
		if len(sw.buf) == SegmentSize {
			if err := sw.flushSegment(); err != nil {
				return total - len(p), err
			}
		}
	}
	return total, nil
}

func (sw *Writer) flushSegment() error {
	if len(sw.buf) == 0 {
		return nil
	}
	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, sw.level)
	if err != nil {
		return fmt.Errorf("sd0: zlib writer: %w", err)
	}
	if _, err := zw.Write(sw.buf); err != nil {
		return fmt.Errorf("sd0: compressing segment: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("sd0: closing zlib stream: %w", err)
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(compressed.Len()))
	if _, err := sw.w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("sd0: writing segment length: %w", err)
	}
	if _, err := sw.w.Write(compressed.Bytes()); err != nil {
		return fmt.Errorf("sd0: writing segment: %w", err)
	}
	sw.buf = sw.buf[:0]
	return nil
}

// Close flushes any buffered partial segment. It does not close the
// underlying writer.
func (sw *Writer) Close() error {
	if sw.flushed {
		return nil
	}
	sw.flushed = true
	return sw.flushSegment()
}

// Encode is a convenience wrapper compressing data into an sd0 stream in
// memory, mirroring the original crate's encode().
func Encode(data []byte, level int) ([]byte, error) {
	var out bytes.Buffer
	w, err := NewWriter(&out, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
