package pki

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// PKEntry is one file's metadata in a PK archive's CRC tree, simplified
// from the original's PKEntryData: MD5 sums are kept as raw 16-byte
// digests rather than the original's 32-byte ASCII-hex encoding, and the
// unexplained padding bytes the original parser skips over are not
// modeled (interface depth, not byte-exact wire compatibility — see the
// package doc comment).
type PKEntry struct {
	OrigFileSize  uint32
	OrigFileHash  [16]byte
	ComprFileSize uint32
	ComprFileHash [16]byte
	FileDataAddr  uint32
	Compressed    bool
}

// PKHeader is the fixed 8-byte header at the start of a PK archive.
type PKHeader struct {
	FileListBaseAddr uint32
	Value1           uint32
}

// Archive is an opened PK file: its header, its CRC tree of entries, and
// the backing stream to read file payloads from by offset.
type Archive struct {
	Header  PKHeader
	Nodes   []TreeNode[PKEntry]
	Root    int32
	backing io.ReaderAt
}

// NewArchive wraps a parsed header, node list and root index around a
// backing stream. Parsing the on-disk layout into Nodes is the caller's
// job (this package models the shapes, not the nom-equivalent decoder);
// see pki's package doc comment.
func NewArchive(header PKHeader, nodes []TreeNode[PKEntry], root int32, backing io.ReaderAt) Archive {
	return Archive{Header: header, Nodes: nodes, Root: root, backing: backing}
}

// Lookup finds the entry for crc, if any.
func (a Archive) Lookup(crc uint32) (PKEntry, bool) {
	return Lookup(a.Nodes, a.Root, crc)
}

// ReadBlob reads a file's stored payload (compressed or not, per
// e.Compressed — decompression, if the payload is segmented-deflate, is
// the caller's job via the sd0 package). Uses a pooled scratch buffer the
// same way the teacher's compactindexsized.Bucket.Lookup pools a read
// buffer for an io.ReaderAt-backed scan, since this, too, is a
// random-offset read from a file rather than a resident byte slice.
func (a Archive) ReadBlob(e PKEntry) ([]byte, error) {
	size := e.ComprFileSize
	if !e.Compressed {
		size = e.OrigFileSize
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if cap(buf.B) < int(size) {
		buf.B = make([]byte, size)
	} else {
		buf.B = buf.B[:size]
	}
	n, err := a.backing.ReadAt(buf.B, int64(e.FileDataAddr))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("pki: reading blob at %d: %w", e.FileDataAddr, err)
	}
	if n < len(buf.B) {
		return nil, fmt.Errorf("pki: short read for blob at %d: got %d of %d bytes", e.FileDataAddr, n, len(buf.B))
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}
