package sd0_test

import (
	"bytes"
	"compress/zlib"
	"strings"
	"testing"

	"github.com/LUDevNet/assembly-fdb/sd0"
)

func TestRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200))
	compressed, err := sd0.Encode(data, zlib.BestCompression)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := sd0.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(data))
	}
}

func TestRoundTripAcrossSegmentBoundary(t *testing.T) {
	data := bytes.Repeat([]byte{0x5A}, sd0.SegmentSize+17)
	compressed, err := sd0.Encode(data, zlib.DefaultCompression)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := sd0.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("round trip across a segment boundary did not reproduce the input")
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := sd0.Decode(sd0.Magic[:])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Decode(magic only) = %d bytes, want 0", len(got))
	}
}

func TestEncodeEmpty(t *testing.T) {
	got, err := sd0.Encode(nil, zlib.DefaultCompression)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, sd0.Magic[:]) {
		t.Fatalf("Encode(nil) = % x, want magic only % x", got, sd0.Magic)
	}
}

func TestBadMagic(t *testing.T) {
	_, err := sd0.Decode([]byte("nope!"))
	if err != sd0.ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}
