package protocol

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

// TestWriteToAndReadFrameRoundTrip tests that a frame written with WriteTo
// can be read back with matching verb and headers.
func TestWriteToAndReadFrameRoundTrip(t *testing.T) {
	frame := NewFrame(VerbScanFile).
		Set(HeaderPath, "/tmp/file").
		Set(HeaderStatus, "MALWARE")

	var buffer bytes.Buffer
	if err := frame.WriteTo(&buffer); err != nil {
		t.Fatal("unexpected error:", err)
	}

	decoded, err := ReadFrame(bufio.NewReader(&buffer))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if decoded.Verb != VerbScanFile {
		t.Errorf("expected verb %s, got %s", VerbScanFile, decoded.Verb)
	}
	if decoded.Get(HeaderPath) != "/tmp/file" {
		t.Errorf("unexpected path header: %s", decoded.Get(HeaderPath))
	}
	if decoded.Get(HeaderStatus) != "MALWARE" {
		t.Errorf("unexpected status header: %s", decoded.Get(HeaderStatus))
	}
}

// TestGetMissingHeaderDefaultsEmpty tests that Get returns the empty string
// for an absent header.
func TestGetMissingHeaderDefaultsEmpty(t *testing.T) {
	frame := NewFrame(VerbScan)
	if frame.Get(HeaderPath) != "" {
		t.Error("expected empty string for missing header")
	}
}

// TestReadFrameEmptyStreamReturnsEOF tests that reading from an empty
// stream returns io.EOF rather than a malformed frame.
func TestReadFrameEmptyStreamReturnsEOF(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(strings.NewReader("")))
	if err != io.EOF {
		t.Fatalf("expected io.EOF reading an empty stream, got %v", err)
	}
}

// TestReadFrameSkipsMalformedHeaderLine tests that a header line missing
// the ": " separator is silently skipped rather than aborting the frame.
func TestReadFrameSkipsMalformedHeaderLine(t *testing.T) {
	raw := "SCAN_FILE\nmalformed-header-line\nPath: /tmp/file\n\n"
	frame, err := ReadFrame(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if frame.Get(HeaderPath) != "/tmp/file" {
		t.Errorf("expected the well-formed header to still decode, got %q", frame.Get(HeaderPath))
	}
}

// TestWriteToTruncatesModuleText tests that an oversized module diagnostic
// is clamped to maxHeaderValueLength on the wire.
func TestWriteToTruncatesModuleText(t *testing.T) {
	oversized := strings.Repeat("x", maxHeaderValueLength+100)
	frame := NewFrame(VerbScanFile).Set(HeaderModuleText, oversized)

	var buffer bytes.Buffer
	if err := frame.WriteTo(&buffer); err != nil {
		t.Fatal("unexpected error:", err)
	}

	decoded, err := ReadFrame(bufio.NewReader(&buffer))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(decoded.Get(HeaderModuleText)) != maxHeaderValueLength {
		t.Errorf("expected truncated length %d, got %d", maxHeaderValueLength, len(decoded.Get(HeaderModuleText)))
	}
}
