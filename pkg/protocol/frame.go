// Package protocol implements the header-based wire frame codec shared by
// the remote scan driver and the reference daemon (cmd/arvod). A frame is
// a verb line followed by zero or more "Name: Value" header lines and a
// blank line, matching the scan/SCAN_FILE/SCAN_END protocol in §4.6/§6.
// The line-oriented, bufio.Reader-over-net.Conn reading shape is grounded
// on the client pattern in
// _examples/other_examples/aa2e1853_torbencarstensbit-go-clamd__clamd.go.go
// (Clamd.simpleCommand / response scanning).
package protocol

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/arvoscan/arvo/pkg/stream"
)

// maxHeaderValueLength bounds how much of a single header value gets onto
// the wire. Module diagnostic text (HeaderModuleText) is the one header
// whose length a module author controls, so it's the one worth bounding
// against a runaway or adversarial module flooding the connection.
const maxHeaderValueLength = 4096

// Verb identifiers for the three frame kinds the protocol defines.
const (
	VerbScan     = "SCAN"
	VerbScanFile = "SCAN_FILE"
	VerbScanEnd  = "SCAN_END"
)

// Header names used by SCAN and SCAN_FILE frames.
const (
	HeaderPath       = "Path"
	HeaderStatus     = "Status"
	HeaderModuleName = "Module-Name"
	HeaderModuleText = "X-Status"
	HeaderAction     = "Action"
)

// Frame is one wire-protocol message: a verb plus a set of string
// headers.
type Frame struct {
	Verb    string
	Headers map[string]string
}

// NewFrame constructs an empty frame for the given verb.
func NewFrame(verb string) *Frame {
	return &Frame{Verb: verb, Headers: make(map[string]string)}
}

// Set assigns a header value, returning the frame for chaining.
func (f *Frame) Set(name, value string) *Frame {
	f.Headers[name] = value
	return f
}

// Get returns a header value, or the empty string if absent (missing
// headers default to empty per the ProtocolDecodeError policy in §7).
func (f *Frame) Get(name string) string {
	return f.Headers[name]
}

// WriteTo encodes the frame to w as a verb line, "Name: Value" header
// lines in map-iteration order (order is not significant to the
// protocol), and a trailing blank line.
func (f *Frame) WriteTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", f.Verb); err != nil {
		return err
	}
	for name, value := range f.Headers {
		if name == HeaderModuleText {
			value = truncate(value)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

// ReadFrame reads one frame from r: a verb line, then "Name: Value"
// header lines until a blank line or EOF. It returns io.EOF directly if
// no verb line could be read at all (a clean end of stream); any other
// malformed input (a header line missing ": ") is simply skipped, per the
// "missing headers default to empty" decode policy — the frame is still
// returned rather than failing the whole connection.
func ReadFrame(r *bufio.Reader) (*Frame, error) {
	verbLine, err := r.ReadString('\n')
	if err != nil {
		if verbLine == "" {
			return nil, err
		}
	}
	verb := strings.TrimSpace(verbLine)
	if verb == "" {
		return nil, io.EOF
	}

	frame := NewFrame(verb)
	for {
		line, err := r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		if name, value, ok := strings.Cut(trimmed, ": "); ok {
			frame.Headers[name] = value
		}
		if err != nil {
			break
		}
	}

	return frame, nil
}

// truncate clamps value to its first maxHeaderValueLength bytes by writing
// it through a stream.CutoffWriter.
func truncate(value string) string {
	var buffer bytes.Buffer
	cutoff := stream.NewCutoffWriter(&buffer, maxHeaderValueLength)
	io.WriteString(cutoff, value)
	return buffer.String()
}
