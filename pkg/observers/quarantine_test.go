package observers

import (
	"testing"

	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// TestQuarantineIgnoresReportsWithoutQuarantineAction tests that
// Quarantine is a no-op for a report that doesn't request QUARANTINE.
func TestQuarantineIgnoresReportsWithoutQuarantineAction(t *testing.T) {
	quarantine := Quarantine(nil)
	r := &report.Report{Path: "/tmp/file", Status: report.FromVerdict(verdict.Clean)}
	quarantine(r) // must not panic, and must not attempt to move the file
}
