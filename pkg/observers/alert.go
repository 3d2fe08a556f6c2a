// Package observers implements the built-in alert and quarantine
// observers that local-mode scans pre-register automatically, per §4.1
// ("in local mode, pre-registers the built-in alert and quarantine
// observers so that their side effects always occur unless explicitly
// disabled by the caller").
package observers

import (
	"fmt"

	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/report"
)

// Alert logs a warning for any report carrying the ALERT action, via
// logger. It is always safe to register: reports without ALERT are a
// no-op.
func Alert(logger *logging.Logger) func(*report.Report) {
	return func(r *report.Report) {
		if !r.Action.Has(report.ActionAlert) {
			return
		}
		logger.Warn(fmt.Errorf("%s: %s (%s)", r.Path, r.Status, r.ModuleName))
	}
}
