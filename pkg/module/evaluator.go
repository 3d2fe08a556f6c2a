package module

import (
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Evaluate runs the module chain for a file against the given Report,
// walking modules in registry order. Modules whose Status is not
// StatusOK are skipped. For each module's result, the Report adopts it if
// strictly greater than the current aggregated verdict (see
// report.Report.Adopt); adoption of WhiteListed or Malware terminates the
// chain early. A module returning a non-nil error marks the Report
// IERROR, attributes the failing module, and terminates the chain (a
// ModuleError never propagates beyond the file being scanned).
//
// If modules is empty, the Report's status is left at whatever it already
// held — callers are expected to have initialized it to Undecided and to
// apply the "no applicable module" UnknownFileType rule themselves (see
// pkg/scanengine/local), since the evaluator has no way to
// distinguish "ran with no modules" from "not yet run."
func Evaluate(r *report.Report, mime string, modules []Module) {
	for _, m := range modules {
		if m.Status() != StatusOK {
			continue
		}

		v, diagnostic, err := m.Scan(r.Path, mime)
		if err != nil {
			r.Status = report.IERROR
			r.ModuleName = m.Name()
			r.ModuleReport = err.Error()
			return
		}

		if shortCircuit := r.Adopt(m.Name(), v, diagnostic); shortCircuit {
			return
		}
	}
}

// initialStatus returns the Report status to use when no modules are
// applicable to a file's MIME type, per the resolved Open Question: the
// status is Undecided immediately before this branch and is overwritten
// here to UnknownFileType, with no module attribution.
func initialStatus() report.Status {
	return report.FromVerdict(verdict.UnknownFileType)
}

// ApplyUnknownType sets r's status to UnknownFileType with no module
// attribution, for use when the registry has no applicable modules for
// the file's classified MIME type.
func ApplyUnknownType(r *report.Report) {
	r.Status = initialStatus()
}
