package protocol

import (
	"strconv"

	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// ierrorStatusValue is the decimal Status value reserved for the IERROR
// absorbing state, which sits outside the 0..6 range of the verdict.Verdict
// constant values and so cannot be confused with a real verdict on the
// wire.
const ierrorStatusValue = -1

// statusToInt converts a report.Status to its decimal wire value: the
// underlying verdict.Verdict's integer value, or ierrorStatusValue for
// IERROR.
func statusToInt(s report.Status) int {
	if s.IsIERROR() {
		return ierrorStatusValue
	}
	return int(s.Verdict())
}

// intToStatus is the inverse of statusToInt. An out-of-range value
// (including the zero value produced for unparseable input) decodes to
// Undecided, per the "unparseable values are treated as 0" wire policy.
func intToStatus(v int) report.Status {
	if v == ierrorStatusValue {
		return report.IERROR
	}
	if v < int(verdict.Undecided) || v > int(verdict.WhiteListed) {
		return report.FromVerdict(verdict.Undecided)
	}
	return report.FromVerdict(verdict.Verdict(v))
}

// DecodeReport converts a SCAN_FILE frame into a Report. Status and Action
// are both wire-encoded as decimal integers; unparseable values default to
// 0, per the ProtocolDecodeError policy in §7: a malformed frame is still
// emitted as a Report rather than aborting the scan.
func DecodeReport(f *Frame) *report.Report {
	statusValue, _ := strconv.Atoi(f.Get(HeaderStatus))
	action, _ := strconv.ParseUint(f.Get(HeaderAction), 10, 8)

	return &report.Report{
		Path:         f.Get(HeaderPath),
		Status:       intToStatus(statusValue),
		Action:       report.Action(action),
		ModuleName:   f.Get(HeaderModuleName),
		ModuleReport: f.Get(HeaderModuleText),
	}
}

// EncodeReport converts a Report into a SCAN_FILE frame, the inverse of
// DecodeReport, used by the reference daemon (cmd/arvod) to re-stream
// local scan results over the wire.
func EncodeReport(r *report.Report) *Frame {
	return NewFrame(VerbScanFile).
		Set(HeaderPath, r.Path).
		Set(HeaderStatus, strconv.Itoa(statusToInt(r.Status))).
		Set(HeaderModuleName, r.ModuleName).
		Set(HeaderModuleText, r.ModuleReport).
		Set(HeaderAction, strconv.Itoa(int(r.Action)))
}
