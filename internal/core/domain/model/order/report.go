package order

import (
	"fmt"

	"transcription/internal/pkg/errs"
)

// ReportOption classifies why a file was sent back to screening.
type ReportOption int

const (
	ReportOptionNone ReportOption = iota
	ReportBadAudio
	ReportWrongInstructions
	ReportAutoDiffBelowThreshold
	ReportOther
)

func reportOptionStrings() map[ReportOption]string {
	return map[ReportOption]string{
		ReportOptionNone:             "NONE",
		ReportBadAudio:               "BAD_AUDIO",
		ReportWrongInstructions:      "WRONG_INSTRUCTIONS",
		ReportAutoDiffBelowThreshold: "AUTO_DIFF_BELOW_THRESHOLD",
		ReportOther:                  "OTHER",
	}
}

// ParseReportOption maps the wire representation to a ReportOption.
func ParseReportOption(s string) (ReportOption, error) {
	for opt, str := range reportOptionStrings() {
		if opt != ReportOptionNone && str == s {
			return opt, nil
		}
	}
	return ReportOptionNone, errs.NewValueIsInvalidErrorWithCause(
		"reportOption", fmt.Errorf("%q is not a known report option", s))
}

func (o ReportOption) String() string {
	if s, ok := reportOptionStrings()[o]; ok {
		return s
	}
	return "NONE"
}

// ReportMode records whether the report came from a human or an automated
// quality check.
type ReportMode int

const (
	ReportModeNone ReportMode = iota
	ReportModeManual
	ReportModeAuto
)

func reportModeStrings() map[ReportMode]string {
	return map[ReportMode]string{
		ReportModeNone:   "NONE",
		ReportModeManual: "MANUAL",
		ReportModeAuto:   "AUTO",
	}
}

func (m ReportMode) String() string {
	if s, ok := reportModeStrings()[m]; ok {
		return s
	}
	return "NONE"
}

// Report is the screening report attached to an order when a file is sent
// back for OM attention.
type Report struct {
	Option  ReportOption
	Mode    ReportMode
	Comment string
}

// Validate rejects reports without a concrete option or mode.
func (r Report) Validate() error {
	if r.Option == ReportOptionNone {
		return errs.NewValueIsRequiredError("reportOption")
	}
	if _, ok := reportOptionStrings()[r.Option]; !ok {
		return errs.NewValueIsInvalidError("reportOption")
	}
	if r.Mode == ReportModeNone {
		return errs.NewValueIsRequiredError("reportMode")
	}
	if _, ok := reportModeStrings()[r.Mode]; !ok {
		return errs.NewValueIsInvalidError("reportMode")
	}
	return nil
}
