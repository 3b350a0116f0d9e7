package job

import (
	"fmt"

	"transcription/internal/pkg/errs"
)

// Type identifies the pipeline stage a job assignment covers. The legacy
// proofread/review stages of the old pipeline fold into QC.
type Type int

const (
	TypeUnknown Type = iota
	Transcribe
	QC
	Finalize
	Test
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "UNKNOWN",
		Transcribe:  "TRANSCRIBE",
		QC:          "QC",
		Finalize:    "FINALIZE",
		Test:        "TEST",
	}
}

// ParseType maps the wire representation of a job type to its Type value.
func ParseType(s string) (Type, error) {
	for t, str := range typeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("jobType", fmt.Errorf("%q is not a known job type", s))
}

func (t Type) String() string {
	if s, ok := typeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects TypeUnknown and out-of-range values.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("jobType", fmt.Errorf("%d is not a valid job type", t))
	}
	return nil
}
