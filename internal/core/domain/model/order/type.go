package order

import (
	"fmt"

	"transcription/internal/pkg/errs"
)

// Type is the kind of work the customer ordered for a file.
type Type int

const (
	TypeUnknown Type = iota

	// TypeTranscription is plain transcription work.
	TypeTranscription

	// TypeFormatting is formatting-only work on an existing transcript.
	TypeFormatting

	// TypeTranscriptionFormatting is transcription followed by custom
	// formatting.
	TypeTranscriptionFormatting
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:                 "UNKNOWN",
		TypeTranscription:           "TRANSCRIPTION",
		TypeFormatting:              "FORMATTING",
		TypeTranscriptionFormatting: "TRANSCRIPTION_FORMATTING",
	}
}

// ParseType maps the wire representation of an order type to its Type value.
func ParseType(s string) (Type, error) {
	for t, str := range typeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a known order type", s))
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
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// rejectOperation returns the rollback operation for this order type: bulk
// rejection lands formatting-only orders on Formatted, everything else on
// Transcribed.
func (t Type) rejectOperation() Operation {
	if t == TypeFormatting {
		return OpRejectToFormatted
	}
	return OpRejectToTranscribed
}
