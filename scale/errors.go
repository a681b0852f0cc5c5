package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
)

// InvalidKeyError means a step of the pattern landed on a pitch with no
// spelling for the next letter, e.g. G♯♯ major needs a B♯♯.
type InvalidKeyError struct {
	Tonic      note.NoteName
	Pattern    string
	Letter     note.Letter
	Candidates []pitch.Spelling
}

func (e *InvalidKeyError) Error() string {
	spellings := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		spellings[i] = c.String()
	}
	return fmt.Sprintf("cannot spell %v %s: no %v among [%s]",
		e.Tonic, e.Pattern, e.Letter, strings.Join(spellings, " "))
}

// InvalidScaleError covers unknown pattern lookups and rejected
// registrations.
type InvalidScaleError struct {
	Input  string
	Reason string
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("invalid scale %q: %s", e.Input, e.Reason)
}

type InvalidModeError struct {
	Pattern string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%q is not a mode", e.Pattern)
}
