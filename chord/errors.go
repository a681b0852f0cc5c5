package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
)

// InvalidChordError means a tone of the chord landed on a pitch with no
// spelling for the letter the key puts there, e.g. the seventh of C♯♯maj7 in
// D♯ major would need a B♯♯.
type InvalidChordError struct {
	Root       note.NoteName
	Quality    string
	Letter     note.Letter
	Candidates []pitch.Spelling
}

func (e *InvalidChordError) Error() string {
	spellings := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		spellings[i] = c.String()
	}
	return fmt.Sprintf("cannot spell %v%s: no %v among [%s]",
		e.Root, e.Quality, e.Letter, strings.Join(spellings, " "))
}

func (e *InvalidChordError) Unwrap() error {
	return pitch.ErrNoSpelling
}
