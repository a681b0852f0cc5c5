package pitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/note"
)

var (
	ErrUnknownSpelling = errors.New("spelling is not in the pitch table")
	ErrUnknownPitch    = errors.New("pitch is not in the pitch table")
	ErrOutOfRange      = errors.New("pitch table walked out of range")
	ErrNoSpelling      = errors.New("no spelling with that letter")
)

// UnavailableNoteError is returned by Resolve when none of the candidate notes
// is a spelling of the pitch.
type UnavailableNoteError struct {
	Pitch      Pitch
	Candidates []note.NoteName
}

func (e *UnavailableNoteError) Error() string {
	return fmt.Sprintf("no note for pitch %v among [%s]", e.Pitch, strings.Join(note.Strings(e.Candidates), " "))
}

// NoSpellingError is returned by Spell when the pitch has no spelling with
// the wanted letter. It matches ErrNoSpelling under errors.Is.
type NoSpellingError struct {
	Pitch      Pitch
	Letter     note.Letter
	Candidates []Spelling
}

func (e *NoSpellingError) Error() string {
	spellings := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		spellings[i] = c.String()
	}
	return fmt.Sprintf("%v: %v among [%s] at %v", ErrNoSpelling, e.Letter, strings.Join(spellings, " "), e.Pitch)
}

func (e *NoSpellingError) Is(target error) bool {
	return target == ErrNoSpelling
}
