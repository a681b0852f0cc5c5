package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/constants"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
)

// Scale is a tonic spelled through a pattern. Its notes are computed once by
// Generate and never change.
type Scale struct {
	pattern Pattern
	tonic   note.NoteName
	notes   []note.NoteName
	pitches []pitch.Pitch
}

// Generate spells a scale by walking the pitch table from the tonic, one step
// at a time, and naming each pitch with the letter after the previous note's.
// The tonic is anchored at the reference octave; the last step returns to the
// tonic and is not walked.
func Generate(tonic note.Source, p Pattern) (Scale, error) {
	root, err := note.From(tonic)
	if err != nil {
		return Scale{}, err
	}
	if len(p.Intervals) == 0 {
		return Scale{}, &InvalidScaleError{Input: p.Name, Reason: "pattern has no steps"}
	}

	current, err := pitch.FrequencyOf(root, constants.ReferenceOctave)
	if err != nil {
		return Scale{}, fmt.Errorf("tonic %v: %w", root, err)
	}

	notes := []note.NoteName{root}
	pitches := []pitch.Pitch{current}
	for _, step := range p.Intervals[:len(p.Intervals)-1] {
		current, err = pitch.Increase(current, int(step))
		if err != nil {
			return Scale{}, fmt.Errorf("%v %s: %w", root, p.Name, err)
		}
		candidates, err := pitch.SpellingsOf(current)
		if err != nil {
			return Scale{}, err
		}

		expected := notes[len(notes)-1].NextNaturalLetter()
		next, ok := withLetter(candidates, expected)
		if !ok {
			return Scale{}, &InvalidKeyError{
				Tonic:      root,
				Pattern:    p.Name,
				Letter:     expected,
				Candidates: candidates,
			}
		}
		notes = append(notes, next)
		pitches = append(pitches, current)
	}

	return Scale{
		pattern: Pattern{Name: p.Name, Intervals: p.Steps()},
		tonic:   root,
		notes:   notes,
		pitches: pitches,
	}, nil
}

func withLetter(candidates []pitch.Spelling, l note.Letter) (note.NoteName, bool) {
	for _, c := range candidates {
		if c.Note.Letter() == l {
			return c.Note, true
		}
	}
	return note.NoteName{}, false
}

// FromName generates a scale from a tonic and a pattern name looked up in r.
func FromName(r *Registry, tonic note.Source, pattern string) (Scale, error) {
	p, err := r.ByName(pattern)
	if err != nil {
		return Scale{}, err
	}
	return Generate(tonic, p)
}

func (s Scale) Pattern() Pattern     { return Pattern{Name: s.pattern.Name, Intervals: s.pattern.Steps()} }
func (s Scale) Tonic() note.NoteName { return s.tonic }
func (s Scale) Len() int             { return len(s.notes) }

func (s Scale) Notes() []note.NoteName {
	res := make([]note.NoteName, len(s.notes))
	copy(res, s.notes)
	return res
}

// Pitches returns the ascending table pitches the notes were spelled from,
// starting with the tonic in the reference octave.
func (s Scale) Pitches() []pitch.Pitch {
	res := make([]pitch.Pitch, len(s.pitches))
	copy(res, s.pitches)
	return res
}

// Degree returns the nth note, counting the tonic as 1.
func (s Scale) Degree(n int) (note.NoteName, error) {
	if n < 1 || n > len(s.notes) {
		return note.NoteName{}, fmt.Errorf("%s has no degree %d", s.Name(), n)
	}
	return s.notes[n-1], nil
}

func (s Scale) Degrees(ns ...int) ([]note.NoteName, error) {
	res := make([]note.NoteName, 0, len(ns))
	for _, n := range ns {
		d, err := s.Degree(n)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

// DegreeOf returns the 1 based position of n, or 0 if the scale does not
// contain it.
func (s Scale) DegreeOf(n note.NoteName) int {
	for i, sn := range s.notes {
		if sn == n {
			return i + 1
		}
	}
	return 0
}

func (s Scale) Contains(n note.NoteName) bool {
	return s.DegreeOf(n) > 0
}

// Rotate returns the notes starting from degree n and wrapping around.
func (s Scale) Rotate(n int) []note.NoteName {
	res := make([]note.NoteName, 0, len(s.notes))
	if len(s.notes) == 0 {
		return res
	}
	start := ((n-1)%len(s.notes) + len(s.notes)) % len(s.notes)
	res = append(res, s.notes[start:]...)
	return append(res, s.notes[:start]...)
}

// IsDiatonic reports whether the scale names each of the seven letters once.
func (s Scale) IsDiatonic() bool {
	if len(s.notes) != 7 {
		return false
	}
	seen := map[note.Letter]bool{}
	for _, n := range s.notes {
		seen[n.Letter()] = true
	}
	return len(seen) == 7
}

// Name reads like "C♯ Major".
func (s Scale) Name() string {
	return s.tonic.String() + " " + s.pattern.Name
}

// Equal reports whether both scales spell the same notes in the same order.
// C Ionian equals C Major.
func (s Scale) Equal(other Scale) bool {
	if len(s.notes) != len(other.notes) {
		return false
	}
	for i := range s.notes {
		if s.notes[i] != other.notes[i] {
			return false
		}
	}
	return true
}

func (s Scale) String() string {
	return strings.Join(note.Strings(s.notes), " ")
}
