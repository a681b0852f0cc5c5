package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/diatonic/note"
)

// Table is an ordered list of pitches, one per semitone, each owning the set
// of spellings that sound at that frequency. It is the only place a spelling
// is mapped to a frequency and is never mutated after NewTable returns.
type Table struct {
	entries    []Entry
	byPitch    map[Pitch]int
	bySpelling map[Spelling]int
}

// Standard is the process wide table covering octaves 0 through 8.
var Standard = MustNewTable(standardRows)

// NewTable builds a table from rows in ascending pitch order. Every
// spelling+octave must appear exactly once.
func NewTable(rows []Row) (*Table, error) {
	t := &Table{
		entries:    make([]Entry, 0, len(rows)),
		byPitch:    make(map[Pitch]int, len(rows)),
		bySpelling: make(map[Spelling]int, len(rows)*3),
	}

	for i, row := range rows {
		if i > 0 && row.Pitch <= rows[i-1].Pitch {
			return nil, fmt.Errorf("row %d: pitch %v is not above %v", i, row.Pitch, rows[i-1].Pitch)
		}
		spellings, err := parseSpellings(row.Spellings)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		for _, s := range spellings {
			if _, ok := t.bySpelling[s]; ok {
				return nil, fmt.Errorf("row %d: duplicate spelling %v", i, s)
			}
			t.bySpelling[s] = i
		}
		t.byPitch[row.Pitch] = i
		t.entries = append(t.entries, Entry{Pitch: row.Pitch, Spellings: spellings})
	}

	return t, nil
}

func MustNewTable(rows []Row) *Table {
	t, err := NewTable(rows)
	if err != nil {
		panic("could not build pitch table: " + err.Error())
	}
	return t
}

func parseSpellings(text string) ([]Spelling, error) {
	var res []Spelling
	for _, token := range strings.Split(text, "/") {
		cut := strings.TrimRight(token, "0123456789")
		if cut == token {
			return nil, fmt.Errorf("%q has no octave", token)
		}
		octave, err := strconv.Atoi(token[len(cut):])
		if err != nil {
			return nil, err
		}
		n, err := note.Parse(cut)
		if err != nil {
			return nil, err
		}
		res = append(res, Spelling{Note: n, Octave: note.Octave(octave)})
	}
	return res, nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Index returns the position of p in the table.
func (t *Table) Index(p Pitch) (int, bool) {
	i, ok := t.byPitch[p]
	return i, ok
}

// At returns the pitch at position i.
func (t *Table) At(i int) (Pitch, error) {
	if i < 0 || i >= len(t.entries) {
		return 0, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	return t.entries[i].Pitch, nil
}

func (t *Table) Lowest() Pitch  { return t.entries[0].Pitch }
func (t *Table) Highest() Pitch { return t.entries[len(t.entries)-1].Pitch }

// FrequencyOf returns the tabulated pitch of a note in an octave.
func (t *Table) FrequencyOf(n note.NoteName, o note.Octave) (Pitch, error) {
	i, ok := t.bySpelling[Spelling{Note: n, Octave: o}]
	if !ok {
		return 0, fmt.Errorf("%w: %v%d", ErrUnknownSpelling, n, o)
	}
	return t.entries[i].Pitch, nil
}

// SpellingsOf returns every spelling of p in table order, which is ascending
// by letter: B♯, C, D♭♭.
func (t *Table) SpellingsOf(p Pitch) ([]Spelling, error) {
	i, ok := t.byPitch[p]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPitch, p)
	}
	res := make([]Spelling, len(t.entries[i].Spellings))
	copy(res, t.entries[i].Spellings)
	return res, nil
}

// Increase walks semitones entries up the table from p. A negative count
// walks down.
func (t *Table) Increase(p Pitch, semitones int) (Pitch, error) {
	i, ok := t.byPitch[p]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPitch, p)
	}
	j := i + semitones
	if j < 0 || j >= len(t.entries) {
		return 0, fmt.Errorf("%w: %v moved by %d semitones", ErrOutOfRange, p, semitones)
	}
	return t.entries[j].Pitch, nil
}

// Decrease walks semitones entries down the table from p.
func (t *Table) Decrease(p Pitch, semitones int) (Pitch, error) {
	return t.Increase(p, -semitones)
}

// Spell picks the spelling of p whose letter is l. Each entry has at most one
// spelling per letter, so the choice is unambiguous when it exists.
func (t *Table) Spell(p Pitch, l note.Letter) (note.NoteName, error) {
	spellings, err := t.SpellingsOf(p)
	if err != nil {
		return note.NoteName{}, err
	}
	for _, s := range spellings {
		if s.Note.Letter() == l {
			return s.Note, nil
		}
	}
	return note.NoteName{}, &NoSpellingError{Pitch: p, Letter: l, Candidates: spellings}
}

// Equivalent reports whether a and b are enharmonic: the same frequency in
// the same table octave. Name-equal notes are always equivalent.
func (t *Table) Equivalent(a, b note.NoteName) bool {
	if a == b {
		return true
	}
	const anchor = note.Octave(4)
	pa, err := t.FrequencyOf(a, anchor)
	if err != nil {
		return false
	}
	pb, err := t.FrequencyOf(b, anchor)
	if err != nil {
		return false
	}
	return pa == pb
}

// Resolve names p using one of the candidate notes, e.g. a frequency reported
// by a sensor constrained to the notes of a key.
func (t *Table) Resolve(p Pitch, candidates []note.NoteName) (note.NoteName, error) {
	spellings, err := t.SpellingsOf(p)
	if err != nil {
		return note.NoteName{}, err
	}
	for _, s := range spellings {
		if note.Contains(candidates, s.Note) {
			return s.Note, nil
		}
	}
	cp := make([]note.NoteName, len(candidates))
	copy(cp, candidates)
	return note.NoteName{}, &UnavailableNoteError{Pitch: p, Candidates: cp}
}

// Range returns the tabulated pitches between lo and hi inclusive.
func (t *Table) Range(lo, hi Pitch) []Pitch {
	var res []Pitch
	for _, e := range t.entries {
		if e.Pitch >= lo && e.Pitch <= hi {
			res = append(res, e.Pitch)
		}
	}
	return res
}

// PianoRange returns the 88 pitches of a standard piano, A0 to C8.
func PianoRange() []Pitch {
	return Standard.Range(FromHz(27.50), FromHz(4186.01))
}

func FrequencyOf(n note.NoteName, o note.Octave) (Pitch, error) { return Standard.FrequencyOf(n, o) }
func SpellingsOf(p Pitch) ([]Spelling, error)                    { return Standard.SpellingsOf(p) }
func Increase(p Pitch, semitones int) (Pitch, error)             { return Standard.Increase(p, semitones) }
func Decrease(p Pitch, semitones int) (Pitch, error)             { return Standard.Decrease(p, semitones) }
func Spell(p Pitch, l note.Letter) (note.NoteName, error)        { return Standard.Spell(p, l) }
func Equivalent(a, b note.NoteName) bool                         { return Standard.Equivalent(a, b) }

func Resolve(p Pitch, candidates []note.NoteName) (note.NoteName, error) {
	return Standard.Resolve(p, candidates)
}
