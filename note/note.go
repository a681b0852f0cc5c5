package note

import (
	"fmt"
	"strings"
	"unicode"
)

// Letter is one of the seven natural letters A through G.
type Letter byte

const letters = "ABCDEFG"

func ParseLetter(r rune) (Letter, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'G' {
		return 0, false
	}
	return Letter(r), true
}

func (l Letter) Valid() bool {
	return l >= 'A' && l <= 'G'
}

func (l Letter) index() int {
	return int(l - 'A')
}

// Add rotates the letter n places through A..G, wrapping in both directions.
func (l Letter) Add(n int) Letter {
	i := (l.index() + n) % len(letters)
	if i < 0 {
		i += len(letters)
	}
	return Letter(letters[i])
}

func (l Letter) Next() Letter     { return l.Add(1) }
func (l Letter) Previous() Letter { return l.Add(-1) }

// Distance is the number of letters from l up to other, in 0..6.
func (l Letter) Distance(other Letter) int {
	d := other.index() - l.index()
	if d < 0 {
		d += len(letters)
	}
	return d
}

func (l Letter) String() string {
	return string(rune(l))
}

// Accidental is the semitone offset applied to a natural letter.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "♭♭"
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "♯♯"
	}
	return ""
}

// ASCII returns the accidental spelled with '#' and 'b'.
func (a Accidental) ASCII() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return ""
}

// accidentalTokens lists every accepted accidental spelling, longest first so
// that prefix matching is greedy.
var accidentalTokens = []struct {
	token      string
	accidental Accidental
}{
	{"double sharp", DoubleSharp},
	{"double flat", DoubleFlat},
	{"doublesharp", DoubleSharp},
	{"doubleflat", DoubleFlat},
	{"sharp", Sharp},
	{"flat", Flat},
	{"♯♯", DoubleSharp},
	{"♭♭", DoubleFlat},
	{"𝄪", DoubleSharp},
	{"𝄫", DoubleFlat},
	{"##", DoubleSharp},
	{"bb", DoubleFlat},
	{"♯", Sharp},
	{"♭", Flat},
	{"#", Sharp},
	{"b", Flat},
}

func lookupAccidental(token string) (Accidental, bool) {
	if token == "" {
		return Natural, true
	}
	for _, t := range accidentalTokens {
		if t.token == token {
			return t.accidental, true
		}
	}
	return Natural, false
}

// NoteName is a natural letter plus an accidental. The zero value is not a
// valid note; build one with New or Parse.
type NoteName struct {
	letter     Letter
	accidental Accidental
}

func New(l Letter, a Accidental) (NoteName, error) {
	n := NoteName{letter: l, accidental: a}
	if !n.Valid() {
		return NoteName{}, &InvalidNoteError{Input: fmt.Sprintf("%c%+d", rune(l), a)}
	}
	return n, nil
}

func MustNew(l Letter, a Accidental) NoteName {
	n, err := New(l, a)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse reads a complete note name such as "C", "f#", "B♭", "E double flat"
// or "A-flat". Nothing may follow the accidental.
func Parse(text string) (NoteName, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NoteName{}, &InvalidNoteError{Input: text}
	}
	first := []rune(trimmed)[0]
	l, ok := ParseLetter(first)
	if !ok {
		return NoteName{}, &InvalidNoteError{Input: text}
	}
	rest := trimmed[len(string(first)):]
	rest = strings.NewReplacer("-", "", "_", "").Replace(rest)
	rest = strings.ToLower(strings.TrimSpace(rest))
	a, ok := lookupAccidental(rest)
	if !ok {
		return NoteName{}, &InvalidNoteError{Input: text}
	}
	return NoteName{letter: l, accidental: a}, nil
}

func MustParse(text string) NoteName {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// ParsePrefix reads the longest note name at the start of text and returns it
// with whatever follows, e.g. "Bbm7" gives B♭ and "m7".
func ParsePrefix(text string) (NoteName, string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NoteName{}, "", &InvalidNoteError{Input: text}
	}
	first := []rune(trimmed)[0]
	l, ok := ParseLetter(first)
	if !ok {
		return NoteName{}, "", &InvalidNoteError{Input: text}
	}
	rest := trimmed[len(string(first)):]

	candidate := strings.TrimLeft(rest, "-_")
	lowered := strings.ToLower(candidate)
	for _, t := range accidentalTokens {
		if !strings.HasPrefix(lowered, t.token) {
			continue
		}
		tail := candidate[len(t.token):]
		if isWord(t.token) && !endsWord(tail) {
			continue
		}
		return NoteName{letter: l, accidental: t.accidental}, tail, nil
	}

	// word accidentals may be separated from the letter: "C sharp minor"
	spaced := strings.TrimLeft(candidate, " ")
	lowered = strings.ToLower(spaced)
	for _, t := range accidentalTokens {
		if len(t.token) > 2 && strings.HasPrefix(lowered, t.token) && isWord(t.token) && endsWord(spaced[len(t.token):]) {
			return NoteName{letter: l, accidental: t.accidental}, spaced[len(t.token):], nil
		}
	}
	return NoteName{letter: l, accidental: Natural}, rest, nil
}

// endsWord reports whether a word accidental may stop right before tail:
// at the end, a space or hyphen, a digit, or the "m" of a quality.
func endsWord(tail string) bool {
	if tail == "" {
		return true
	}
	r := []rune(tail)[0]
	return r == ' ' || r == '-' || r == '_' || unicode.IsDigit(r) || r == 'm' || r == 'M'
}

func isWord(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func (n NoteName) Letter() Letter         { return n.letter }
func (n NoteName) Accidental() Accidental { return n.accidental }

func (n NoteName) Valid() bool {
	return n.letter.Valid() && n.accidental.Valid()
}

func (n NoteName) String() string {
	return n.letter.String() + n.accidental.String()
}

// ASCII returns the name spelled with '#' and 'b', e.g. "C#".
func (n NoteName) ASCII() string {
	return n.letter.String() + n.accidental.ASCII()
}

func (n NoteName) Equal(other NoteName) bool {
	return n == other
}

func (n NoteName) IsNatural() bool     { return n.accidental == Natural }
func (n NoteName) IsSharp() bool       { return n.accidental == Sharp }
func (n NoteName) IsFlat() bool        { return n.accidental == Flat }
func (n NoteName) IsDoubleSharp() bool { return n.accidental == DoubleSharp }
func (n NoteName) IsDoubleFlat() bool  { return n.accidental == DoubleFlat }

// IsStandardSharp reports a sharp other than B♯ and E♯, which sit on a
// natural half step.
func (n NoteName) IsStandardSharp() bool {
	return n.IsSharp() && n.letter != 'B' && n.letter != 'E'
}

// IsStandardFlat reports a flat other than C♭ and F♭.
func (n NoteName) IsStandardFlat() bool {
	return n.IsFlat() && n.letter != 'C' && n.letter != 'F'
}

func (n NoteName) NextNaturalLetter() Letter     { return n.letter.Next() }
func (n NoteName) PreviousNaturalLetter() Letter { return n.letter.Previous() }

// Natural returns the natural note sharing n's letter.
func (n NoteName) Natural() NoteName {
	return NoteName{letter: n.letter}
}

func (n NoteName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *NoteName) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Octave tags a note name with its register, 4 being the octave of middle C.
type Octave int

// Contains reports whether notes holds a note name-equal to n.
func Contains(notes []NoteName, n NoteName) bool {
	for _, candidate := range notes {
		if candidate == n {
			return true
		}
	}
	return false
}

// Strings renders each note with String.
func Strings(notes []NoteName) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.String())
	}
	return res
}
