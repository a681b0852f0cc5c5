package key

import (
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/scale"
)

type Quality int

const (
	Major Quality = iota
	Minor
)

func (q Quality) String() string {
	if q == Minor {
		return "minor"
	}
	return "major"
}

// Suffix is the short form used in key and chord names: "" or "m".
func (q Quality) Suffix() string {
	if q == Minor {
		return "m"
	}
	return ""
}

func (q Quality) Pattern() scale.Pattern {
	if q == Minor {
		return scale.Minor
	}
	return scale.Major
}

// InvalidQualityError is returned for a key or chord name whose text after
// the note is not a known quality.
type InvalidQualityError struct {
	Input string
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("%q is not a valid quality", e.Input)
}

// ParseQuality accepts "", "maj" and "major" for Major and "m", "min" and
// "minor" for Minor. Case and spaces are ignored, except that a lone "M"
// reads as major.
func ParseQuality(text string) (Quality, error) {
	if strings.TrimSpace(text) == "M" {
		return Major, nil
	}
	switch normalize(text) {
	case "", "maj", "major":
		return Major, nil
	case "m", "min", "minor":
		return Minor, nil
	}
	return 0, &InvalidQualityError{Input: strings.TrimSpace(text)}
}

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), ""))
}

// Key is a major or minor scale named like "C", "Am" or "F♯ minor".
type Key struct {
	quality Quality
	scale   scale.Scale
}

func New(tonic note.Source, q Quality) (Key, error) {
	s, err := scale.Generate(tonic, q.Pattern())
	if err != nil {
		return Key{}, err
	}
	return Key{quality: q, scale: s}, nil
}

// FromName parses a leading note and a trailing quality.
func FromName(text string) (Key, error) {
	tonic, rest, err := note.ParsePrefix(text)
	if err != nil {
		return Key{}, err
	}
	q, err := ParseQuality(rest)
	if err != nil {
		return Key{}, err
	}
	return New(tonic, q)
}

func MustFromName(text string) Key {
	k, err := FromName(text)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) Tonic() note.NoteName   { return k.scale.Tonic() }
func (k Key) Quality() Quality       { return k.quality }
func (k Key) Scale() scale.Scale     { return k.scale }
func (k Key) Notes() []note.NoteName { return k.scale.Notes() }

// Name is the canonical short name, e.g. "F♯m".
func (k Key) Name() string {
	return k.scale.Tonic().String() + k.quality.Suffix()
}

// Equal compares canonical names, so "A minor" equals "Am".
func (k Key) Equal(other Key) bool {
	return k.Name() == other.Name()
}

func (k Key) String() string {
	return k.Name()
}

// Modes returns the mode built on each degree of the key, in degree order.
// A major key starts at Ionian and a minor key at Aeolian.
func (k Key) Modes() ([]scale.Mode, error) {
	patterns := scale.Modes()
	first := 0
	if k.quality == Minor {
		first = 5
	}

	notes := k.scale.Notes()
	res := make([]scale.Mode, 0, len(notes))
	for i, n := range notes {
		m, err := scale.NewMode(n, patterns[(first+i)%len(patterns)])
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

// Mode returns the key's mode with pattern p, e.g. D Dorian for C major.
func (k Key) Mode(p scale.Pattern) (scale.Mode, error) {
	if !p.IsMode() {
		return scale.Mode{}, &scale.InvalidModeError{Pattern: p.Name}
	}
	modes, err := k.Modes()
	if err != nil {
		return scale.Mode{}, err
	}
	for _, m := range modes {
		if m.Pattern().Equal(p) {
			return m, nil
		}
	}
	return scale.Mode{}, &scale.InvalidModeError{Pattern: p.Name}
}
