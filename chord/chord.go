package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/diatonic/constants"
	"github.com/jsphweid/diatonic/interval"
	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
)

var ErrRootNotInKey = errors.New("chord root is not in the key")

// Tone is one chord member: its distance from the root and how many letters
// above the root it is spelled.
type Tone struct {
	Semitones  interval.Interval
	LetterSpan int
}

var (
	root       = Tone{0, 0}
	majorThird = Tone{interval.MajorThird, 2}
	minorThird = Tone{interval.MinorThird, 2}
	fifth      = Tone{interval.PerfectFifth, 4}
	minorSev   = Tone{interval.MinorSeventh, 6}
	majorSev   = Tone{interval.MajorSeventh, 6}
	ninth      = Tone{interval.MajorNinth, 1}
	eleventh   = Tone{interval.PerfectEleventh, 3}
)

// Quality is a chord suffix with its tones. Minor qualities take the root's
// minor key when no key is given.
type Quality struct {
	Suffix string
	Key    key.Quality
	Tones  []Tone
}

var qualities = []Quality{
	{"", key.Major, []Tone{root, majorThird, fifth}},
	{"m", key.Minor, []Tone{root, minorThird, fifth}},
	{"7", key.Major, []Tone{root, majorThird, fifth, minorSev}},
	{"maj7", key.Major, []Tone{root, majorThird, fifth, majorSev}},
	{"m7", key.Minor, []Tone{root, minorThird, fifth, minorSev}},
	{"9", key.Major, []Tone{root, majorThird, fifth, minorSev, ninth}},
	{"m9", key.Minor, []Tone{root, minorThird, fifth, minorSev, ninth}},
	{"11", key.Major, []Tone{root, majorThird, fifth, minorSev, ninth, eleventh}},
	{"m11", key.Minor, []Tone{root, minorThird, fifth, minorSev, ninth, eleventh}},
}

var aliases = map[string]string{
	"maj":     "",
	"major":   "",
	"min":     "m",
	"minor":   "m",
	"major7":  "maj7",
	"min7":    "m7",
	"minor7":  "m7",
	"min9":    "m9",
	"minor9":  "m9",
	"min11":   "m11",
	"minor11": "m11",
}

// ParseQuality reads a chord suffix. Case and spaces are ignored, except that
// an upper case "M" or "M7" reads as major.
func ParseQuality(text string) (Quality, error) {
	suffix := strings.Join(strings.Fields(text), "")
	switch suffix {
	case "M":
		suffix = ""
	case "M7":
		suffix = "maj7"
	}
	suffix = strings.ToLower(suffix)
	if canonical, ok := aliases[suffix]; ok {
		suffix = canonical
	}
	for _, q := range qualities {
		if q.Suffix == suffix {
			return q, nil
		}
	}
	return Quality{}, &key.InvalidQualityError{Input: strings.TrimSpace(text)}
}

// Suffixes lists the canonical chord suffixes.
func Suffixes() []string {
	res := make([]string, len(qualities))
	for i, q := range qualities {
		res[i] = q.Suffix
	}
	return res
}

type Chord struct {
	root    note.NoteName
	quality Quality
	key     key.Key
	notes   []note.NoteName
	pitches []pitch.Pitch
}

// FromName builds a chord such as "Am7" or "B♭ minor". When k is nil the
// chord is spelled in the root's own major or minor key, otherwise the root
// must be a note of k. The quality fixes the pitches and k only picks their
// letters, so D in C major is D F♯ A rather than D F A.
func FromName(text string, k *key.Key) (Chord, error) {
	r, rest, err := note.ParsePrefix(text)
	if err != nil {
		return Chord{}, err
	}
	q, err := ParseQuality(rest)
	if err != nil {
		return Chord{}, err
	}
	return New(r, q, k)
}

func MustFromName(text string, k *key.Key) Chord {
	c, err := FromName(text, k)
	if err != nil {
		panic(err)
	}
	return c
}

// New spells each tone by walking the pitch table up from the root and
// taking the spelling whose letter sits at the tone's place in the key.
func New(r note.NoteName, q Quality, k *key.Key) (Chord, error) {
	var resolved key.Key
	if k == nil {
		own, err := key.New(r, q.Key)
		if err != nil {
			return Chord{}, err
		}
		resolved = own
	} else {
		resolved = *k
	}

	degree := resolved.Scale().DegreeOf(r)
	if degree == 0 {
		return Chord{}, fmt.Errorf("%w: %v is not in %v", ErrRootNotInKey, r, resolved.Name())
	}
	letters := resolved.Scale().Rotate(degree)

	base, err := pitch.FrequencyOf(r, constants.ReferenceOctave)
	if err != nil {
		return Chord{}, err
	}

	notes := make([]note.NoteName, 0, len(q.Tones))
	pitches := make([]pitch.Pitch, 0, len(q.Tones))
	for _, t := range q.Tones {
		p, err := interval.Up(base, t.Semitones)
		if err != nil {
			return Chord{}, err
		}
		letter := letters[t.LetterSpan%len(letters)].Letter()
		n, err := pitch.Spell(p, letter)
		var unspellable *pitch.NoSpellingError
		if errors.As(err, &unspellable) {
			return Chord{}, &InvalidChordError{
				Root:       r,
				Quality:    q.Suffix,
				Letter:     letter,
				Candidates: unspellable.Candidates,
			}
		}
		if err != nil {
			return Chord{}, fmt.Errorf("%v%s: %w", r, q.Suffix, err)
		}
		notes = append(notes, n)
		pitches = append(pitches, p)
	}

	return Chord{root: r, quality: q, key: resolved, notes: notes, pitches: pitches}, nil
}

// Name is the canonical name, e.g. "Am" for "A minor".
func (c Chord) Name() string {
	return c.root.String() + c.quality.Suffix
}

func (c Chord) Root() note.NoteName { return c.root }
func (c Chord) Quality() Quality    { return c.quality }
func (c Chord) Key() key.Key        { return c.key }

func (c Chord) Notes() []note.NoteName {
	res := make([]note.NoteName, len(c.notes))
	copy(res, c.notes)
	return res
}

// Pitches are the ascending pitches of the tones from the root in the
// reference octave.
func (c Chord) Pitches() []pitch.Pitch {
	res := make([]pitch.Pitch, len(c.pitches))
	copy(res, c.pitches)
	return res
}

func (c Chord) String() string {
	return c.Name() + " (" + strings.Join(note.Strings(c.notes), " ") + ")"
}
