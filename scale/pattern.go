package scale

import (
	"strconv"
	"strings"

	"github.com/jsphweid/diatonic/interval"
)

const (
	w = interval.WholeStep
	h = interval.HalfStep
)

// Pattern is a named run of steps from the tonic. A diatonic pattern has
// seven steps adding up to an octave.
type Pattern struct {
	Name      string              `yaml:"name"`
	Intervals []interval.Interval `yaml:"intervals"`
}

var (
	Major = Pattern{"Major", []interval.Interval{w, w, h, w, w, w, h}}
	Minor = Pattern{"Minor", []interval.Interval{w, h, w, w, h, w, w}}

	Ionian     = Pattern{"Ionian", []interval.Interval{w, w, h, w, w, w, h}}
	Dorian     = Pattern{"Dorian", []interval.Interval{w, h, w, w, w, h, w}}
	Phrygian   = Pattern{"Phrygian", []interval.Interval{h, w, w, w, h, w, w}}
	Lydian     = Pattern{"Lydian", []interval.Interval{w, w, w, h, w, w, h}}
	Mixolydian = Pattern{"Mixolydian", []interval.Interval{w, w, h, w, w, h, w}}
	Aeolian    = Pattern{"Aeolian", []interval.Interval{w, h, w, w, h, w, w}}
	Locrian    = Pattern{"Locrian", []interval.Interval{h, w, w, h, w, w, w}}
)

// Modes lists the seven modal patterns in the order they appear when a major
// scale is started on each of its degrees.
func Modes() []Pattern {
	return []Pattern{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}
}

func canonical() []Pattern {
	return append([]Pattern{Major, Minor}, Modes()...)
}

func (p Pattern) String() string {
	return p.Name
}

// Steps returns a copy of the intervals.
func (p Pattern) Steps() []interval.Interval {
	res := make([]interval.Interval, len(p.Intervals))
	copy(res, p.Intervals)
	return res
}

func (p Pattern) Len() int {
	return len(p.Intervals)
}

func (p Pattern) IsDiatonic() bool {
	return len(p.Intervals) == 7 && interval.Sum(p.Intervals) == interval.Octave
}

// IsMode reports whether p is one of the seven modal patterns, by name and
// by steps.
func (p Pattern) IsMode() bool {
	for _, m := range Modes() {
		if p.Equal(m) {
			return true
		}
	}
	return false
}

func (p Pattern) Equal(other Pattern) bool {
	return p.Name == other.Name && sameSteps(p.Intervals, other.Intervals)
}

func sameSteps(a, b []interval.Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// stepsKey renders steps as "2-2-1-2-2-2-1".
func stepsKey(steps []interval.Interval) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, "-")
}

// normalizeName folds case and spacing so "harmonic  MINOR" finds
// "Harmonic Minor".
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
