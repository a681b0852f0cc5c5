package interval

import (
	"fmt"

	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
	"github.com/jsphweid/diatonic/util"
)

// Interval is a distance in semitones.
type Interval int

const (
	HalfStep     Interval = 1
	WholeStep    Interval = 2
	MinorThird   Interval = 3
	MajorThird   Interval = 4
	PerfectFifth Interval = 7
	Octave       Interval = 12
)

const (
	MinorSeventh    = PerfectFifth + MinorThird
	MajorSeventh    = PerfectFifth + MajorThird
	MajorNinth      = Octave + WholeStep
	PerfectEleventh = Octave + PerfectFifth - WholeStep
)

var names = map[Interval]string{
	HalfStep:        "half step",
	WholeStep:       "whole step",
	MinorThird:      "minor third",
	MajorThird:      "major third",
	PerfectFifth:    "perfect fifth",
	MinorSeventh:    "minor seventh",
	MajorSeventh:    "major seventh",
	Octave:          "octave",
	MajorNinth:      "major ninth",
	PerfectEleventh: "perfect eleventh",
}

func (i Interval) String() string {
	if name, ok := names[i]; ok {
		return name
	}
	return fmt.Sprintf("%d semitones", int(i))
}

// Sum adds up a run of steps, e.g. the first k steps of a scale pattern.
func Sum(steps []Interval) Interval {
	return util.Sum(steps)
}

// Up walks i entries up the pitch table from p.
func Up(p pitch.Pitch, i Interval) (pitch.Pitch, error) {
	return pitch.Increase(p, int(i))
}

// Down walks i entries down the pitch table from p.
func Down(p pitch.Pitch, i Interval) (pitch.Pitch, error) {
	return pitch.Decrease(p, int(i))
}

// Transpose moves n by i semitones and names the result with the letter
// letterSpan steps away from n's letter. A major third up from G♯ spans two
// letters and lands on B♯, not C. Negative intervals and spans move down.
func Transpose(n note.NoteName, i Interval, letterSpan int) (note.NoteName, error) {
	from, err := pitch.FrequencyOf(n, referenceOctave(i))
	if err != nil {
		return note.NoteName{}, err
	}
	to, err := Up(from, i)
	if err != nil {
		return note.NoteName{}, err
	}
	target := n.Letter().Add(letterSpan)
	res, err := pitch.Spell(to, target)
	if err != nil {
		return note.NoteName{}, fmt.Errorf("transpose %v by %v: %w", n, i, err)
	}
	return res, nil
}

// referenceOctave anchors the walk so that transpositions of up to two
// octaves in either direction stay inside the table.
func referenceOctave(i Interval) note.Octave {
	switch {
	case i > Octave:
		return 3
	case i < -Octave:
		return 5
	}
	return 4
}
