package pitch

import (
	"fmt"
	"math"

	"github.com/jsphweid/diatonic/note"
)

// Pitch is a frequency held in hundredths of a hertz, so values drawn from
// the table compare exactly.
type Pitch uint32

func FromHz(hz float64) Pitch {
	return Pitch(math.Round(hz * 100))
}

func (p Pitch) Hz() float64 {
	return float64(p) / 100
}

func (p Pitch) String() string {
	return fmt.Sprintf("%d.%02d", p/100, p%100)
}

// Spelling is one name for a tabulated pitch: a note name in an octave.
type Spelling struct {
	Note   note.NoteName
	Octave note.Octave
}

func (s Spelling) String() string {
	return fmt.Sprintf("%v%d", s.Note, s.Octave)
}

// Entry is one row of a Table.
type Entry struct {
	Pitch     Pitch
	Spellings []Spelling
}

// Row is the static form of an Entry: slash separated ASCII spellings with
// trailing octave numbers, e.g. "C#4/Db4", and the frequency in centihertz.
type Row struct {
	Spellings string
	Pitch     Pitch
}
