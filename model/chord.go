package model

// Keys are MIDI key numbers.
type Keys = []uint8

// ReducedEvent is a note on or off stripped of everything but its key and
// when it happened.
type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// Sonority is the set of keys held at one moment of a MIDI file.
type Sonority struct {
	// microseconds from the start of the file
	Offset int64
	Keys   Keys
}

// SpelledSonority names each key of a Sonority with a note of a key.
type SpelledSonority struct {
	Offset int64    `json:"offset"`
	Keys   Keys     `json:"keys"`
	Notes  []string `json:"notes"`
}
