package scale

import "github.com/jsphweid/diatonic/note"

// Mode is a scale built on one of the seven modal patterns.
type Mode struct {
	Scale
}

func NewMode(tonic note.Source, p Pattern) (Mode, error) {
	if !p.IsMode() {
		return Mode{}, &InvalidModeError{Pattern: p.Name}
	}
	s, err := Generate(tonic, p)
	if err != nil {
		return Mode{}, err
	}
	return Mode{Scale: s}, nil
}

// ModeFromName looks the pattern up in r before building the mode.
func ModeFromName(r *Registry, tonic note.Source, pattern string) (Mode, error) {
	p, err := r.ByName(pattern)
	if err != nil {
		return Mode{}, err
	}
	return NewMode(tonic, p)
}
