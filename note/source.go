package note

// Source is anything a note name can be taken from at an API boundary: a
// NoteName or a Text to be parsed. It is closed to this package.
type Source interface {
	noteName() (NoteName, error)
}

// Text is a note name still in textual form.
type Text string

func (t Text) noteName() (NoteName, error) {
	return Parse(string(t))
}

func (n NoteName) noteName() (NoteName, error) {
	if !n.Valid() {
		return NoteName{}, &InvalidNoteError{Input: n.String()}
	}
	return n, nil
}

// From normalizes a Source into a concrete NoteName.
func From(s Source) (NoteName, error) {
	if s == nil {
		return NoteName{}, &InvalidNoteError{}
	}
	return s.noteName()
}
