package note

import "fmt"

// InvalidNoteError is returned when text or parts do not form a note name:
// a letter outside A-G or an unrecognized accidental.
type InvalidNoteError struct {
	Input string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("%q is not a valid note", e.Input)
}
