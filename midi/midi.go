package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/diatonic/constants"
	"github.com/jsphweid/diatonic/model"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
	"github.com/jsphweid/diatonic/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// keyOffset is the MIDI key number of C0, the first row of the pitch table.
const keyOffset = 12

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// KeyNumber returns the MIDI key number of a table pitch; middle C is 60.
func KeyNumber(p pitch.Pitch) (uint8, error) {
	i, ok := pitch.Standard.Index(p)
	if !ok {
		return 0, fmt.Errorf("%w: %v", pitch.ErrUnknownPitch, p)
	}
	return uint8(i + keyOffset), nil
}

func PitchOf(key uint8) (pitch.Pitch, error) {
	return pitch.Standard.At(int(key) - keyOffset)
}

// Sonorities groups the note events of every track into the sets of keys
// held down together, one per moment the set changes.
func Sonorities(s *smf.SMF) []model.Sonority {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier events first, and note offs before note ons at the same offset
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	byOffset := make(map[int64]model.Keys)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		byOffset[evt.Offset] = util.SortedKeys(pressed)
	}

	var res []model.Sonority
	for _, offset := range util.SortedKeys(byOffset) {
		if keys := byOffset[offset]; len(keys) > 0 {
			res = append(res, model.Sonority{Offset: offset, Keys: keys})
		}
	}
	return res
}

// Spell names every key of every sonority with one of the candidate notes,
// typically the notes of a key.
func Spell(sonorities []model.Sonority, candidates []note.NoteName) ([]model.SpelledSonority, error) {
	res := make([]model.SpelledSonority, 0, len(sonorities))
	for _, s := range sonorities {
		spelled := model.SpelledSonority{Offset: s.Offset, Keys: s.Keys}
		for _, key := range s.Keys {
			p, err := PitchOf(key)
			if err != nil {
				return nil, fmt.Errorf("key %d: %w", key, err)
			}
			n, err := pitch.Resolve(p, candidates)
			if err != nil {
				return nil, fmt.Errorf("key %d at %dus: %w", key, s.Offset, err)
			}
			spelled.Notes = append(spelled.Notes, n.String())
		}
		res = append(res, spelled)
	}
	return res, nil
}

// WriteNotes writes a single track file that plays each group of pitches
// together for one quarter note, one group after the other.
func WriteNotes(w io.Writer, groups [][]pitch.Pitch) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	for _, group := range groups {
		keys := make([]uint8, 0, len(group))
		for _, p := range group {
			key, err := KeyNumber(p)
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
		for _, key := range keys {
			tr.Add(0, midi.NoteOn(0, key, constants.DefaultVelocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = constants.TicksPerQuarter
			}
			tr.Add(delta, midi.NoteOff(0, key))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

// Sequence turns ascending pitches into one group per pitch, for playing a
// scale note by note.
func Sequence(pitches []pitch.Pitch) [][]pitch.Pitch {
	res := make([][]pitch.Pitch, len(pitches))
	for i, p := range pitches {
		res[i] = []pitch.Pitch{p}
	}
	return res
}
