package cmd

import (
	"github.com/jsphweid/diatonic/chord"
	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/midi"
	"github.com/jsphweid/diatonic/model"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/pitch"
	"github.com/jsphweid/diatonic/scale"
)

func hz(pitches []pitch.Pitch) []float64 {
	res := make([]float64, len(pitches))
	for i, p := range pitches {
		res[i] = p.Hz()
	}
	return res
}

func scaleResponse(s scale.Scale) model.ScaleResponse {
	return model.ScaleResponse{
		Name:    s.Name(),
		Tonic:   s.Tonic().String(),
		Pattern: s.Pattern().Name,
		Notes:   note.Strings(s.Notes()),
		Pitches: hz(s.Pitches()),
	}
}

func keyResponse(k key.Key) model.KeyResponse {
	return model.KeyResponse{
		Name:    k.Name(),
		Tonic:   k.Tonic().String(),
		Quality: k.Quality().String(),
		Notes:   note.Strings(k.Notes()),
	}
}

func modesResponse(k key.Key, modes []scale.Mode) model.ModesResponse {
	res := model.ModesResponse{Key: k.Name()}
	for _, m := range modes {
		res.Modes = append(res.Modes, scaleResponse(m.Scale))
	}
	return res
}

func chordResponse(c chord.Chord) model.ChordResponse {
	return model.ChordResponse{
		Name:    c.Name(),
		Root:    c.Root().String(),
		Quality: c.Quality().Suffix,
		Key:     c.Key().Name(),
		Notes:   note.Strings(c.Notes()),
		Pitches: hz(c.Pitches()),
	}
}

func pitchResponse(n note.NoteName, o note.Octave) (model.PitchResponse, error) {
	p, err := pitch.FrequencyOf(n, o)
	if err != nil {
		return model.PitchResponse{}, err
	}
	spellings, err := pitch.SpellingsOf(p)
	if err != nil {
		return model.PitchResponse{}, err
	}
	midiKey, err := midi.KeyNumber(p)
	if err != nil {
		return model.PitchResponse{}, err
	}

	res := model.PitchResponse{
		Note:      n.String(),
		Octave:    int(o),
		Frequency: p.Hz(),
		MidiKey:   midiKey,
	}
	for _, s := range spellings {
		res.Spellings = append(res.Spellings, s.String())
	}
	return res, nil
}
