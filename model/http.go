package model

type ScaleResponse struct {
	Name    string    `json:"name"`
	Tonic   string    `json:"tonic"`
	Pattern string    `json:"pattern"`
	Notes   []string  `json:"notes"`
	Pitches []float64 `json:"pitches"`
}

type KeyResponse struct {
	Name    string   `json:"name"`
	Tonic   string   `json:"tonic"`
	Quality string   `json:"quality"`
	Notes   []string `json:"notes"`
}

type ModesResponse struct {
	Key   string          `json:"key"`
	Modes []ScaleResponse `json:"modes"`
}

type ChordResponse struct {
	Name    string    `json:"name"`
	Root    string    `json:"root"`
	Quality string    `json:"quality"`
	Key     string    `json:"key"`
	Notes   []string  `json:"notes"`
	Pitches []float64 `json:"pitches"`
}

type PitchResponse struct {
	Note      string   `json:"note"`
	Octave    int      `json:"octave"`
	Frequency float64  `json:"frequency"`
	MidiKey   uint8    `json:"midi_key"`
	Spellings []string `json:"spellings"`
}

type ErrorResponse struct {
	Error     string `json:"detail"`
	RequestID string `json:"request_id"`
}
