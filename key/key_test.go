package key

import (
	"errors"
	"testing"

	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, names ...string) []note.NoteName {
	res := make([]note.NoteName, len(names))
	for i, n := range names {
		parsed, err := note.Parse(n)
		require.NoError(t, err)
		res[i] = parsed
	}
	return res
}

func TestParseQuality(t *testing.T) {
	cases := []struct {
		text     string
		expected Quality
	}{
		{"", Major},
		{"maj", Major},
		{"major", Major},
		{"Major", Major},
		{"M", Major},
		{"m", Minor},
		{"min", Minor},
		{"minor", Minor},
		{" MINOR ", Minor},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			q, err := ParseQuality(c.text)
			require.NoError(t, err)
			assert.Equal(t, c.expected, q)
		})
	}
}

func TestFromName(t *testing.T) {
	cases := []struct {
		name     string
		expected []string
		canon    string
	}{
		{"C", []string{"C", "D", "E", "F", "G", "A", "B"}, "C"},
		{"C#", []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}, "C♯"},
		{"C sharp", []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}, "C♯"},
		{"Db major", []string{"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"}, "D♭"},
		{"Am", []string{"A", "B", "C", "D", "E", "F", "G"}, "Am"},
		{"A minor", []string{"A", "B", "C", "D", "E", "F", "G"}, "Am"},
		{"F♯ minor", []string{"F#", "G#", "A", "B", "C#", "D", "E"}, "F♯m"},
		{"Fb minor", []string{"Fb", "Gb", "Abb", "Bbb", "Cb", "Dbb", "Ebb"}, "F♭m"},
		{"bbm", []string{"Bb", "C", "Db", "Eb", "F", "Gb", "Ab"}, "B♭m"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k, err := FromName(c.name)
			require.NoError(t, err)
			assert.Equal(t, parseAll(t, c.expected...), k.Notes())
			assert.Equal(t, c.canon, k.Name())
		})
	}
}

func TestFromNameInvalidQuality(t *testing.T) {
	for _, text := range []string{"A foo", "A 4000", "A major quack a doodle", "Cmaj7"} {
		_, err := FromName(text)
		var invalid *InvalidQualityError
		assert.True(t, errors.As(err, &invalid), text)
	}

	_, err := FromName("A foo")
	assert.Equal(t, `"foo" is not a valid quality`, err.Error())
}

func TestFromNameInvalidNote(t *testing.T) {
	for _, text := range []string{"", "H", "7"} {
		_, err := FromName(text)
		var invalid *note.InvalidNoteError
		assert.True(t, errors.As(err, &invalid), text)
	}

	_, err := FromName("G##")
	var invalid *scale.InvalidKeyError
	assert.True(t, errors.As(err, &invalid))
}

func TestEqual(t *testing.T) {
	assert := assert.New(t)
	assert.True(MustFromName("A minor").Equal(MustFromName("Am")))
	assert.True(MustFromName("C").Equal(MustFromName("c major")))
	assert.False(MustFromName("C").Equal(MustFromName("Cm")))
	assert.False(MustFromName("C#").Equal(MustFromName("Db")))
}

func TestKeyAccessors(t *testing.T) {
	k, err := New(note.Text("Eb"), Minor)
	require.NoError(t, err)

	assert.Equal(t, note.EFlat, k.Tonic())
	assert.Equal(t, Minor, k.Quality())
	assert.Equal(t, "minor", k.Quality().String())
	assert.Equal(t, "E♭m", k.String())
	assert.Equal(t, "E♭ Minor", k.Scale().Name())
}

func TestModes(t *testing.T) {
	modes, err := MustFromName("C").Modes()
	require.NoError(t, err)
	require.Len(t, modes, 7)

	expected := []struct {
		pattern scale.Pattern
		notes   string
	}{
		{scale.Ionian, "C D E F G A B"},
		{scale.Dorian, "D E F G A B C"},
		{scale.Phrygian, "E F G A B C D"},
		{scale.Lydian, "F G A B C D E"},
		{scale.Mixolydian, "G A B C D E F"},
		{scale.Aeolian, "A B C D E F G"},
		{scale.Locrian, "B C D E F G A"},
	}
	for i, e := range expected {
		assert.True(t, modes[i].Pattern().Equal(e.pattern), e.pattern.Name)
		assert.Equal(t, e.notes, modes[i].String())
	}
}

func TestMinorKeyModesStartAtAeolian(t *testing.T) {
	modes, err := MustFromName("Am").Modes()
	require.NoError(t, err)
	require.Len(t, modes, 7)

	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name()
	}
	assert.Equal(t, []string{
		"A Aeolian", "B Locrian", "C Ionian", "D Dorian", "E Phrygian", "F Lydian", "G Mixolydian",
	}, names)
}

func TestModeRotatesTheKey(t *testing.T) {
	k := MustFromName("C")
	dorian, err := k.Mode(scale.Dorian)
	require.NoError(t, err)
	assert.Equal(t, k.Scale().Rotate(2), dorian.Notes())

	ionian, err := k.Mode(scale.Ionian)
	require.NoError(t, err)
	assert.True(t, ionian.Equal(k.Scale()))

	cSharp := MustFromName("C#")
	lydian, err := cSharp.Mode(scale.Lydian)
	require.NoError(t, err)
	assert.Equal(t, parseAll(t, "F#", "G#", "A#", "B#", "C#", "D#", "E#"), lydian.Notes())

	_, err = k.Mode(scale.Major)
	var invalid *scale.InvalidModeError
	assert.True(t, errors.As(err, &invalid))
}

func TestModesOfDoubleFlatKey(t *testing.T) {
	modes, err := MustFromName("Fb minor").Modes()
	require.NoError(t, err)
	assert.Equal(t, "A♭♭ Ionian", modes[2].Name())
	assert.Equal(t, "A♭♭ B♭♭ C♭ D♭♭ E♭♭ F♭ G♭", modes[2].String())
}
