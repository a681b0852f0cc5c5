package scale

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsphweid/diatonic/interval"
	"github.com/jsphweid/diatonic/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(9, Default.Len())
	assert.Equal([]string{
		"Aeolian", "Dorian", "Ionian", "Locrian", "Lydian", "Major", "Minor", "Mixolydian", "Phrygian",
	}, Default.Names())

	for _, name := range []string{"Dorian", "dorian", "DORIAN", "  dorian "} {
		p, err := Default.ByName(name)
		require.NoError(t, err)
		assert.True(p.Equal(Dorian), name)
	}
}

func TestLookupByStepsPrefersMajorAndMinor(t *testing.T) {
	p, err := Default.BySteps(Ionian.Intervals)
	require.NoError(t, err)
	assert.Equal(t, "Major", p.Name)

	p, err = Default.BySteps(Aeolian.Intervals)
	require.NoError(t, err)
	assert.Equal(t, "Minor", p.Name)

	p, err = Default.BySteps(Lydian.Intervals)
	require.NoError(t, err)
	assert.Equal(t, "Lydian", p.Name)

	_, err = Default.BySteps([]interval.Interval{3, 3, 3, 3})
	var invalid *InvalidScaleError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "3-3-3-3", invalid.Input)
}

func TestRegister(t *testing.T) {
	cases := []struct {
		name    string
		pattern Pattern
		valid   bool
	}{
		{"new pattern", Pattern{"Whole Tone", []interval.Interval{2, 2, 2, 2, 2, 2}}, true},
		{"duplicate name", Pattern{"major", []interval.Interval{3, 4, 5}}, false},
		{"duplicate steps", Pattern{"Happy", Major.Intervals}, false},
		{"no name", Pattern{" ", []interval.Interval{1}}, false},
		{"no steps", Pattern{"Empty", nil}, false},
		{"zero step", Pattern{"Stuck", []interval.Interval{2, 0, 10}}, false},
		{"negative step", Pattern{"Backwards", []interval.Interval{2, -1, 11}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := NewBuilder().Register(c.pattern)
			if c.valid {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidScaleError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, c.pattern.Name, invalid.Input)
		})
	}
}

func TestBuildFreezes(t *testing.T) {
	b := NewBuilder()
	before := b.Build()

	steps := []interval.Interval{2, 2, 2, 2, 2, 2}
	require.NoError(t, b.Register(Pattern{"Whole Tone", steps}))
	steps[0] = 7
	after := b.Build()

	_, err := before.ByName("Whole Tone")
	assert.Error(t, err)

	p, err := after.ByName("whole tone")
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{2, 2, 2, 2, 2, 2}, p.Intervals)
	assert.Equal(t, 10, after.Len())
	assert.Equal(t, 9, Default.Len())
}

func TestLoadPatterns(t *testing.T) {
	doc := `
patterns:
  - name: Harmonic Minor
    intervals: [2, 1, 2, 2, 1, 3, 1]
  - name: Melodic Minor
    intervals: [2, 1, 2, 2, 2, 2, 1]
`
	patterns, err := LoadPatterns(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "Harmonic Minor", patterns[0].Name)
	assert.True(t, patterns[1].IsDiatonic())

	b := NewBuilder()
	require.NoError(t, b.Load(strings.NewReader(doc)))
	s, err := FromName(b.Build(), note.C, "Melodic Minor")
	require.NoError(t, err)
	assert.Equal(t, "C D E♭ F G A B", s.String())
}

func TestLoadPatternsRejects(t *testing.T) {
	patterns, err := LoadPatterns(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, patterns)

	_, err = LoadPatterns(strings.NewReader("patterns:\n  - name: Odd\n    steps: [1]\n"))
	assert.Error(t, err)

	err = NewBuilder().Load(strings.NewReader("patterns:\n  - name: Dorian\n    intervals: [1, 11]\n"))
	var invalid *InvalidScaleError
	assert.True(t, errors.As(err, &invalid))
}

func TestPatternPredicates(t *testing.T) {
	assert := assert.New(t)
	for _, m := range Modes() {
		assert.True(m.IsMode(), m.Name)
		assert.True(m.IsDiatonic(), m.Name)
	}
	assert.False(Major.IsMode())
	assert.False(Minor.IsMode())
	assert.False(Pattern{"Dorian", Major.Intervals}.IsMode())
	assert.False(Pattern{"Pentatonic", []interval.Interval{2, 2, 3, 2, 3}}.IsDiatonic())
	assert.Equal(7, Major.Len())
	assert.Equal("Major", Major.String())
}
