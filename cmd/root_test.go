package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	asJSON, showModes = false, false
	chordKey, patternsPath, spellKey, exportOut, exportKey = "", "", "C", "", ""
	exportChord = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "Eb", "dorian")
	require.NoError(t, err)
	assert.Equal(t, "E♭ Dorian: E♭ F G♭ A♭ B♭ C D♭\n", out)
}

func TestKeyCommand(t *testing.T) {
	out, err := run(t, "key", "C#")
	require.NoError(t, err)
	assert.Equal(t, "C♯: C♯ D♯ E♯ F♯ G♯ A♯ B♯\n", out)

	out, err = run(t, "key", "A", "minor", "--modes")
	require.NoError(t, err)
	assert.Contains(t, out, "Am: A B C D E F G\n")
	assert.Contains(t, out, "  B Locrian: B C D E F G A\n")

	_, err = run(t, "key", "A", "foo")
	var invalid *key.InvalidQualityError
	assert.True(t, errors.As(err, &invalid))
}

func TestModeCommand(t *testing.T) {
	out, err := run(t, "mode", "C", "dorian")
	require.NoError(t, err)
	assert.Equal(t, "C Dorian: C D E♭ F G A B♭\n", out)

	_, err = run(t, "mode", "C", "major")
	var invalid *scale.InvalidModeError
	assert.True(t, errors.As(err, &invalid))
}

func TestChordCommand(t *testing.T) {
	out, err := run(t, "chord", "Bbm11")
	require.NoError(t, err)
	assert.Equal(t, "B♭m11 (B♭ D♭ F A♭ C E♭)\n", out)

	out, err = run(t, "chord", "D", "--key", "C")
	require.NoError(t, err)
	assert.Equal(t, "D (D F♯ A)\n", out)
}

func TestPitchCommand(t *testing.T) {
	out, err := run(t, "pitch", "C", "4")
	require.NoError(t, err)
	assert.Equal(t, "C4 261.63 Hz (MIDI 60): B♯4 C4 D♭♭4\n", out)

	out, err = run(t, "--json", "pitch", "A", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"midi_key": 69`)
}

func TestExportThenSpell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "am7.mid")

	_, err := run(t, "export", "Am7", "--chord", "--out", path)
	require.NoError(t, err)

	out, err := run(t, "spell", dir, "--key", "Am")
	require.NoError(t, err)
	assert.Contains(t, out, "A C E G")

	scalePath := filepath.Join(dir, "d.mid")
	_, err = run(t, "export", "D", "--out", scalePath)
	require.NoError(t, err)

	out, err = run(t, "spell", scalePath, "--key", "D")
	require.NoError(t, err)
	assert.Contains(t, out, "F♯")
	assert.Contains(t, out, "C♯")
}

func TestLoadRegistry(t *testing.T) {
	r, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Equal(t, scale.Default, r)

	path := filepath.Join(t.TempDir(), "patterns.yaml")
	doc := "patterns:\n  - name: Harmonic Minor\n    intervals: [2, 1, 2, 2, 1, 3, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r, err = LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Len())

	out, err := run(t, "--patterns", path, "scale", "A", "harmonic", "minor")
	require.NoError(t, err)
	assert.Equal(t, "A Harmonic Minor: A B C D E F G♯\n", out)

	_, err = LoadRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, loadEnv(filepath.Join(dir, "missing.env")))

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("DIATONIC_TEST_ENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DIATONIC_TEST_ENV") })
	require.NoError(t, loadEnv(good))
	assert.Equal(t, "loaded", os.Getenv("DIATONIC_TEST_ENV"))

	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("NOT-A-KEY=1\n"), 0o644))
	assert.Error(t, loadEnv(bad))
}
