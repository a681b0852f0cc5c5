//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/jsphweid/diatonic/cmd"
	"github.com/jsphweid/diatonic/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	registry, err := cmd.LoadRegistry("")
	if err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(cmd.NewServer(registry).Router())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func getJSON(t *testing.T, path string, v any) int {
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
	return resp.StatusCode
}

func TestKeyOfCSharpE2E(t *testing.T) {
	var res model.KeyResponse
	status := getJSON(t, "/keys/"+url.PathEscape("C#"), &res)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, status)
	assert.Equal([]string{"C♯", "D♯", "E♯", "F♯", "G♯", "A♯", "B♯"}, res.Notes)
}

func TestDorianModeOfCE2E(t *testing.T) {
	var res model.ModesResponse
	status := getJSON(t, "/keys/C/modes", &res)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, status)
	require.Len(t, res.Modes, 7)
	assert.Equal([]string{"D", "E", "F", "G", "A", "B", "C"}, res.Modes[1].Notes)
}

func TestChordInKeyE2E(t *testing.T) {
	var res model.ChordResponse
	status := getJSON(t, "/chords/Dm7?key=C", &res)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, status)
	assert.Equal([]string{"D", "F", "A", "C"}, res.Notes)
	assert.Equal([]float64{293.66, 349.23, 440, 523.25}, res.Pitches)
}

func TestUnspellableKeyE2E(t *testing.T) {
	var res model.ErrorResponse
	status := getJSON(t, "/scales/"+url.PathEscape("G##")+"/major", &res)

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, status)
	assert.Contains(res.Error, "no B among")
	assert.NotEmpty(res.RequestID)
}
