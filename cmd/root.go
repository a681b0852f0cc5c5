package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/diatonic/constants"
	"github.com/jsphweid/diatonic/scale"
	"github.com/spf13/cobra"
)

var (
	patternsPath string
	asJSON       bool

	// registry is replaced before any command runs when extra patterns are
	// configured.
	registry = scale.Default
)

var rootCmd = &cobra.Command{
	Use:          "diatonic",
	Short:        "Spells scales, keys, modes and chords",
	Long:         `Spells scales, keys, modes and chords so that every letter is used once and enharmonics land on the table's frequencies.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnv(); err != nil {
			return err
		}
		r, err := LoadRegistry(patternsPath)
		if err != nil {
			return err
		}
		registry = r
		return nil
	},
}

// loadEnv reads .env, or the given files, into the environment. A missing
// file is fine, a malformed one is not.
func loadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load env: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&patternsPath, "patterns", "", "YAML file of extra scale patterns (default $PATTERNS_PATH)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

// LoadRegistry returns the default registry extended with the patterns in
// path, or in PATTERNS_PATH when path is empty.
func LoadRegistry(path string) (*scale.Registry, error) {
	if path == "" {
		path = constants.GetPatternsPath()
	}
	if path == "" {
		return scale.Default, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open patterns: %w", err)
	}
	defer f.Close()

	b := scale.NewBuilder()
	if err := b.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b.Build(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
