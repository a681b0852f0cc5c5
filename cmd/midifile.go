package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/midi"
	"github.com/jsphweid/diatonic/pitch"
	"github.com/jsphweid/diatonic/util"
	"github.com/spf13/cobra"
)

var (
	spellKey    string
	maxFiles    int
	exportOut   string
	exportChord bool
	exportKey   string
)

func init() {
	spellCmd.Flags().StringVar(&spellKey, "key", "C", "name every MIDI key with a note of this key")
	spellCmd.Flags().IntVar(&maxFiles, "max", 0, "stop after this many files, 0 for all")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write")
	exportCmd.Flags().BoolVar(&exportChord, "chord", false, "treat the name as a chord and play its notes together")
	exportCmd.Flags().StringVar(&exportKey, "key", "", "key for --chord")
	exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(spellCmd, exportCmd)
}

var spellCmd = &cobra.Command{
	Use:   "spell <file-or-dir>",
	Short: "Names the notes of MIDI files in a key",
	Long:  `Reads every .mid file at the path, groups the keys held together and names each with a note of --key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := key.FromName(spellKey)
		if err != nil {
			return err
		}
		paths, err := util.GatherAllMidiPaths(args[0], maxFiles)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errors.New("no midi files found at " + args[0])
		}

		out := cmd.OutOrStdout()
		for _, path := range paths {
			s, err := midi.ReadMidiFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			spelled, err := midi.Spell(midi.Sonorities(s), k.Notes())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if asJSON {
				if err := printJSON(out, spelled); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(out, "%s in %s\n", path, k.Name())
			for _, sonority := range spelled {
				fmt.Fprintf(out, "  %8.3fs  %s\n", float64(sonority.Offset)/1e6, strings.Join(sonority.Notes, " "))
			}
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <key-or-chord>",
	Short: "Writes a key's scale or a chord to a MIDI file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		var groups [][]pitch.Pitch
		if exportChord {
			c, err := buildChord(name, exportKey)
			if err != nil {
				return err
			}
			groups = [][]pitch.Pitch{c.Pitches()}
		} else {
			k, err := key.FromName(name)
			if err != nil {
				return err
			}
			groups = midi.Sequence(k.Scale().Pitches())
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := midi.WriteNotes(f, groups); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return f.Close()
	},
}
