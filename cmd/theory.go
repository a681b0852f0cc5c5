package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/diatonic/chord"
	"github.com/jsphweid/diatonic/key"
	"github.com/jsphweid/diatonic/note"
	"github.com/jsphweid/diatonic/scale"
	"github.com/spf13/cobra"
)

var (
	showModes bool
	chordKey  string
)

func init() {
	keyCmd.Flags().BoolVar(&showModes, "modes", false, "also print the mode on every degree")
	chordCmd.Flags().StringVar(&chordKey, "key", "", "spell the chord in this key, e.g. \"C\" or \"F# minor\"")

	rootCmd.AddCommand(scaleCmd, keyCmd, modeCmd, chordCmd, pitchCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> <pattern>",
	Short: "Spells a scale",
	Long:  `Spells a scale from a tonic and a registered pattern name, e.g. "scale Eb dorian".`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scale.FromName(registry, note.Text(args[0]), strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), scaleResponse(s))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", s.Name(), s)
		return nil
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <name>",
	Short: "Spells a major or minor key",
	Long:  `Spells a key named like "C", "Am" or "F# minor".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := key.FromName(strings.Join(args, " "))
		if err != nil {
			return err
		}

		var modes []scale.Mode
		if showModes {
			modes, err = k.Modes()
			if err != nil {
				return err
			}
		}

		if asJSON {
			if showModes {
				return printJSON(cmd.OutOrStdout(), modesResponse(k, modes))
			}
			return printJSON(cmd.OutOrStdout(), keyResponse(k))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k.Name(), k.Scale())
		for _, m := range modes {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", m.Name(), m)
		}
		return nil
	},
}

var modeCmd = &cobra.Command{
	Use:   "mode <tonic> <mode>",
	Short: "Spells one of the seven modes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := scale.ModeFromName(registry, note.Text(args[0]), args[1])
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), scaleResponse(m.Scale))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", m.Name(), m)
		return nil
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord <name>",
	Short: "Spells a chord",
	Long:  `Spells a chord such as "Am7", "Bb minor" or "G11", in the root's own key or the key given by --key.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildChord(strings.Join(args, " "), chordKey)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), chordResponse(c))
		}
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <note> <octave>",
	Short: "Looks a note up in the pitch table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		o, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("octave %q is not a number", args[1])
		}
		res, err := pitchResponse(n, note.Octave(o))
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%d %.2f Hz (MIDI %d): %s\n",
			res.Note, res.Octave, res.Frequency, res.MidiKey, strings.Join(res.Spellings, " "))
		return nil
	},
}

// buildChord spells name in keyName, or in the root's own key when keyName
// is empty.
func buildChord(name, keyName string) (chord.Chord, error) {
	if keyName == "" {
		return chord.FromName(name, nil)
	}
	k, err := key.FromName(keyName)
	if err != nil {
		return chord.Chord{}, err
	}
	return chord.FromName(name, &k)
}
