package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minikomi/chromakey/internal/note"
	"github.com/minikomi/chromakey/internal/pitch"
)

const transposeLongDescription = `Transpose a pitch up by an interval.

The interval is a short name (P1 m2 M2 m3 M3 P4 d5 P5 m6 M6 m7 M7 P8) or a
semitone count from 0 to 12. Without one, the configured interval is used.

  chromakey transpose G 3       # Bb
  chromakey transpose C P5      # G
  chromakey transpose B m2 -o 3 # C4 (60)`

func newTransposeCmd() *cobra.Command {
	var octave int
	var symbol bool

	cmd := &cobra.Command{
		Use:   "transpose PITCH [INTERVAL]",
		Short: "Transpose a pitch by an interval",
		Long:  transposeLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pitch.Parse(args[0])
			if err != nil {
				return err
			}

			name := viper.GetString(intervalKey)
			if len(args) == 2 {
				name = args[1]
			}
			iv, err := parseInterval(name)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("octave") {
				n, err := note.Transpose(note.New(p, octave), iv)
				if err != nil {
					return err
				}
				k, err := n.Key()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", n, k)
				return nil
			}

			got, err := pitch.Transpose(p, iv)
			if err != nil {
				return err
			}
			if symbol {
				fmt.Fprintln(cmd.OutOrStdout(), got.Symbol())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), got.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&octave, "octave", "o", 4, "treat PITCH as a note in this octave and print the MIDI key")
	cmd.Flags().BoolVar(&symbol, "symbol", false, "print accidentals as ♭ and ♯")

	return cmd
}
