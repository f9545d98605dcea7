package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/note"
	"github.com/minikomi/chromakey/internal/pitch"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

type intervalRow struct {
	Semitones int    `yaml:"semitones"`
	Short     string `yaml:"short"`
	Name      string `yaml:"name"`
}

type pitchRow struct {
	Index  int    `yaml:"index"`
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Key    int    `yaml:"key"`
}

func newIntervalsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "List the intervals within an octave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ivs := interval.All()
			rows := make([]intervalRow, 0, len(ivs))
			for _, iv := range ivs {
				rows = append(rows, intervalRow{Semitones: iv.Semitones(), Short: iv.String(), Name: iv.Name()})
			}

			return render(cmd.OutOrStdout(), format, rows,
				[]string{"Semitones", "Short", "Name"},
				func(r intervalRow) []string {
					return []string{strconv.Itoa(r.Semitones), r.Short, r.Name}
				})
		},
	}

	cmd.Flags().StringVarP(&format, formatFlagName, "f", formatTable, "output format: table or yaml")

	return cmd
}

func newPitchesCmd() *cobra.Command {
	var format string
	var octave int

	cmd := &cobra.Command{
		Use:   "pitches",
		Short: "List the pitch ring used for transposition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([]pitchRow, 0, len(pitch.Pitches))
			for i, p := range pitch.Pitches {
				row := pitchRow{Index: i, Name: p.String(), Symbol: p.Symbol(), Key: -1}
				if k, err := note.New(p, octave).Key(); err == nil {
					row.Key = int(k)
				}
				rows = append(rows, row)
			}

			return render(cmd.OutOrStdout(), format, rows,
				[]string{"Index", "Name", "Symbol", "Key"},
				func(r pitchRow) []string {
					key := "-"
					if r.Key >= 0 {
						key = strconv.Itoa(r.Key)
					}
					return []string{strconv.Itoa(r.Index), r.Name, r.Symbol, key}
				})
		},
	}

	cmd.Flags().StringVarP(&format, formatFlagName, "f", formatTable, "output format: table or yaml")
	cmd.Flags().IntVarP(&octave, "octave", "o", 4, "octave used for the MIDI key column")

	return cmd
}

func render[T any](w io.Writer, format string, rows []T, header []string, cells func(T) []string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader(header)
		for _, r := range rows {
			table.Append(cells(r))
		}
		table.Render()
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
