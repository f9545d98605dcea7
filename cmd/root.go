// Package cmd provides the root command and CLI setup for chromakey.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	octaveFlagName   = "octave"
	velocityFlagName = "velocity"
	channelFlagName  = "channel"
	portFlagName     = "port"
	intervalFlagName = "interval"
	fontFlagName     = "font"
	logFileFlagName  = "log-file"
	verboseFlagName  = "verbose"
	formatFlagName   = "format"
)

const rootLongDescription = `Chromakey plays your computer keyboard as a MIDI keyboard and transposes
what you play by a fixed interval. It also answers small pitch and interval
questions on the command line.

Pitches are written as a letter A-G with an optional accidental:
b or ♭ for flat, # or ♯ for sharp. Transposed pitches are always spelled
from the ring A Bb B C Db D Eb E F Gb G Ab.`

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "chromakey",
		Short:        "Transposing MIDI keyboard and pitch calculator",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTransposeCmd())
	cmd.AddCommand(newIntervalsCmd())
	cmd.AddCommand(newPitchesCmd())

	return cmd
}

// BindPlayFlags registers the flags shared by commands that talk to a MIDI
// port and binds them to their config keys.
func BindPlayFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.Int(octaveFlagName, viper.GetInt(octaveKey), "starting keyboard octave (2-9)")
	bindFlagToConfig(flags.Lookup(octaveFlagName), octaveKey)

	flags.Int(velocityFlagName, viper.GetInt(velocityKey), "note on velocity (1-127)")
	bindFlagToConfig(flags.Lookup(velocityFlagName), velocityKey)

	flags.Int(channelFlagName, viper.GetInt(channelKey), "MIDI channel (0-15)")
	bindFlagToConfig(flags.Lookup(channelFlagName), channelKey)

	flags.IntP(portFlagName, "p", viper.GetInt(portKey), "MIDI out port number")
	bindFlagToConfig(flags.Lookup(portFlagName), portKey)

	flags.StringP(intervalFlagName, "i", viper.GetString(intervalKey), "transpose by interval name (P5) or semitones (7)")
	bindFlagToConfig(flags.Lookup(intervalFlagName), intervalKey)

	flags.String(fontFlagName, viper.GetString(fontKey), "TTF font for on-screen labels")
	bindFlagToConfig(flags.Lookup(fontFlagName), fontKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// AddCommand attaches commands built outside this package to the root command.
func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
