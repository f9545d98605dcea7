package main

import (
	"fmt"
	"log/slog"

	driver "github.com/minikomi/rtmididrv"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/minikomi/chromakey/cmd"
	"github.com/minikomi/chromakey/internal/keyboard"
	"github.com/minikomi/chromakey/internal/midiout"
)

var winTitle string = "🎹"
var winWidth, winHeight int32 = 600, 80

const fontSize = 12

func newPlayCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "play",
		Short: "Play the computer keyboard through a MIDI out port",
		Long: `Open a window and play notes with the home row (a s d f g h j k l)
and the row above it (w e t y u o). Everything played is transposed by the
configured interval.

  ,  .   octave down / up
  [  ]   transpose down / up by a semitone`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, err := cmd.LoadSettings()
			if err != nil {
				return err
			}
			cmd.ConfigureLogger("", false)
			return run(settings)
		},
	}
	cmd.BindPlayFlags(c)
	return c
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List MIDI in and out ports",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			drv, err := driver.New()
			if err != nil {
				return fmt.Errorf("open midi driver: %w", err)
			}
			defer drv.Close()

			ins, err := drv.Ins()
			if err != nil {
				return err
			}
			outs, err := drv.Outs()
			if err != nil {
				return err
			}
			midiout.PrintPorts(c.OutOrStdout(), ins, outs)
			return nil
		},
	}
}

func run(settings cmd.Settings) error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	var font *ttf.Font
	if settings.Font != "" {
		if err := ttf.Init(); err != nil {
			return fmt.Errorf("init ttf: %w", err)
		}
		defer ttf.Quit()

		font, err = ttf.OpenFont(settings.Font, fontSize)
		if err != nil {
			return fmt.Errorf("open font %s: %w", settings.Font, err)
		}
		defer font.Close()
	}

	// midi
	drv, err := driver.New()
	if err != nil {
		return fmt.Errorf("open midi driver: %w", err)
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	if settings.Port < 0 || settings.Port >= len(outs) {
		return fmt.Errorf("no MIDI out port %d (%d available)", settings.Port, len(outs))
	}

	out := outs[settings.Port]
	if err := out.Open(); err != nil {
		return fmt.Errorf("open port %s: %w", out, err)
	}
	defer out.Close()
	slog.Info("midi out", "port", out.String(), "channel", settings.Channel)

	wr := midiout.WriterTo(out, settings.Channel)
	defer func() {
		if err := wr.AllNotesOff(); err != nil {
			slog.Warn("release notes", "error", err)
		}
	}()

	kb := keyboard.New(settings.Octave, settings.Shift)
	slog.Info("keyboard", "octave", kb.Octave, "shift", kb.Shift.String())

	Draw(renderer, font, kb)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.KeyboardEvent:
				if handleKeyEvent(ev, kb, wr, settings.Velocity) {
					Draw(renderer, font, kb)
				}
			case *sdl.QuitEvent:
				slog.Info("quit")
				running = false
			}
		}
		sdl.Delay(8)
	}
	return nil
}

func main() {
	cmd.AddCommand(newPlayCmd(), newListCmd())
	cmd.Execute()
}
