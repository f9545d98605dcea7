package main

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/minikomi/chromakey/internal/keyboard"
	"github.com/minikomi/chromakey/internal/midiout"
)

func logKeyEvent(ev *sdl.KeyboardEvent) {
	slog.Debug("keyboard event",
		"ms", ev.Timestamp, "type", ev.Type, "sym", string(rune(ev.Keysym.Sym)),
		"modifiers", ev.Keysym.Mod, "state", ev.State, "repeat", ev.Repeat)
}

// handleKeyEvent plays or stops the note bound to the key and applies
// octave and transpose commands. It reports whether the display changed.
func handleKeyEvent(ev *sdl.KeyboardEvent, kb *keyboard.State, wr *midiout.Writer, velocity uint8) bool {
	logKeyEvent(ev)
	key := rune(ev.Keysym.Sym)

	switch {
	// first keydown = ev.State = 1, ev.Repeat = 0
	case ev.State == sdl.PRESSED && ev.Repeat == 0:
		if kb.Command(key) {
			slog.Info("keyboard", "octave", kb.Octave, "shift", kb.Shift.String())
			return true
		}
		e, ok := kb.Press(key)
		if !ok {
			return false
		}
		if err := wr.Play(e, velocity); err != nil {
			slog.Warn("note on", "note", e.Note.String(), "error", err)
		}
		return true
	case ev.State == sdl.RELEASED:
		e, ok := kb.Release(key)
		if !ok {
			return false
		}
		if err := wr.Play(e, velocity); err != nil {
			slog.Warn("note off", "note", e.Note.String(), "error", err)
		}
		return true
	}
	return false
}
