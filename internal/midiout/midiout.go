// Package midiout writes keyboard events as MIDI channel messages.
package midiout

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gomidi/connect"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"

	"github.com/minikomi/chromakey/internal/keyboard"
)

type midiWriter struct {
	wr              midi.Writer
	ch              channel.Channel
	noteState       [16][128]bool
	noConsolidation bool
}

// Writer refuses to start a note that is already running or to stop one
// that is not, unless consolidation is switched off.
type Writer struct {
	*midiWriter
}

func NewWriter(dest io.Writer, ch uint8, options ...midiwriter.Option) *Writer {
	options = append(
		[]midiwriter.Option{
			midiwriter.NoRunningStatus(),
		}, options...)

	wr := midiwriter.New(dest, options...)
	return &Writer{&midiWriter{wr: wr, ch: channel.Channel(ch & 0x0f)}}
}

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

// WriterTo sends messages to an opened output port.
func WriterTo(out connect.Out, ch uint8) *Writer {
	return NewWriter(&outWriter{out}, ch)
}

// NoConsolidation passes every message through unchecked.
func (w *Writer) NoConsolidation() *Writer {
	w.noConsolidation = true
	return w
}

func (w *midiWriter) NoteOn(key, velocity uint8) error {
	return w.Write(w.ch.NoteOn(key, velocity))
}

func (w *midiWriter) NoteOff(key uint8) error {
	return w.Write(w.ch.NoteOff(key))
}

// Play writes the message for a keyboard event.
func (w *midiWriter) Play(ev keyboard.Event, velocity uint8) error {
	slog.Debug(ev.Kind.String(), "note", ev.Note.String(), "key", ev.Key)
	if ev.Kind == keyboard.NoteOff {
		return w.NoteOff(uint8(ev.Key))
	}
	return w.NoteOn(uint8(ev.Key), velocity)
}

// AllNotesOff stops every note this writer started.
func (w *midiWriter) AllNotesOff() error {
	for ch := range w.noteState {
		for key, running := range w.noteState[ch] {
			if !running {
				continue
			}
			if err := w.Write(channel.Channel(ch).NoteOff(uint8(key))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *midiWriter) Write(msg midi.Message) error {
	if w.noConsolidation {
		return w.wr.Write(msg)
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}

// Running reports whether key is sounding on the writer's channel.
func (w *midiWriter) Running(key uint8) bool {
	return w.noteState[w.ch][key&0x7f]
}

func PrintPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

func PrintPorts(w io.Writer, ins []connect.In, outs []connect.Out) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ins {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")

	fmt.Fprintf(w, "MIDI OUT Ports\n")
	for _, port := range outs {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}
