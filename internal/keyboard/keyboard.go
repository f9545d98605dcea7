// Package keyboard turns computer key presses into transposed note events.
package keyboard

import (
	"log/slog"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/note"
)

const (
	MinOctave     = 2
	MaxOctave     = 9
	DefaultOctave = 5
)

// Layout maps keys to semitones above the current octave's C. The home row
// holds the white keys, the row above the black keys.
var Layout = map[rune]int{
	'a': 0,
	'w': 1,
	's': 2,
	'e': 3,
	'd': 4,
	'f': 5,
	't': 6,
	'g': 7,
	'y': 8,
	'h': 9,
	'u': 10,
	'j': 11,
	// high octave
	'k': 12,
	'o': 13,
	'l': 14,
}

const (
	octaveDownKey = ','
	octaveUpKey   = '.'
	shiftDownKey  = '['
	shiftUpKey    = ']'
)

type Kind uint8

const (
	NoteOn = Kind(iota)
	NoteOff
)

func (k Kind) String() string {
	if k == NoteOff {
		return "note off"
	}
	return "note on"
}

type Event struct {
	Kind Kind
	Note note.Note
	Key  note.Key
}

// State is the playing state of the keyboard. Octave uses the keyboard's own
// numbering where key a in octave 5 sounds MIDI key 60.
type State struct {
	Octave int
	Shift  interval.Interval
	Active map[rune]Event
}

func New(octave int, shift interval.Interval) *State {
	return &State{
		Octave: clamp(octave, MinOctave, MaxOctave),
		Shift:  shift,
		Active: map[rune]Event{},
	}
}

// Press starts the note mapped to key. Keys that are unmapped, already held,
// or land outside the MIDI range produce no event.
func (s *State) Press(key rune) (Event, bool) {
	offset, ok := Layout[key]
	if !ok {
		return Event{}, false
	}
	if _, held := s.Active[key]; held {
		return Event{}, false
	}

	base := s.Octave*12 + offset
	if base > int(note.MaxKey) {
		return Event{}, false
	}
	n, err := note.Transpose(note.FromKey(note.Key(base)), s.Shift)
	if err != nil {
		return Event{}, false
	}
	k, err := n.Key()
	if err != nil {
		slog.Debug("key out of range", "key", string(key), "note", n.String())
		return Event{}, false
	}

	ev := Event{Kind: NoteOn, Note: n, Key: k}
	s.Active[key] = ev
	return ev, true
}

// Release stops the note started by key, even if the octave or shift changed
// while it was held.
func (s *State) Release(key rune) (Event, bool) {
	ev, ok := s.Active[key]
	if !ok {
		return Event{}, false
	}
	delete(s.Active, key)
	ev.Kind = NoteOff
	return ev, true
}

func (s *State) OctaveDown() { s.Octave = clamp(s.Octave-1, MinOctave, MaxOctave) }
func (s *State) OctaveUp() { s.Octave = clamp(s.Octave+1, MinOctave, MaxOctave) }

func (s *State) ShiftDown() { s.setShift(s.Shift.Semitones() - 1) }
func (s *State) ShiftUp() { s.setShift(s.Shift.Semitones() + 1) }

func (s *State) setShift(n int) {
	if iv, err := interval.FromSemitones(n); err == nil {
		s.Shift = iv
	}
}

// Command applies the octave or shift command bound to key and reports
// whether key was a command.
func (s *State) Command(key rune) bool {
	switch key {
	case octaveDownKey:
		s.OctaveDown()
	case octaveUpKey:
		s.OctaveUp()
	case shiftDownKey:
		s.ShiftDown()
	case shiftUpKey:
		s.ShiftUp()
	default:
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
