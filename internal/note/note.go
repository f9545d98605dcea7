// Package note places a pitch class in an octave and converts between notes
// and MIDI key numbers.
package note

import (
	"errors"
	"fmt"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/pitch"
)

var ErrKeyOutOfRange = errors.New("note: key out of range")

// Key is a MIDI key number. Middle C (C4) is 60.
type Key uint8

const MaxKey = Key(127)

// Note is a pitch in an octave, numbered as in scientific pitch notation
// (octaves change between B and C).
type Note struct {
	Pitch  pitch.Pitch
	Octave int
}

func New(p pitch.Pitch, octave int) Note {
	return Note{Pitch: p, Octave: octave}
}

// pitches above C, indexed by semitone.
var fromC = func() [12]pitch.Pitch {
	var ps [12]pitch.Pitch
	c, _ := pitch.Pitch{Letter: pitch.C}.Index()
	for i := range ps {
		ps[i] = pitch.Pitches[(c+i)%12]
	}
	return ps
}()

func aboveC(p pitch.Pitch) (int, error) {
	for i, q := range fromC {
		if q == p {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", pitch.ErrNotInTable, p)
}

// absolute counts semitones from C-1 (key 0).
func (n Note) absolute() (int, error) {
	i, err := aboveC(n.Pitch)
	if err != nil {
		return 0, err
	}
	return (n.Octave+1)*12 + i, nil
}

func fromAbsolute(abs int) Note {
	return Note{Pitch: fromC[floorMod(abs, 12)], Octave: floorDiv(abs, 12) - 1}
}

func (n Note) Key() (Key, error) {
	abs, err := n.absolute()
	if err != nil {
		return 0, err
	}
	if abs < 0 || abs > int(MaxKey) {
		return 0, fmt.Errorf("%w: %s", ErrKeyOutOfRange, n)
	}
	return Key(abs), nil
}

func FromKey(k Key) Note {
	return fromAbsolute(int(k))
}

// Transpose moves n up by iv, carrying into the next octave past B.
func Transpose(n Note, iv interval.Interval) (Note, error) {
	abs, err := n.absolute()
	if err != nil {
		return Note{}, err
	}
	return fromAbsolute(abs + iv.Semitones()), nil
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Pitch, n.Octave)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
