// Package pitch models the twelve chromatic pitch classes and transposes them
// around a fixed ring of canonical spellings.
package pitch

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/minikomi/chromakey/internal/interval"
)

var (
	ErrInvalidLetter = errors.New("pitch: invalid note name")
	ErrNotInTable    = errors.New("pitch: not a canonical pitch")
)

type Letter uint8

const (
	A = Letter(iota)
	B
	C
	D
	E
	F
	G
)

func (l Letter) String() string {
	if l > G {
		return fmt.Sprintf("Letter(%d)", uint8(l))
	}
	return string(rune('A' + l))
}

type Accidental uint8

const (
	None = Accidental(iota)
	Flat
	// Natural is never produced by Parse or the pitch ring; naturals carry None.
	Natural
	Sharp
)

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case Natural:
		return "n"
	}
	return ""
}

// Symbol returns the accidental as printed in notation.
func (a Accidental) Symbol() string {
	switch a {
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case Natural:
		return "♮"
	}
	return ""
}

// Pitch is a letter with an optional accidental, e.g. C, A♭, F♯.
type Pitch struct {
	Letter     Letter
	Accidental Accidental
}

// Pitches is the ring used for transposition: stepping one index up is one
// semitone up.
var Pitches = [12]Pitch{
	{A, None},
	{B, Flat},
	{B, None},
	{C, None},
	{D, Flat},
	{D, None},
	{E, Flat},
	{E, None},
	{F, None},
	{G, Flat},
	{G, None},
	{A, Flat},
}

// Parse reads a pitch name such as "A", "Bb", "F#" or "E♭". Only the first two
// runes are inspected and the result is not checked against Pitches.
func Parse(s string) (Pitch, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r < 'A' || r > 'G' {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	p := Pitch{Letter: Letter(r - 'A')}

	next, _ := utf8.DecodeRuneInString(s[size:])
	switch next {
	case 'b', '♭':
		p.Accidental = Flat
	case '#', '♯':
		p.Accidental = Sharp
	}
	return p, nil
}

// ParseCanonical is Parse restricted to the spellings in Pitches.
func ParseCanonical(s string) (Pitch, error) {
	p, err := Parse(s)
	if err != nil {
		return Pitch{}, err
	}
	if !p.Canonical() {
		return Pitch{}, fmt.Errorf("%w: %q", ErrNotInTable, s)
	}
	return p, nil
}

func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Index returns the position of p in Pitches.
func (p Pitch) Index() (int, error) {
	for i, q := range Pitches {
		if q == p {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrNotInTable, p)
}

func (p Pitch) Canonical() bool {
	_, err := p.Index()
	return err == nil
}

func (p Pitch) String() string {
	return p.Letter.String() + p.Accidental.String()
}

func (p Pitch) Symbol() string {
	return p.Letter.String() + p.Accidental.Symbol()
}

// Transpose moves p up by iv.
func Transpose(p Pitch, iv interval.Interval) (Pitch, error) {
	return TransposeSemitones(p, iv.Semitones())
}

// TransposeSemitones moves p by n semitones, up for positive n and down for
// negative n. The result is always spelled as in Pitches, so G up 3 is Bb and
// not A#.
func TransposeSemitones(p Pitch, n int) (Pitch, error) {
	i, err := p.Index()
	if err != nil {
		return Pitch{}, err
	}
	return Pitches[mod(i+n, len(Pitches))], nil
}

// Between returns the upward interval from one pitch class to another,
// between a unison and a major seventh.
func Between(from, to Pitch) (interval.Interval, error) {
	i, err := from.Index()
	if err != nil {
		return interval.Interval{}, err
	}
	j, err := to.Index()
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.FromSemitones(mod(j-i, len(Pitches)))
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
