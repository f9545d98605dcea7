// Package interval names the simple diatonic intervals within an octave and
// converts them to and from a semitone distance.
package interval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPair         = errors.New("interval: invalid interval size")
	ErrInvalidQuality      = errors.New("interval: invalid interval quality")
	ErrSemitonesOutOfRange = errors.New("interval: semitones out of range")
	ErrInvalidName         = errors.New("interval: invalid interval name")
)

type Size uint8

const (
	Unison = Size(iota)
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave
)

var sizeNames = [...]string{"unison", "second", "third", "fourth", "fifth", "sixth", "seventh", "octave"}

func (s Size) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

type Quality uint8

const (
	Perfect = Quality(iota)
	Major
	Minor
	// Augmented is not part of the interval table and cannot be constructed.
	Augmented
	Diminished
)

var qualityNames = [...]string{"perfect", "major", "minor", "augmented", "diminished"}
var qualityAbbrev = [...]string{"P", "M", "m", "A", "d"}

func (q Quality) String() string {
	if int(q) < len(qualityNames) {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

// Interval is a size/quality pair together with its width in semitones.
// The zero value is a perfect unison.
type Interval struct {
	size      Size
	quality   Quality
	semitones int
}

type pair struct {
	size    Size
	quality Quality
}

// table is indexed by semitone count.
var table = [13]pair{
	{Unison, Perfect},
	{Second, Minor},
	{Second, Major},
	{Third, Minor},
	{Third, Major},
	{Fourth, Perfect},
	{Fifth, Diminished},
	{Fifth, Perfect},
	{Sixth, Minor},
	{Sixth, Major},
	{Seventh, Minor},
	{Seventh, Major},
	{Octave, Perfect},
}

func lookup(size Size, quality Quality) (int, bool) {
	for n, p := range table {
		if p.size == size && p.quality == quality {
			return n, true
		}
	}
	return 0, false
}

func New(size Size, quality Quality) (Interval, error) {
	n, ok := lookup(size, quality)
	if !ok {
		return Interval{}, fmt.Errorf("%w: %s %s", ErrInvalidPair, quality, size)
	}
	return Interval{size: size, quality: quality, semitones: n}, nil
}

// FromSemitones returns the canonical interval for n semitones, n in [0,12].
// Six semitones is a diminished fifth, never an augmented fourth.
func FromSemitones(n int) (Interval, error) {
	if n < 0 || n >= len(table) {
		return Interval{}, fmt.Errorf("%w: %d", ErrSemitonesOutOfRange, n)
	}
	p := table[n]
	return Interval{size: p.size, quality: p.quality, semitones: n}, nil
}

func MustNew(size Size, quality Quality) Interval {
	iv, err := New(size, quality)
	if err != nil {
		panic(err)
	}
	return iv
}

func MustFromSemitones(n int) Interval {
	iv, err := FromSemitones(n)
	if err != nil {
		panic(err)
	}
	return iv
}

// All returns the 13 table intervals ordered by width.
func All() []Interval {
	ivs := make([]Interval, len(table))
	for n, p := range table {
		ivs[n] = Interval{size: p.size, quality: p.quality, semitones: n}
	}
	return ivs
}

func (iv Interval) Size() Size { return iv.size }
func (iv Interval) Quality() Quality { return iv.quality }

// Semitones returns the width recorded at construction.
func (iv Interval) Semitones() int { return iv.semitones }

// ToSemitones recomputes the width from size and quality.
func (iv Interval) ToSemitones() (int, error) {
	n, ok := lookup(iv.size, iv.quality)
	if !ok {
		return 0, fmt.Errorf("%w: %s %s", ErrInvalidQuality, iv.quality, iv.size)
	}
	return n, nil
}

// String returns the short name, e.g. "P5" or "m3".
func (iv Interval) String() string {
	if int(iv.quality) >= len(qualityAbbrev) {
		return iv.Name()
	}
	return fmt.Sprintf("%s%d", qualityAbbrev[iv.quality], int(iv.size)+1)
}

// Name returns the long name, e.g. "perfect fifth".
func (iv Interval) Name() string {
	return iv.quality.String() + " " + iv.size.String()
}

// ParseName reads a short name as produced by String.
func ParseName(name string) (Interval, error) {
	for _, iv := range All() {
		if iv.String() == name {
			return iv, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
}
