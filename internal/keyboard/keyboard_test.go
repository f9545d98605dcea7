package keyboard

import (
	"testing"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/note"
	"github.com/minikomi/chromakey/internal/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPress(t *testing.T) {
	tests := []struct {
		name  string
		key   rune
		shift int
		want  note.Note
		mkey  note.Key
	}{
		{"middle c", 'a', 0, note.New(pitch.MustParse("C"), 4), 60},
		{"black key", 'w', 0, note.New(pitch.MustParse("Db"), 4), 61},
		{"high octave", 'k', 0, note.New(pitch.MustParse("C"), 5), 72},
		{"major third up", 'a', 4, note.New(pitch.MustParse("E"), 4), 64},
		{"minor third from g", 'g', 3, note.New(pitch.MustParse("Bb"), 4), 70},
		{"carry past b", 'j', 1, note.New(pitch.MustParse("C"), 5), 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultOctave, interval.MustFromSemitones(tt.shift))

			ev, ok := s.Press(tt.key)
			require.True(t, ok)
			assert.Equal(t, NoteOn, ev.Kind)
			assert.Equal(t, tt.want, ev.Note)
			assert.Equal(t, tt.mkey, ev.Key)
		})
	}
}

func TestPress_Ignored(t *testing.T) {
	s := New(DefaultOctave, interval.Interval{})

	_, ok := s.Press('z')
	assert.False(t, ok, "unmapped key")

	_, ok = s.Press('a')
	require.True(t, ok)
	_, ok = s.Press('a')
	assert.False(t, ok, "held key")
}

func TestPress_OutOfRange(t *testing.T) {
	s := New(MaxOctave, interval.MustFromSemitones(12))

	_, ok := s.Press('l')
	assert.False(t, ok)
	assert.Empty(t, s.Active)
}

func TestRelease(t *testing.T) {
	s := New(DefaultOctave, interval.Interval{})

	_, ok := s.Release('a')
	assert.False(t, ok, "not held")

	on, ok := s.Press('a')
	require.True(t, ok)

	s.OctaveUp()
	s.ShiftUp()

	off, ok := s.Release('a')
	require.True(t, ok)
	assert.Equal(t, NoteOff, off.Kind)
	assert.Equal(t, on.Key, off.Key)
	assert.Equal(t, on.Note, off.Note)
	assert.Empty(t, s.Active)
}

func TestOctaveClamp(t *testing.T) {
	s := New(1, interval.Interval{})
	assert.Equal(t, MinOctave, s.Octave)

	s.OctaveDown()
	assert.Equal(t, MinOctave, s.Octave)

	for i := 0; i < 20; i++ {
		s.OctaveUp()
	}
	assert.Equal(t, MaxOctave, s.Octave)
}

func TestShiftClamp(t *testing.T) {
	s := New(DefaultOctave, interval.Interval{})

	s.ShiftDown()
	assert.Equal(t, 0, s.Shift.Semitones())

	s.ShiftUp()
	assert.Equal(t, "m2", s.Shift.String())

	for i := 0; i < 20; i++ {
		s.ShiftUp()
	}
	assert.Equal(t, "P8", s.Shift.String())
}

func TestCommand(t *testing.T) {
	s := New(DefaultOctave, interval.Interval{})

	assert.True(t, s.Command('.'))
	assert.Equal(t, DefaultOctave+1, s.Octave)
	assert.True(t, s.Command(','))
	assert.Equal(t, DefaultOctave, s.Octave)
	assert.True(t, s.Command(']'))
	assert.Equal(t, 1, s.Shift.Semitones())
	assert.True(t, s.Command('['))
	assert.Equal(t, 0, s.Shift.Semitones())

	assert.False(t, s.Command('a'))
}

func TestMarker(t *testing.T) {
	r, ok := Marker(24)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 12, Y: Top + 28, W: 6, H: 8}, r)

	r, ok = Marker(61)
	require.True(t, ok)
	assert.Equal(t, Rect{X: OctaveOrigin(5) + 8, Y: Top, W: 4, H: 8}, r)

	_, ok = Marker(23)
	assert.False(t, ok)
	_, ok = Marker(120)
	assert.False(t, ok)
}

func TestLayoutCoversOneAndAHalfOctaves(t *testing.T) {
	seen := map[int]bool{}
	for _, off := range Layout {
		seen[off] = true
	}
	for off := 0; off <= 14; off++ {
		assert.True(t, seen[off], "offset %d", off)
	}
}
