package pitch

import (
	"testing"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pitch
	}{
		{"A", Pitch{A, None}},
		{"Cb", Pitch{C, Flat}},
		{"F#", Pitch{F, Sharp}},
		{"E♭", Pitch{E, Flat}},
		{"G♯", Pitch{G, Sharp}},
		{"Dx", Pitch{D, None}},
		{"Cbb", Pitch{C, Flat}},
		{"E#", Pitch{E, Sharp}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidLetter(t *testing.T) {
	for _, in := range []string{"H", "", "a", "#", "♭A"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidLetter, "%q", in)
	}
}

func TestParseCanonical(t *testing.T) {
	p, err := ParseCanonical("Bb")
	require.NoError(t, err)
	assert.Equal(t, Pitch{B, Flat}, p)

	for _, in := range []string{"A#", "E#", "Cb", "Cbb"} {
		_, err := ParseCanonical(in)
		assert.ErrorIs(t, err, ErrNotInTable, in)
	}

	_, err = ParseCanonical("H")
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

func TestString(t *testing.T) {
	want := []string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}
	for i, p := range Pitches {
		assert.Equal(t, want[i], p.String())
		assert.Equal(t, p, MustParse(p.String()))
		assert.Equal(t, p, MustParse(p.Symbol()))
	}
	assert.Equal(t, "F♯", Pitch{F, Sharp}.Symbol())
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		from      string
		semitones int
		want      string
	}{
		{"C", 4, "E"},
		{"G", 3, "Bb"},
		{"A", 0, "A"},
		{"Ab", 1, "A"},
		{"B", 1, "C"},
		{"D", 12, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got, err := Transpose(MustParse(tt.from), interval.MustFromSemitones(tt.semitones))
			require.NoError(t, err)
			assert.Equal(t, MustParse(tt.want), got)

			got, err = TransposeSemitones(MustParse(tt.from), tt.semitones)
			require.NoError(t, err)
			assert.Equal(t, MustParse(tt.want), got)
		})
	}
}

func TestTransposeSemitones_Cycle(t *testing.T) {
	for _, p := range Pitches {
		same, err := TransposeSemitones(p, 12)
		require.NoError(t, err)
		assert.Equal(t, p, same)

		for n := -24; n <= 36; n++ {
			got, err := TransposeSemitones(p, n)
			require.NoError(t, err)
			reduced, err := TransposeSemitones(p, mod(n, 12))
			require.NoError(t, err)
			assert.Equal(t, reduced, got, "%s %+d", p, n)
		}
	}
}

func TestTransposeSemitones_Composition(t *testing.T) {
	for _, p := range Pitches {
		for a := 0; a <= 12; a++ {
			for b := 0; b <= 12; b++ {
				first, err := TransposeSemitones(p, a)
				require.NoError(t, err)
				got, err := TransposeSemitones(first, b)
				require.NoError(t, err)
				want, err := TransposeSemitones(p, (a+b)%12)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestTransposeSemitones_Down(t *testing.T) {
	got, err := TransposeSemitones(MustParse("C"), -1)
	require.NoError(t, err)
	assert.Equal(t, MustParse("B"), got)
}

func TestTranspose_NotInTable(t *testing.T) {
	_, err := TransposeSemitones(MustParse("E#"), 1)
	assert.ErrorIs(t, err, ErrNotInTable)

	_, err = Transpose(Pitch{C, Natural}, interval.MustFromSemitones(2))
	assert.ErrorIs(t, err, ErrNotInTable)
}

func TestBetween(t *testing.T) {
	iv, err := Between(MustParse("C"), MustParse("G"))
	require.NoError(t, err)
	assert.Equal(t, "P5", iv.String())

	iv, err = Between(MustParse("G"), MustParse("C"))
	require.NoError(t, err)
	assert.Equal(t, "P4", iv.String())

	for _, p := range Pitches {
		for n := 0; n < 24; n++ {
			q, err := TransposeSemitones(p, n)
			require.NoError(t, err)
			iv, err := Between(p, q)
			require.NoError(t, err)
			assert.Equal(t, interval.MustFromSemitones(n%12), iv)
		}
	}

	_, err = Between(MustParse("C"), MustParse("Fb"))
	assert.ErrorIs(t, err, ErrNotInTable)
}
