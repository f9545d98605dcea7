package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/note"
	"github.com/minikomi/chromakey/internal/pitch"
)

func TestTransposeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"semitones", []string{"transpose", "C", "4"}, "E\n"},
		{"canonical flat", []string{"transpose", "G", "3"}, "Bb\n"},
		{"interval name", []string{"transpose", "C", "P5"}, "G\n"},
		{"diminished fifth", []string{"transpose", "C", "d5"}, "Gb\n"},
		{"octave wraps", []string{"transpose", "Eb", "12"}, "Eb\n"},
		{"symbol", []string{"transpose", "A", "1", "--symbol"}, "B♭\n"},
		{"default interval", []string{"transpose", "D"}, "D\n"},
		{"with octave", []string{"transpose", "B", "m2", "-o", "3"}, "C4 (60)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTransposeCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"invalid letter", []string{"transpose", "H", "3"}, pitch.ErrInvalidLetter},
		{"not in table", []string{"transpose", "E#", "1"}, pitch.ErrNotInTable},
		{"semitones out of range", []string{"transpose", "C", "13"}, interval.ErrSemitonesOutOfRange},
		{"unknown interval", []string{"transpose", "C", "A4"}, interval.ErrInvalidName},
		{"key out of range", []string{"transpose", "G", "P8", "-o", "9"}, note.ErrKeyOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransposeCmd_Args(t *testing.T) {
	_, err := execute(t, "transpose")
	assert.Error(t, err)

	_, err = execute(t, "transpose", "C", "1", "2")
	assert.Error(t, err)
}
