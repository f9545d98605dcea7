package keyboard

import "github.com/minikomi/chromakey/internal/note"

// Geometry of the on-screen keyboard, one block per octave from MinOctave to
// MaxOctave.
const (
	Left        = int32(10)
	Top         = int32(12)
	OctaveWidth = int32(70)
	WhiteWidth  = int32(10)
	WhiteHeight = int32(40)
	BlackWidth  = int32(6)
	BlackHeight = int32(20)
)

type Rect struct {
	X, Y, W, H int32
}

// BlackSlots are the white key positions followed by a black key.
var BlackSlots = []int32{0, 1, 3, 4, 5}

var whiteOffsets = map[int]int32{0: 2, 2: 12, 4: 22, 5: 32, 7: 42, 9: 52, 11: 62}
var blackOffsets = map[int]int32{1: 8, 3: 18, 6: 38, 8: 48, 10: 58}

func OctaveOrigin(octave int) int32 {
	return Left + OctaveWidth*int32(octave-MinOctave)
}

func firstKey() int { return MinOctave * 12 }
func lastKey() int { return (MaxOctave+1)*12 - 1 }

// Marker returns the rectangle that marks key as pressed, or false when key
// is outside the drawn octaves.
func Marker(key note.Key) (Rect, bool) {
	k := int(key)
	if k < firstKey() || k > lastKey() {
		return Rect{}, false
	}
	x := OctaveOrigin(k / 12)
	if off, black := blackOffsets[k%12]; black {
		return Rect{X: x + off, Y: Top, W: 4, H: 8}, true
	}
	return Rect{X: x + whiteOffsets[k%12], Y: Top + WhiteHeight - 12, W: 6, H: 8}, true
}
