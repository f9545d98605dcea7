package main

import (
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/minikomi/chromakey/internal/keyboard"
)

var red sdl.Color = sdl.Color{R: 225, G: 30, B: 30, A: 225}
var gray sdl.Color = sdl.Color{R: 180, G: 180, B: 180, A: 225}

func getKeyboardColor(octave int) (uint8, uint8, uint8) {
	if octave%2 == 0 {
		return 245, 245, 245
	}
	return 230, 230, 230
}

func drawLabel(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32) {
	if font == nil {
		return
	}
	solid, err := font.RenderUTF8Solid(text, color)
	if err != nil {
		return
	}
	defer solid.Free()

	texture, err := renderer.CreateTextureFromSurface(solid)
	if err != nil {
		return
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: solid.W, H: solid.H}
	renderer.Copy(texture, nil, &rect)
}

// Draw paints one block per octave, marks the active octave and every held
// key, and labels the current transposition.
func Draw(renderer *sdl.Renderer, font *ttf.Font, kb *keyboard.State) {
	renderer.SetDrawColor(225, 225, 225, 255)
	renderer.Clear()

	for octave := keyboard.MinOctave; octave <= keyboard.MaxOctave; octave++ {
		left := keyboard.OctaveOrigin(octave)

		color := gray
		if octave == kb.Octave {
			color = red
		}
		drawLabel(renderer, font, strconv.Itoa(octave), color, left, 0)

		// bg
		r, g, b := getKeyboardColor(octave)
		renderer.SetDrawColor(r, g, b, 255)
		renderer.FillRect(&sdl.Rect{X: left, Y: keyboard.Top, W: keyboard.OctaveWidth, H: keyboard.WhiteHeight})

		// keys
		renderer.SetDrawColor(50, 50, 50, 255)
		for j := int32(0); j < 7; j++ {
			renderer.DrawRect(&sdl.Rect{X: left + j*keyboard.WhiteWidth, Y: keyboard.Top, W: keyboard.WhiteWidth, H: keyboard.WhiteHeight})
		}

		// black keys
		for _, j := range keyboard.BlackSlots {
			x := left + keyboard.WhiteWidth/2 + j*keyboard.WhiteWidth + 2
			renderer.FillRect(&sdl.Rect{X: x, Y: keyboard.Top, W: keyboard.BlackWidth, H: keyboard.BlackHeight})
		}

		// active marker
		if octave == kb.Octave {
			renderer.SetDrawColor(255, 30, 30, 255)
			w := keyboard.OctaveWidth + keyboard.OctaveWidth*2/7
			if octave == keyboard.MaxOctave {
				w = keyboard.OctaveWidth
			}
			renderer.FillRect(&sdl.Rect{X: left, Y: keyboard.Top + keyboard.WhiteHeight, W: w, H: 2})
		}
	}

	// held keys
	renderer.SetDrawColor(255, 30, 30, 255)
	for _, ev := range kb.Active {
		if m, ok := keyboard.Marker(ev.Key); ok {
			renderer.FillRect(&sdl.Rect{X: m.X, Y: m.Y, W: m.W, H: m.H})
		}
	}

	drawLabel(renderer, font, "+"+kb.Shift.String(), red, keyboard.Left, keyboard.Top+keyboard.WhiteHeight+6)

	renderer.Present()
}
