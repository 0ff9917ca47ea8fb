package render

import "github.com/go-gl/mathgl/mgl32"

// Debug font cell of ebitenutil.DebugPrint
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// glyphAdvance is the horizontal advance of one character in units of the x basis
const glyphAdvance = 0.6

// textPlacement is where a cached text image lands on screen
type textPlacement struct {
	X, Y           float64 // top-left, pixels
	ScaleX, ScaleY float64
}

// placeText maps a text line given by its anchor (bottom-left of the first
// glyph) and per-glyph basis vectors through proj to screen space.
func placeText(proj mgl32.Mat4, anchor, xBasis, yBasis mgl32.Vec3, width, height int) textPlacement {
	toScreen := func(p mgl32.Vec3) mgl32.Vec2 {
		clip := proj.Mul4x1(p.Vec4(1))
		w := clip.W()
		if w == 0 {
			w = 1
		}
		return NDCToScreen(clip.X()/w, clip.Y()/w, width, height)
	}

	origin := toScreen(anchor)
	em := toScreen(anchor.Add(yBasis)).Sub(origin).Len()
	advance := toScreen(anchor.Add(xBasis)).Sub(origin).Len() * glyphAdvance

	return textPlacement{
		X:      float64(origin.X()),
		Y:      float64(origin.Y() - em),
		ScaleX: float64(advance / glyphWidth),
		ScaleY: float64(em / glyphHeight),
	}
}
