package playing

import "image/color"

// textHeight is the overlay line height in clip units
const textHeight = 0.09

var (
	textBlack = color.RGBA{A: 255}
	textWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Line is one overlay text line. X and Y place its anchor in text heights
// from the bottom-left corner of the screen; Scale is the glyph size in
// text heights.
type Line struct {
	Text  string
	X, Y  float32
	Scale float32
	Color color.RGBA
}

const controlsHint = "Use WASD to navigate the balloon; adjust camera using the mouse"

// Overlay returns the lines to show for the given play state.
// Before the pop it is the controls hint; after it, the narrative line of
// the current play-through, which stops advancing from the sixth on.
func Overlay(popped bool, timesPlayed int) []Line {
	if !popped {
		return []Line{{Text: controlsHint, X: 0.1, Y: 0.1, Scale: 1, Color: textBlack}}
	}

	switch timesPlayed {
	case 1:
		return []Line{
			{Text: "Our life is just like this balloon", X: 8, Y: 10, Scale: 2, Color: textBlack},
			{Text: "Press Space to Restart to Get Next Line", X: 10, Y: 8, Scale: 1, Color: textWhite},
		}
	case 2:
		return []Line{
			{Text: "We rise up to get screwed by...", X: 10, Y: 10, Scale: 2, Color: textBlack},
			{Text: "Press Space", X: 18, Y: 8, Scale: 1, Color: textWhite},
		}
	case 3:
		return []Line{
			{Text: "Something so subtle like this needle, yet...", X: 8, Y: 10, Scale: 2, Color: textBlack},
		}
	case 4:
		return []Line{
			{Text: "Yet we have no other choice but to rise again, and...", X: 6, Y: 10, Scale: 1.5, Color: textBlack},
		}
	case 5:
		return []Line{
			{Text: "And there is no way out as long as we live.", X: 6, Y: 10, Scale: 2, Color: textBlack},
		}
	default:
		return []Line{
			{Text: "BOOOOOOOOOOOM!!!!!!!!!", X: 10, Y: 10, Scale: 3, Color: textBlack},
			{Text: "Press Space to Restart", X: 16, Y: 8, Scale: 1, Color: textWhite},
		}
	}
}
