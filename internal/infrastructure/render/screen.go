package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/balloon/internal/domain/scenegraph"
)

// maxBatchFaces keeps each DrawTriangles call under the uint16 index limit
const maxBatchFaces = 4096

// Screen renders onto one ebiten image per frame. Images are created lazily,
// so a Screen can be constructed before the game loop starts.
type Screen struct {
	target    *ebiten.Image
	light     scenegraph.Light
	depthTest bool

	white  *ebiten.Image
	glyphs map[string]*ebiten.Image

	faces    []Face
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScreen creates a screen renderer with no target
func NewScreen() *Screen {
	return &Screen{glyphs: make(map[string]*ebiten.Image)}
}

// SetTarget selects the image the next draw calls go to
func (s *Screen) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Size returns the target size in pixels
func (s *Screen) Size() image.Point {
	if s.target == nil {
		return image.Point{}
	}
	return s.target.Bounds().Size()
}

// SetLight sets the light used by DrawScene
func (s *Screen) SetLight(l scenegraph.Light) {
	s.light = l
}

// Clear fills the target with c
func (s *Screen) Clear(c color.Color) {
	s.target.Fill(c)
}

// SetDepthTest toggles nearest-wins (less-than) visibility for DrawScene.
// Off, triangles are painted in scene order.
func (s *Screen) SetDepthTest(enabled bool) {
	s.depthTest = enabled
}

// DrawScene rasterizes every drawable of sc as seen from cam
func (s *Screen) DrawScene(sc *scenegraph.Scene, cam *scenegraph.Camera) {
	size := s.Size()
	s.faces = ProjectScene(s.faces[:0], sc, cam, s.light, size.X, size.Y)
	if s.depthTest {
		SortFaces(s.faces)
	}

	src := s.whitePixel()
	for start := 0; start < len(s.faces); start += maxBatchFaces {
		end := min(start+maxBatchFaces, len(s.faces))
		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
		for _, f := range s.faces[start:end] {
			base := uint16(len(s.vertices))
			r, g, b, a := float32(f.Color.R)/255, float32(f.Color.G)/255, float32(f.Color.B)/255, float32(f.Color.A)/255
			for _, p := range f.Points {
				s.vertices = append(s.vertices, ebiten.Vertex{
					DstX: p.X(), DstY: p.Y(),
					SrcX: 1, SrcY: 1,
					ColorR: r, ColorG: g, ColorB: b, ColorA: a,
				})
			}
			s.indices = append(s.indices, base, base+1, base+2)
		}
		s.target.DrawTriangles(s.vertices, s.indices, src, &ebiten.DrawTrianglesOptions{})
	}
}

// DrawText draws one line of text. proj maps the anchor and bases to clip space.
// The alpha of c is ignored; overlay text is always opaque.
func (s *Screen) DrawText(proj mgl32.Mat4, text string, anchor, xBasis, yBasis mgl32.Vec3, c color.RGBA) {
	if text == "" {
		return
	}
	size := s.Size()
	place := placeText(proj, anchor, xBasis, yBasis, size.X, size.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(place.ScaleX, place.ScaleY)
	op.GeoM.Translate(place.X, place.Y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	s.target.DrawImage(s.glyph(text), op)
}

func (s *Screen) glyph(text string) *ebiten.Image {
	if img, ok := s.glyphs[text]; ok {
		return img
	}
	img := ebiten.NewImage(len(text)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(img, text)
	s.glyphs[text] = img
	return img
}

func (s *Screen) whitePixel() *ebiten.Image {
	if s.white == nil {
		s.white = ebiten.NewImage(3, 3)
		s.white.Fill(color.White)
	}
	return s.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
