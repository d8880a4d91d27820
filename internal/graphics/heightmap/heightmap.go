// Package heightmap renders a top-down preview image of a generated world.
package heightmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lcos-worldgen/internal/world"
)

var (
	lowland  = color.RGBA{R: 64, G: 128, B: 56, A: 255}
	highland = color.RGBA{R: 150, G: 120, B: 90, A: 255}
	peak     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	water    = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	anchor   = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// Grid is the height data the preview is drawn from, indexed i*Height+j.
type Grid struct {
	Width     int
	Height    int
	Spacing   float32
	Heights   []float32
	Submerged []bool
	// Anchors are world-space (x, z) points marked on the image.
	Anchors []mgl32.Vec2
}

// FromWorld extracts the ground heights of w and marks every grid cell the
// water surface lies above.
func FromWorld(w *world.World) (Grid, error) {
	n := w.Width * w.Height
	if n == 0 || len(w.Ground.Vertices) != n {
		return Grid{}, fmt.Errorf("heightmap: %dx%d world with %d ground vertices", w.Width, w.Height, len(w.Ground.Vertices))
	}
	g := Grid{
		Width:     w.Width,
		Height:    w.Height,
		Spacing:   w.Spacing,
		Heights:   make([]float32, n),
		Submerged: make([]bool, n),
		Anchors:   []mgl32.Vec2{{w.Ship[0], w.Ship[2]}, {w.Mansion[0], w.Mansion[2]}},
	}
	for i, v := range w.Ground.Vertices {
		g.Heights[i] = v[1]
	}
	for _, v := range w.Water.Vertices {
		i, j, ok := g.cell(v[0], v[2])
		if !ok {
			continue
		}
		idx := i*g.Height + j
		if v[1]+w.Water.Offset[1] > g.Heights[idx] {
			g.Submerged[idx] = true
		}
	}
	return g, nil
}

func (g Grid) cell(x, z float32) (int, int, bool) {
	i := int(math.Round(float64(x/g.Spacing))) + g.Width/2
	j := int(math.Round(float64(z/g.Spacing))) + g.Height/2
	return i, j, i >= 0 && j >= 0 && i < g.Width && j < g.Height
}

// Options controls Render.
type Options struct {
	// Scale is the output pixels per grid cell. Values below 1 mean 1.
	Scale int
	// Caption is drawn in the top-left corner when non-empty.
	Caption string
}

// Render draws one pixel per grid vertex, x to the right and z downward,
// then upscales it with Catmull-Rom filtering.
func Render(g Grid, opts Options) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))

	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, h := range g.Heights {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for i := 0; i < g.Width; i++ {
		for j := 0; j < g.Height; j++ {
			idx := i*g.Height + j
			c := shade((g.Heights[idx] - lo) / span)
			if g.Submerged[idx] {
				c = blend(c, water, 0.75)
			}
			src.SetRGBA(i, j, c)
		}
	}

	scale := max(opts.Scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	for _, a := range g.Anchors {
		i, j, ok := g.cell(a[0], a[1])
		if !ok {
			continue
		}
		r := max(scale, 2)
		mark := image.Rect(i*scale-r/2, j*scale-r/2, i*scale+r/2+1, j*scale+r/2+1)
		draw.Draw(dst, mark.Intersect(dst.Bounds()), image.NewUniform(anchor), image.Point{}, draw.Src)
	}

	if opts.Caption != "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 13),
		}
		d.DrawString(opts.Caption)
	}
	return dst
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("heightmap: encode png: %w", err)
	}
	return nil
}

// shade maps a normalized height to the terrain palette.
func shade(t float32) color.RGBA {
	switch {
	case t < 0.6:
		return blend(lowland, highland, t/0.6)
	default:
		return blend(highland, peak, (t-0.6)/0.4)
	}
}

func blend(a, b color.RGBA, t float32) color.RGBA {
	t = max(0, min(t, 1))
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
