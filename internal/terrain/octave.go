package terrain

import "github.com/go-gl/mathgl/mgl32"

// Octave is one layer of coherent noise with its own scale, offset and output amplitude.
type Octave struct {
	Scale     mgl32.Vec2
	Offset    mgl32.Vec2
	Amplitude float32
}

// Sample maps unit noise at Scale*baseScale*pos + Offset + off into
// [-Amplitude/2, +Amplitude/2].
func (o Octave) Sample(src Source, baseScale float32, pos mgl32.Vec2, off [2]int) float32 {
	x := float64(o.Scale[0]*baseScale*pos[0]) + float64(o.Offset[0]) + float64(off[0])
	y := float64(o.Scale[1]*baseScale*pos[1]) + float64(o.Offset[1]) + float64(off[1])

	v := float32(src.Noise2D(x, y))
	return v*o.Amplitude - o.Amplitude/2
}

// Octaves is an ordered octave list. Its sample is the plain sum.
type Octaves []Octave

// Sample sums every octave at pos. An empty list samples to zero.
func (oo Octaves) Sample(src Source, baseScale float32, pos mgl32.Vec2, off [2]int) float32 {
	var total float32
	for _, o := range oo {
		total += o.Sample(src, baseScale, pos, off)
	}
	return total
}

// Field bundles the noise context shared by every octave sample of one world:
// the backend, the base scale applied before each octave's own scale and the
// per-world random offset.
type Field struct {
	Source    Source
	BaseScale float32
	Offset    [2]int
}

// Sample evaluates octaves at pos in this field.
func (f Field) Sample(octaves Octaves, pos mgl32.Vec2) float32 {
	return octaves.Sample(f.Source, f.BaseScale, pos, f.Offset)
}
