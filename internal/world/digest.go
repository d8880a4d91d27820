package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"lcos-worldgen/internal/terrain"
)

// Namespace scopes world IDs.
var Namespace = uuid.MustParse("6f1c2d0a-3b7e-5c41-9a8e-2f4d6b1e7c93")

// Fingerprint hashes the seed, both meshes and the placement list of w.
// Timings are excluded.
func Fingerprint(w *World) uint64 {
	h := hasher{d: xxhash.New()}
	h.u64(uint64(w.Seed))
	h.u64(uint64(w.Width))
	h.u64(uint64(w.Height))
	h.mesh(w.Ground)
	h.mesh(w.Water)
	h.u64(uint64(len(w.Placements)))
	for _, p := range w.Placements {
		_, _ = h.d.WriteString(p.Kind)
		h.u64(uint64(p.Variant))
		h.vec(p.Position)
	}
	return h.d.Sum64()
}

// NewID derives the world ID from its digest.
func NewID(digest uint64) uuid.UUID {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], digest)
	return uuid.NewSHA1(Namespace, b[:])
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) f32(f float32) {
	binary.LittleEndian.PutUint32(h.buf[:4], math.Float32bits(f))
	_, _ = h.d.Write(h.buf[:4])
}

func (h *hasher) vec(v [3]float32) {
	h.f32(v[0])
	h.f32(v[1])
	h.f32(v[2])
}

func (h *hasher) mesh(m terrain.Mesh) {
	h.u64(uint64(len(m.Vertices)))
	for _, v := range m.Vertices {
		h.vec(v)
	}
	h.u64(uint64(len(m.Triangles)))
	for _, t := range m.Triangles {
		h.u64(uint64(t[0]))
		h.u64(uint64(t[1]))
		h.u64(uint64(t[2]))
	}
	h.vec(m.Offset)
}
