package worldfile

// Version is the current file format version.
const Version = 1

type File struct {
	Version    int         `json:"version"`
	ID         string      `json:"id"`
	Seed       int64       `json:"seed"`
	Digest     string      `json:"digest"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Spacing    float32     `json:"spacing"`
	Ship       [3]float32  `json:"ship"`
	Mansion    [3]float32  `json:"mansion"`
	Ground     Mesh        `json:"ground"`
	Water      Mesh        `json:"water"`
	Placements []Placement `json:"placements"`
}

type Mesh struct {
	Vertices  [][3]float32 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	Offset    [3]float32   `json:"offset"`
}

type Placement struct {
	Kind     string     `json:"kind"`
	Variant  int        `json:"variant"`
	Position [3]float32 `json:"position"`
	// Rotation is a quaternion as (w, x, y, z).
	Rotation [4]float32 `json:"rotation"`
}
