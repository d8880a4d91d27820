package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lcos-worldgen/internal/meshing"
	"lcos-worldgen/internal/terrain"
	"lcos-worldgen/internal/world"
)

var (
	groundColor = mgl32.Vec3{0.35, 0.55, 0.25}
	waterColor  = mgl32.Vec3{0.15, 0.35, 0.8}
	lightDir    = mgl32.Vec3{-0.4, -1, -0.3}
)

// meshBuffers is one uploaded indexed mesh.
type meshBuffers struct {
	vao, vbo, ebo uint32
	count         int32
}

func uploadMesh(m terrain.Mesh) *meshBuffers {
	verts, indices := meshing.Interleave(m)
	b := &meshBuffers{count: int32(len(indices))}
	if len(verts) == 0 || len(indices) == 0 {
		return b
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	// Position attribute (location = 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	// Normal attribute (location = 1)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	return b
}

func (b *meshBuffers) draw() {
	if b.vao == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (b *meshBuffers) delete() {
	if b.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
	b.vao = 0
}

// TerrainRenderer draws a world's ground mesh and its translucent water mesh.
type TerrainRenderer struct {
	shader *Shader
	ground *meshBuffers
	water  *meshBuffers
	// Wireframe draws both meshes as lines.
	Wireframe bool
}

// NewTerrainRenderer compiles the terrain shader. A GL context must be current.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	shader, err := NewTerrainShader()
	if err != nil {
		return nil, err
	}
	return &TerrainRenderer{shader: shader}, nil
}

// Load replaces the uploaded meshes with those of w.
func (r *TerrainRenderer) Load(w *world.World) {
	r.unload()
	r.ground = uploadMesh(w.Ground)
	r.water = uploadMesh(w.Water)
}

// Render draws the loaded meshes from camera c.
func (r *TerrainRenderer) Render(c *Camera) {
	if r.ground == nil {
		return
	}
	gl.Enable(gl.DEPTH_TEST)
	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.shader.Use()
	r.shader.SetMat4("proj", c.GetProjectionMatrix())
	r.shader.SetMat4("view", c.GetViewMatrix())
	r.shader.SetVec3("lightDir", lightDir)

	r.shader.SetVec3("baseColor", groundColor)
	r.shader.SetFloat("alpha", 1)
	r.ground.draw()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	r.shader.SetVec3("baseColor", waterColor)
	r.shader.SetFloat("alpha", 0.7)
	r.water.draw()
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Delete releases all GL resources.
func (r *TerrainRenderer) Delete() {
	r.unload()
	r.shader.Delete()
}

func (r *TerrainRenderer) unload() {
	if r.ground != nil {
		r.ground.delete()
		r.ground = nil
	}
	if r.water != nil {
		r.water.delete()
		r.water = nil
	}
}
