package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lcos-worldgen/internal/config"
)

// Camera orbits a target point. The orbit distance lives in config so zoom
// survives a regenerate.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target mgl32.Vec3
	// Yaw and Pitch are in degrees. Pitch is kept within (-89, 89).
	Yaw   float32
	Pitch float32
}

func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(max(height, 1)),
		FOV:         fov,
		NearPlane:   0.5,
		FarPlane:    5000.0,
		Yaw:         45,
		Pitch:       35,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Position returns the eye position on the orbit sphere.
func (c *Camera) Position() mgl32.Vec3 {
	d := float32(config.GetCameraDistance())
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	offset := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	return c.Target.Add(offset.Mul(d))
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Orbit rotates the camera by mouse deltas in degrees.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	if c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch = max(-89, min(89, c.Pitch+dPitch))
}

// Zoom scales the orbit distance; positive steps move closer.
func (c *Camera) Zoom(steps float64) {
	config.SetCameraDistance(config.GetCameraDistance() * math.Pow(0.9, steps))
}

// Resize updates the aspect ratio for a new framebuffer size.
func (c *Camera) Resize(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}
