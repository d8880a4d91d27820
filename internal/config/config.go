package config

import "sync"

// Preview holds the viewer window and camera configuration.
type Preview struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Title    string  `toml:"title"`
	VSync    bool    `toml:"vsync"`
	FOV      float64 `toml:"fov"`
	Distance float64 `toml:"distance"`
	// Wireframe draws the meshes as lines.
	Wireframe bool `toml:"wireframe"`
}

// DefaultPreview returns the viewer defaults.
func DefaultPreview() Preview {
	return Preview{
		Width:    1280,
		Height:   720,
		Title:    "lcos-worldgen preview",
		VSync:    true,
		FOV:      60,
		Distance: 220,
	}
}

// CameraSettings holds the live orbit distance the viewer zooms with.
type CameraSettings struct {
	mu       sync.RWMutex
	distance float64
}

var globalCameraSettings = &CameraSettings{
	distance: 220, // default value
}

// GetCameraDistance returns the current orbit distance in world units
func GetCameraDistance() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.distance
}

// SetCameraDistance sets the orbit distance in world units
func SetCameraDistance(distance float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	// Clamp to reasonable values
	if distance < 10 {
		distance = 10
	}
	if distance > 2000 {
		distance = 2000
	}

	globalCameraSettings.distance = distance
}
