package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lcos-worldgen/internal/graphics"
	"lcos-worldgen/internal/input"
)

// mouseSensitivity is degrees of orbit per pixel of drag.
const mouseSensitivity = 0.3

func setupInputHandlers(window *glfw.Window, im *input.InputManager, c *graphics.Camera) {
	im.Attach(window)

	lastX, lastY := window.GetCursorPos()
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if im.IsActive(input.ActionOrbit) {
			c.Orbit(float32(xpos-lastX)*mouseSensitivity, float32(ypos-lastY)*mouseSensitivity)
		}
		lastX, lastY = xpos, ypos
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		c.Zoom(yoff)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		c.Resize(width, height)
	})
}

// handleActions applies this frame's edges. It must run before PostUpdate.
func handleActions(window *glfw.Window, im *input.InputManager, c *graphics.Camera, r *graphics.TerrainRenderer, regenerate func()) {
	if im.JustPressed(input.ActionQuit) {
		window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		r.Wireframe = !r.Wireframe
	}
	if im.JustPressed(input.ActionRegenerate) {
		regenerate()
	}
	if im.JustPressed(input.ActionZoomIn) {
		c.Zoom(1)
	}
	if im.JustPressed(input.ActionZoomOut) {
		c.Zoom(-1)
	}
}
