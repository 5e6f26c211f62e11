package render

import "github.com/vrdraw/vrdraw/model"

// OrthoCamera looks down the +Z axis. Screen coordinates are in pixels
// with the origin at the bottom left.
type OrthoCamera struct {
	Center        model.Vector3
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

func NewOrthoCamera(width, height, pixelsPerUnit float64) OrthoCamera {
	return OrthoCamera{
		PixelsPerUnit: pixelsPerUnit,
		Width:         width,
		Height:        height,
	}
}

// WorldToScreen projects a world position, ignoring depth
func (c OrthoCamera) WorldToScreen(p model.Vector3) model.Vector2 {
	return model.Vector2{
		X: c.Width/2 + (p.X-c.Center.X)*c.PixelsPerUnit,
		Y: c.Height/2 + (p.Y-c.Center.Y)*c.PixelsPerUnit,
	}
}

// ScreenToWorld maps a screen position back to the plane at depth z
func (c OrthoCamera) ScreenToWorld(s model.Vector2, z float64) model.Vector3 {
	if c.PixelsPerUnit == 0 {
		return model.V3(c.Center.X, c.Center.Y, z)
	}
	return model.Vector3{
		X: c.Center.X + (s.X-c.Width/2)/c.PixelsPerUnit,
		Y: c.Center.Y + (s.Y-c.Height/2)/c.PixelsPerUnit,
		Z: z,
	}
}
