// Package collider derives box collider geometry from the endpoints of a
// drawn line.
package collider

import (
	"math"

	"github.com/vrdraw/vrdraw/model"
)

// Synthesizer computes collider specs.
// The zero value leaves level lines with a zero height.
type Synthesizer struct {
	// MinHeight is the smallest height a collider gets
	MinHeight float64
}

// Synthesize computes the collider of a line with the default Synthesizer
func Synthesize(endpoints model.LineEndpoints, visualLineWidth float64) model.ColliderSpec {
	return Synthesizer{}.Synthesize(endpoints, visualLineWidth)
}

// Synthesize returns a box spanning start to end, centered between them,
// as high as the vertical delta and as wide as the rendered line. The box
// is turned about the vertical axis to follow the line; the yaw sign is
// inverted to match the engine's left handed rotation.
func (s Synthesizer) Synthesize(endpoints model.LineEndpoints, visualLineWidth float64) model.ColliderSpec {
	start, end := endpoints.Start, endpoints.End

	length := start.Distance(end)
	height := math.Max(math.Abs(start.Y-end.Y), s.MinHeight)
	width := math.Max(visualLineWidth, 0)

	yaw := -radToDeg(math.Atan2(end.Z-start.Z, end.X-start.X))
	if yaw == 0 {
		// avoid -0
		yaw = 0
	}

	return model.ColliderSpec{
		Center:     start.Add(end).Div(2),
		Size:       model.V3(length, height, width),
		YawDegrees: yaw,
	}
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
