package model

import "fmt"

// Point is a single sample of a drawn stroke in screen space.
// Y is inverted relative to raw screen coordinates.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	StrokeID int32   `json:"strokeId"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f #%d)", p.X, p.Y, p.StrokeID)
}

// Stroke is an ordered sequence of points collected while drawing
type Stroke []Point

// ID returns the stroke id of the first point, or -1 for an empty stroke
func (s Stroke) ID() int32 {
	if len(s) == 0 {
		return -1
	}
	return s[0].StrokeID
}

// TemplateGesture is a labelled reference gesture
type TemplateGesture struct {
	Name   string
	Points []Point
}

// NoMatch is the class reported when no template is good enough
const NoMatch = ""

// ClassificationResult is the outcome of matching a stroke against templates
type ClassificationResult struct {
	Class string  `json:"class"`
	Score float64 `json:"score"`
}

// Matched reports whether the result names a template class
func (r ClassificationResult) Matched() bool {
	return r.Class != NoMatch
}

// LineEndpoints are the world positions at stroke begin and end
type LineEndpoints struct {
	Start Vector3
	End   Vector3
}

// ColliderSpec describes an oriented box collider.
// Size is (length, height, width).
type ColliderSpec struct {
	Center     Vector3 `json:"center"`
	Size       Vector3 `json:"size"`
	YawDegrees float64 `json:"yaw"`
}
