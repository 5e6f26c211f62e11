// Package capture accumulates the points of the stroke being drawn.
package capture

import (
	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
)

// Recorder collects points for one stroke at a time.
// It is owned by the frame loop and is not safe for concurrent use.
type Recorder struct {
	lastID int32
	active bool
	points []model.Point
}

func NewRecorder() *Recorder {
	return &Recorder{lastID: -1}
}

// Begin starts a new stroke and returns its id.
// An uncommitted stroke is abandoned.
func (r *Recorder) Begin() int32 {
	if r.active && len(r.points) > 0 {
		log.Trace.Printf("abandoning stroke %d with %d points", r.lastID, len(r.points))
	}
	r.lastID++
	r.active = true
	r.points = r.points[:0]
	return r.lastID
}

// AddPoint appends a screen position to the active stroke.
// The y axis is inverted.
func (r *Recorder) AddPoint(screen model.Vector2) {
	if !r.active {
		return
	}
	r.points = append(r.points, model.Point{
		X:        screen.X,
		Y:        -screen.Y,
		StrokeID: r.lastID,
	})
}

// Commit returns the active stroke and clears the accumulator
func (r *Recorder) Commit() model.Stroke {
	stroke := make(model.Stroke, len(r.points))
	copy(stroke, r.points)
	r.points = r.points[:0]
	r.active = false
	return stroke
}

// Discard abandons the active stroke
func (r *Recorder) Discard() {
	r.points = r.points[:0]
	r.active = false
}

func (r *Recorder) Active() bool {
	return r.active
}

func (r *Recorder) Len() int {
	return len(r.points)
}

// StrokeID returns the id of the most recently begun stroke, -1 if none
func (r *Recorder) StrokeID() int32 {
	return r.lastID
}
