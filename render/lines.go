// Package render keeps the visible lines of drawn strokes, projects world
// positions to the screen and rasterizes stroke previews.
package render

import (
	"image/color"
	"sort"

	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
)

// DefaultWidth is the width of new lines in world units
const DefaultWidth = 0.05

var (
	DrawColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	LineColor = color.RGBA{B: 0xff, A: 0xff}
)

// Line is a polyline drawn from its origin. Positions are relative to
// the origin.
type Line struct {
	ID        int32
	Origin    model.Vector3
	Positions []model.Vector3
	Width     float64
	Color     color.RGBA
}

// World returns the line's positions in world space
func (l Line) World() []model.Vector3 {
	out := make([]model.Vector3, len(l.Positions))
	for i, p := range l.Positions {
		out[i] = p.Add(l.Origin)
	}
	return out
}

// Lines owns the rendered lines, indexed by stroke id
type Lines struct {
	width float64
	lines map[int32]*Line
}

func NewLines(width float64) *Lines {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Lines{
		width: width,
		lines: make(map[int32]*Line),
	}
}

// Begin creates an empty line for a stroke, replacing any line with
// the same id
func (l *Lines) Begin(id int32, origin model.Vector3) {
	l.lines[id] = &Line{
		ID:     id,
		Origin: origin,
		Width:  l.width,
		Color:  DrawColor,
	}
}

// Append adds a world position to a line
func (l *Lines) Append(id int32, pos model.Vector3) bool {
	line, ok := l.lines[id]
	if !ok {
		log.Trace.Printf("render: no line %d", id)
		return false
	}
	line.Positions = append(line.Positions, pos.Sub(line.Origin))
	return true
}

func (l *Lines) Width(id int32) (float64, bool) {
	line, ok := l.lines[id]
	if !ok {
		return 0, false
	}
	return line.Width, true
}

func (l *Lines) SetColor(id int32, c color.RGBA) bool {
	line, ok := l.lines[id]
	if !ok {
		return false
	}
	line.Color = c
	return true
}

// Destroy removes a line
func (l *Lines) Destroy(id int32) bool {
	if _, ok := l.lines[id]; !ok {
		return false
	}
	delete(l.lines, id)
	return true
}

// Line returns a copy of a line
func (l *Lines) Line(id int32) (Line, bool) {
	line, ok := l.lines[id]
	if !ok {
		return Line{}, false
	}
	cp := *line
	cp.Positions = append([]model.Vector3(nil), line.Positions...)
	return cp, true
}

// IDs returns the ids of all lines in ascending order
func (l *Lines) IDs() []int32 {
	ids := make([]int32, 0, len(l.lines))
	for id := range l.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (l *Lines) Len() int {
	return len(l.lines)
}
