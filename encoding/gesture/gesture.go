// Package gesture decodes template gesture definitions.
//
// Two formats are understood. The XML format of the $P point-cloud
// data sets:
//
//	<Gesture Name="line~01">
//	  <Stroke index="1">
//	    <Point X="10" Y="20" T="0" />
//	  </Stroke>
//	</Gesture>
//
// and a YAML format with one list of [x, y] pairs per stroke:
//
//	name: line
//	strokes:
//	  - [[10, 20], [50, 20]]
package gesture

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vrdraw/vrdraw/model"
)

type Format int

const (
	XML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	}
	return "unknown"
}

var (
	ErrNoPoints = errors.New("gesture has no points")
	ErrNoName   = errors.New("gesture has no name")
)

// Point is a raw sample as stored in a definition
type Point struct {
	X float64
	Y float64
	T int64
}

type Stroke struct {
	Points []Point
}

// Gesture is a decoded definition
type Gesture struct {
	Name    string
	Format  Format
	Strokes []Stroke
}

// Source is a raw definition, Name is used in error messages
type Source struct {
	Name string
	Data []byte
}

// IsDefinition reports whether a file name looks like a gesture definition
func IsDefinition(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".xml") ||
		strings.HasSuffix(lower, ".yaml") ||
		strings.HasSuffix(lower, ".yml")
}

// Decode parses a source into a template
func Decode(src Source) (model.TemplateGesture, error) {
	var g Gesture
	if err := g.UnmarshalBinary(src.Data); err != nil {
		return model.TemplateGesture{}, errors.Wrapf(err, "can't decode %s", src.Name)
	}
	return g.Template(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The format is
// sniffed from the first non blank byte.
func (g *Gesture) UnmarshalBinary(data []byte) error {
	var err error
	switch detectFormat(data) {
	case XML:
		err = g.unmarshalXML(data)
	default:
		err = g.unmarshalYAML(data)
	}
	if err != nil {
		return err
	}

	if g.Name == "" {
		return ErrNoName
	}
	if g.NumPoints() == 0 {
		return ErrNoPoints
	}
	return nil
}

func detectFormat(data []byte) Format {
	trimmed := strings.TrimLeft(string(data), " \t\r\n\ufeff")
	if strings.HasPrefix(trimmed, "<") {
		return XML
	}
	return YAML
}

func (g *Gesture) NumPoints() int {
	n := 0
	for _, s := range g.Strokes {
		n += len(s.Points)
	}
	return n
}

// Template flattens the strokes into one point sequence, tagging each
// point with the index of its stroke
func (g *Gesture) Template() model.TemplateGesture {
	t := model.TemplateGesture{
		Name:   g.Name,
		Points: make([]model.Point, 0, g.NumPoints()),
	}
	for i, s := range g.Strokes {
		for _, p := range s.Points {
			t.Points = append(t.Points, model.Point{X: p.X, Y: p.Y, StrokeID: int32(i)})
		}
	}
	return t
}

// className drops the sample suffix of data set names,
// "arrow_head~03" becomes "arrow head"
func className(name string) string {
	if i := strings.LastIndex(name, "~"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
}
