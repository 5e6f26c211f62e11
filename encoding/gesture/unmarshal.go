package gesture

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type xmlGesture struct {
	XMLName xml.Name    `xml:"Gesture"`
	Name    string      `xml:"Name,attr"`
	Strokes []xmlStroke `xml:"Stroke"`
}

type xmlStroke struct {
	Index  int        `xml:"index,attr"`
	Points []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	X float64 `xml:"X,attr"`
	Y float64 `xml:"Y,attr"`
	T int64   `xml:"T,attr"`
}

func (g *Gesture) unmarshalXML(data []byte) error {
	var doc xmlGesture
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, "invalid xml gesture")
	}

	g.Name = className(doc.Name)
	g.Format = XML
	g.Strokes = make([]Stroke, 0, len(doc.Strokes))
	for _, s := range doc.Strokes {
		stroke := Stroke{Points: make([]Point, len(s.Points))}
		for i, p := range s.Points {
			stroke.Points[i] = Point{X: p.X, Y: p.Y, T: p.T}
		}
		g.Strokes = append(g.Strokes, stroke)
	}
	return nil
}

type yamlGesture struct {
	Name    string        `yaml:"name"`
	Strokes [][][]float64 `yaml:"strokes"`
}

func (g *Gesture) unmarshalYAML(data []byte) error {
	var doc yamlGesture
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "invalid yaml gesture")
	}

	g.Name = className(doc.Name)
	g.Format = YAML
	g.Strokes = make([]Stroke, 0, len(doc.Strokes))
	for i, s := range doc.Strokes {
		stroke := Stroke{Points: make([]Point, len(s))}
		for j, xy := range s {
			if len(xy) != 2 {
				return fmt.Errorf("stroke %d point %d: want [x, y], got %d values", i, j, len(xy))
			}
			stroke.Points[j] = Point{X: xy[0], Y: xy[1]}
		}
		g.Strokes = append(g.Strokes, stroke)
	}
	return nil
}
