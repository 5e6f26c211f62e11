package gesture

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrdraw/vrdraw/model"
)

const arrowXML = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<Gesture Name="arrow_head~03" Subject="10" Speed="medium" Number="3" NumPts="5">
  <Stroke index="1" Finger="index" Hand="right">
    <Point X="100" Y="200" T="0" Pressure="0" />
    <Point X="150" Y="250" T="16" Pressure="0" />
  </Stroke>
  <Stroke index="2" Finger="index" Hand="right">
    <Point X="150" Y="250" T="40" Pressure="0" />
    <Point X="100" Y="300" T="56" Pressure="0" />
    <Point X="90" Y="310" T="72" Pressure="0" />
  </Stroke>
</Gesture>`

const lineYAML = `
name: line
strokes:
  - [[0, 0], [5, 0.5], [10, 1]]
`

func TestDecodeXML(t *testing.T) {
	var g Gesture
	require.NoError(t, g.UnmarshalBinary([]byte(arrowXML)))

	assert.Equal(t, "arrow head", g.Name)
	assert.Equal(t, XML, g.Format)
	require.Len(t, g.Strokes, 2)
	assert.Equal(t, 5, g.NumPoints())
	assert.Equal(t, Point{X: 150, Y: 250, T: 16}, g.Strokes[0].Points[1])

	tmpl := g.Template()
	require.Len(t, tmpl.Points, 5)
	assert.Equal(t, model.Point{X: 100, Y: 200, StrokeID: 0}, tmpl.Points[0])
	assert.Equal(t, model.Point{X: 90, Y: 310, StrokeID: 1}, tmpl.Points[4])
}

func TestDecodeYAML(t *testing.T) {
	tmpl, err := Decode(Source{Name: "line.yaml", Data: []byte(lineYAML)})
	require.NoError(t, err)

	assert.Equal(t, "line", tmpl.Name)
	assert.Equal(t, []model.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 0.5},
		{X: 10, Y: 1},
	}, tmpl.Points)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"empty xml":   `<Gesture Name="line~01"></Gesture>`,
		"nameless":    "strokes:\n  - [[0, 0], [1, 1]]\n",
		"bad pair":    "name: dot\nstrokes:\n  - [[0, 0, 3]]\n",
		"broken xml":  `<Gesture Name="x"><Stroke>`,
		"broken yaml": "name: [\n",
	}

	for name, data := range cases {
		_, err := Decode(Source{Name: name, Data: []byte(data)})
		assert.Error(t, err, name)
	}

	_, err := Decode(Source{Name: "empty", Data: []byte(`<Gesture Name="line~01"></Gesture>`)})
	assert.Equal(t, ErrNoPoints, errors.Cause(err))

	_, err = Decode(Source{Name: "nameless", Data: []byte(cases["nameless"])})
	assert.Equal(t, ErrNoName, errors.Cause(err))
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "line", className("line~01"))
	assert.Equal(t, "five point star", className("five_point_star~10"))
	assert.Equal(t, "x", className("x"))
	assert.Equal(t, "a~b", className("a~b~2"))
}

func TestIsDefinition(t *testing.T) {
	assert.True(t, IsDefinition("line.xml"))
	assert.True(t, IsDefinition("LINE.YAML"))
	assert.True(t, IsDefinition("x.yml"))
	assert.False(t, IsDefinition("README.md"))
}
