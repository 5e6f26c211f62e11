package recognizer

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrdraw/vrdraw/model"
)

func polyline(id int32, pts ...[2]float64) []model.Point {
	out := make([]model.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, model.Point{X: p[0], Y: p[1], StrokeID: id})
	}
	return out
}

func circle(id int32, n int) []model.Point {
	out := make([]model.Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n-1)
		out = append(out, model.Point{X: math.Cos(a), Y: math.Sin(a), StrokeID: id})
	}
	return out
}

func testTemplates() []model.TemplateGesture {
	return []model.TemplateGesture{
		{Name: "line", Points: polyline(0, [2]float64{0, 0}, [2]float64{10, 0})},
		{Name: "circle", Points: circle(0, 64)},
		{Name: "triangle", Points: polyline(0,
			[2]float64{0, 0}, [2]float64{5, 8}, [2]float64{10, 0}, [2]float64{0, 0})},
		{Name: "zigzag", Points: polyline(0,
			[2]float64{0, 0}, [2]float64{2, 4}, [2]float64{4, 0}, [2]float64{6, 4}, [2]float64{8, 0})},
		{Name: "check", Points: polyline(0,
			[2]float64{0, 3}, [2]float64{2, 0}, [2]float64{7, 8})},
		// two strokes
		{Name: "x", Points: append(
			polyline(0, [2]float64{0, 0}, [2]float64{6, 6}),
			polyline(1, [2]float64{6, 0}, [2]float64{0, 6})...)},
	}
}

func transform(points []model.Point, angle, s, tx, ty float64) model.Stroke {
	cos, sin := math.Cos(angle), math.Sin(angle)
	out := make(model.Stroke, len(points))
	for i, p := range points {
		x := p.X*cos - p.Y*sin
		y := p.X*sin + p.Y*cos
		out[i] = model.Point{X: x*s + tx, Y: y*s + ty, StrokeID: p.StrokeID}
	}
	return out
}

func TestTemplatesClassifyAsThemselves(t *testing.T) {
	templates := testTemplates()
	r := New(DefaultConfig(), templates)
	require.Equal(t, len(templates), r.Len())

	for _, tmpl := range templates {
		res := r.Classify(tmpl.Points)
		assert.Equal(t, tmpl.Name, res.Class)
		assert.InDelta(t, 1.0, res.Score, 1e-6, tmpl.Name)
	}
}

func TestClassifyInvariantUnderSimilarity(t *testing.T) {
	templates := testTemplates()
	r := New(DefaultConfig(), templates)

	cases := []struct {
		angle, scale, tx, ty float64
	}{
		{0, 1, 250, -300},
		{0, 7.5, 0, 0},
		{0, 0.01, 3, 3},
		{math.Pi / 3, 1, 0, 0},
		{-2.1, 42, -1000, 55},
	}

	for _, tmpl := range templates {
		for _, c := range cases {
			res := r.Classify(transform(tmpl.Points, c.angle, c.scale, c.tx, c.ty))
			assert.Equal(t, tmpl.Name, res.Class, "%s %+v", tmpl.Name, c)
			assert.Greater(t, res.Score, 0.9, "%s %+v", tmpl.Name, c)
		}
	}
}

func TestClassifyNoisyLine(t *testing.T) {
	r := New(DefaultConfig(), testTemplates())

	stroke := model.Stroke{}
	for i := 0; i < 40; i++ {
		jitter := 0.15 * math.Sin(float64(i)*1.7)
		stroke = append(stroke, model.Point{X: 100 + float64(i)*3, Y: -200 + float64(i)*1.5 + jitter, StrokeID: 7})
	}

	res := r.Classify(stroke)
	assert.Equal(t, "line", res.Class)
	assert.Greater(t, res.Score, 0.9)
}

func TestClassifyScoreBounds(t *testing.T) {
	r := New(DefaultConfig(), testTemplates())

	strokes := []model.Stroke{
		polyline(0, [2]float64{0, 0}, [2]float64{0, 0}),
		polyline(0, [2]float64{0, 0}, [2]float64{1, 1}),
		polyline(0, [2]float64{0, 0}, [2]float64{1e9, -1e9}, [2]float64{3, 4}),
		transform(circle(0, 10), 1, 1, 0, 0),
		polyline(0, [2]float64{0, 0}, [2]float64{5, 5}, [2]float64{0, 10}, [2]float64{5, 15}),
	}
	for _, s := range strokes {
		res := r.Classify(s)
		assert.GreaterOrEqual(t, res.Score, 0.0)
		assert.LessOrEqual(t, res.Score, 1.0)
	}
}

func TestClassifyDegenerateCandidates(t *testing.T) {
	r := New(DefaultConfig(), testTemplates())

	assert.Equal(t, model.ClassificationResult{Class: model.NoMatch}, r.Classify(nil))
	assert.Equal(t, model.ClassificationResult{Class: model.NoMatch}, r.Classify(model.Stroke{}))
	assert.Equal(t, model.ClassificationResult{Class: model.NoMatch},
		r.Classify(polyline(0, [2]float64{4, 4})))
}

func TestClassifyEmptyTemplates(t *testing.T) {
	stroke := polyline(0, [2]float64{0, 0}, [2]float64{10, 0})

	for i := 0; i < 3; i++ {
		assert.Equal(t, model.ClassificationResult{Class: model.NoMatch}, Classify(stroke, nil))
		assert.Equal(t, model.ClassificationResult{Class: model.NoMatch},
			Classify(stroke, []model.TemplateGesture{{Name: "empty"}}))
	}
}

func TestClassifyDeterministic(t *testing.T) {
	r := New(DefaultConfig(), testTemplates())
	stroke := polyline(3, [2]float64{0, 0}, [2]float64{3, 5}, [2]float64{7, 1}, [2]float64{9, 9})

	first := r.Classify(stroke)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, r.Classify(stroke))
	}
}

func TestClassifyTieKeepsFirstTemplate(t *testing.T) {
	line := polyline(0, [2]float64{0, 0}, [2]float64{10, 0})
	templates := []model.TemplateGesture{
		{Name: "first", Points: line},
		{Name: "second", Points: line},
	}

	res := Classify(line, templates)
	assert.Equal(t, "first", res.Class)
}

func TestClassifyMinScore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScore = 0.99
	r := New(cfg, []model.TemplateGesture{{Name: "circle", Points: circle(0, 64)}})

	res := r.Classify(polyline(0, [2]float64{0, 0}, [2]float64{10, 0}))
	assert.False(t, res.Matched())
	assert.Less(t, res.Score, 0.99)

	res = r.Classify(circle(0, 64))
	assert.Equal(t, "circle", res.Class)
}

func TestClassifyMinScoreBoundary(t *testing.T) {
	templates := []model.TemplateGesture{{Name: "circle", Points: circle(0, 64)}}
	candidate := polyline(0, [2]float64{0, 0}, [2]float64{10, 0})
	score := New(DefaultConfig(), templates).Classify(candidate).Score
	require.Greater(t, score, 0.0)
	require.Less(t, score, 1.0)

	// a score equal to the threshold matches
	cfg := DefaultConfig()
	cfg.MinScore = score
	res := New(cfg, templates).Classify(candidate)
	assert.Equal(t, "circle", res.Class)
	assert.Equal(t, score, res.Score)

	cfg.MinScore = math.Nextafter(score, 2)
	res = New(cfg, templates).Classify(candidate)
	assert.False(t, res.Matched())
	assert.Equal(t, score, res.Score)
}

func TestClassifyBatch(t *testing.T) {
	templates := testTemplates()
	r := New(DefaultConfig(), templates)

	candidates := make([]model.Stroke, 0, len(templates)*3)
	for i := 0; i < 3; i++ {
		for _, tmpl := range templates {
			candidates = append(candidates, transform(tmpl.Points, float64(i), float64(i+1), 0, 0))
		}
	}

	results, err := r.ClassifyBatch(context.Background(), candidates, 4)
	require.NoError(t, err)
	require.Len(t, results, len(candidates))
	for i, res := range results {
		assert.Equal(t, templates[i%len(templates)].Name, res.Class)
	}
}

func TestClassifyBatchCancelled(t *testing.T) {
	r := New(DefaultConfig(), testTemplates())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []model.Stroke{polyline(0, [2]float64{0, 0}, [2]float64{10, 0})}
	results, err := r.ClassifyBatch(ctx, candidates, 1)
	assert.Equal(t, context.Canceled, err)
	assert.Len(t, results, 1)
}

func TestResampleCount(t *testing.T) {
	pts := polyline(0, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
	for _, n := range []int{2, 3, 16, 32, 100} {
		assert.Len(t, resample(pts, n), n)
	}
	assert.Len(t, resample(nil, 8), 8)
	assert.Len(t, resample(polyline(0, [2]float64{2, 2}, [2]float64{2, 2}), 8), 8)
}

func TestResampleSkipsStrokeJumps(t *testing.T) {
	pts := append(
		polyline(0, [2]float64{0, 0}, [2]float64{1, 0}),
		polyline(1, [2]float64{100, 0}, [2]float64{101, 0})...)
	assert.InDelta(t, 2.0, pathLength(pts), 1e-9)

	cloud := resample(pts, 5)
	for _, p := range cloud {
		inFirst := p.x >= 0 && p.x <= 1
		inSecond := p.x >= 100 && p.x <= 101
		assert.True(t, inFirst || inSecond, "%v", p)
	}
}
