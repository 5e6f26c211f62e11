// Package recognizer classifies drawn strokes against template gestures
// using point-cloud matching. Both sides are resampled, rotated to their
// indicative angle, scaled to a unit extent and centered before a greedy
// weighted matching distance is taken, so the result does not depend on
// where the stroke was drawn, how large it is or how it is rotated.
package recognizer

import (
	"math"

	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
)

const (
	// DefaultPoints is the number of points every cloud is resampled to
	DefaultPoints = 32

	// DefaultMinScore accepts the best template whatever its score
	DefaultMinScore = 0.0

	// minPoints is the smallest candidate that can be classified
	minPoints = 2
)

// unitDiagonal is the diagonal of the unit box clouds are scaled into
var unitDiagonal = math.Sqrt2

// Config holds recognizer configuration
type Config struct {
	Points            int
	MinScore          float64
	RotationInvariant bool
}

func DefaultConfig() Config {
	return Config{
		Points:            DefaultPoints,
		MinScore:          DefaultMinScore,
		RotationInvariant: true,
	}
}

type template struct {
	name  string
	cloud []vec
}

// Recognizer matches candidates against a fixed set of templates.
// Templates are normalized once on construction; a Recognizer is
// read-only afterwards and safe for concurrent use.
type Recognizer struct {
	cfg       Config
	templates []template
}

// New prepares templates for matching. Templates without points are skipped.
func New(cfg Config, templates []model.TemplateGesture) *Recognizer {
	if cfg.Points < minPoints {
		cfg.Points = DefaultPoints
	}

	r := &Recognizer{
		cfg:       cfg,
		templates: make([]template, 0, len(templates)),
	}
	for _, t := range templates {
		if len(t.Points) == 0 {
			log.Warning.Printf("skipping template %q without points", t.Name)
			continue
		}
		r.templates = append(r.templates, template{
			name:  t.Name,
			cloud: normalize(t.Points, cfg.Points, cfg.RotationInvariant),
		})
	}
	return r
}

// Classify matches a candidate against templates with the default configuration
func Classify(candidate model.Stroke, templates []model.TemplateGesture) model.ClassificationResult {
	return New(DefaultConfig(), templates).Classify(candidate)
}

func (r *Recognizer) Config() Config {
	return r.cfg
}

// Len returns the number of usable templates
func (r *Recognizer) Len() int {
	return len(r.templates)
}

// Classify returns the closest template class and its score.
// Candidates with fewer than two points, an empty template set and
// a best score below the configured minimum all yield NoMatch.
func (r *Recognizer) Classify(candidate model.Stroke) model.ClassificationResult {
	noMatch := model.ClassificationResult{Class: model.NoMatch}

	if len(candidate) < minPoints {
		log.Trace.Printf("classify: candidate has %d points, need %d", len(candidate), minPoints)
		return noMatch
	}
	if len(r.templates) == 0 {
		log.Trace.Printf("classify: no templates")
		return noMatch
	}

	cloud := normalize(candidate, r.cfg.Points, r.cfg.RotationInvariant)

	best := -1
	bestDistance := math.Inf(1)
	for i, t := range r.templates {
		d := greedyCloudMatch(cloud, t.cloud)
		// strict comparison keeps the first template on ties
		if d < bestDistance {
			bestDistance = d
			best = i
		}
	}

	score := distanceToScore(bestDistance)
	log.Trace.Printf("classify: best %q distance %.4f score %.4f", r.templates[best].name, bestDistance, score)

	// a score equal to MinScore still matches
	if score < r.cfg.MinScore {
		noMatch.Score = score
		return noMatch
	}

	return model.ClassificationResult{
		Class: r.templates[best].name,
		Score: score,
	}
}

func distanceToScore(d float64) float64 {
	score := 1 - d/unitDiagonal
	if score < 0 || math.IsNaN(score) {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// greedyCloudMatch tries several start points in both directions and
// returns the smallest weighted matching distance
func greedyCloudMatch(a, b []vec) float64 {
	n := len(a)
	step := int(math.Floor(math.Sqrt(float64(n))))
	if step < 1 {
		step = 1
	}

	min := math.Inf(1)
	for i := 0; i < n; i += step {
		d1 := cloudDistance(a, b, i)
		d2 := cloudDistance(b, a, i)
		min = math.Min(min, math.Min(d1, d2))
	}
	return min
}

// cloudDistance matches every point of a, starting at start, to the closest
// unused point of b. Earlier matches weigh more. The result is the weighted
// mean distance.
func cloudDistance(a, b []vec, start int) float64 {
	n := len(a)
	matched := make([]bool, len(b))

	var sum, totalWeight float64
	i := start
	for {
		index := -1
		min := math.Inf(1)
		for j := range b {
			if matched[j] {
				continue
			}
			d := a[i].distance(b[j])
			if d < min {
				min = d
				index = j
			}
		}
		if index < 0 {
			break
		}
		matched[index] = true

		weight := 1 - float64((i-start+n)%n)/float64(n)
		sum += weight * min
		totalWeight += weight

		i = (i + 1) % n
		if i == start {
			break
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}
