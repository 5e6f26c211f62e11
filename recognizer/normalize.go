package recognizer

import (
	"math"

	"github.com/vrdraw/vrdraw/model"
)

type vec struct {
	x, y float64
}

func (v vec) distance(w vec) float64 {
	dx := v.x - w.x
	dy := v.y - w.y
	return math.Sqrt(dx*dx + dy*dy)
}

// normalize turns a point sequence into a cloud of n points with its
// centroid at the origin and its larger side scaled to 1
func normalize(points []model.Point, n int, rotate bool) []vec {
	cloud := resample(points, n)
	if rotate {
		rotateToZero(cloud)
	}
	scale(cloud)
	translateToOrigin(cloud)
	return cloud
}

// pathLength sums segment lengths, skipping jumps between strokes
func pathLength(points []model.Point) float64 {
	var d float64
	for i := 1; i < len(points); i++ {
		if points[i].StrokeID == points[i-1].StrokeID {
			d += distance(points[i-1], points[i])
		}
	}
	return d
}

func distance(p, q model.Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// resample returns n points evenly spaced along the drawn path
func resample(points []model.Point, n int) []vec {
	out := make([]vec, 0, n)
	if len(points) == 0 {
		return append(out, make([]vec, n)...)
	}

	first := vec{points[0].X, points[0].Y}
	interval := pathLength(points) / float64(n-1)
	if interval == 0 {
		for len(out) < n {
			out = append(out, first)
		}
		return out
	}

	out = append(out, first)
	prev := points[0]
	var acc float64
	for i := 1; i < len(points) && len(out) < n; {
		cur := points[i]
		if cur.StrokeID != prev.StrokeID {
			prev = cur
			i++
			continue
		}

		d := distance(prev, cur)
		if d > 0 && acc+d >= interval {
			t := (interval - acc) / d
			q := model.Point{
				X:        prev.X + t*(cur.X-prev.X),
				Y:        prev.Y + t*(cur.Y-prev.Y),
				StrokeID: cur.StrokeID,
			}
			out = append(out, vec{q.X, q.Y})
			// q starts the next segment
			prev = q
			acc = 0
			continue
		}

		acc += d
		prev = cur
		i++
	}

	// rounding can leave the last point out
	last := points[len(points)-1]
	for len(out) < n {
		out = append(out, vec{last.X, last.Y})
	}
	return out
}

func centroid(cloud []vec) vec {
	var c vec
	for _, p := range cloud {
		c.x += p.x
		c.y += p.y
	}
	c.x /= float64(len(cloud))
	c.y /= float64(len(cloud))
	return c
}

// rotateToZero rotates the cloud about its centroid so that the angle
// from the centroid to the first point is zero
func rotateToZero(cloud []vec) {
	if len(cloud) == 0 {
		return
	}
	c := centroid(cloud)
	angle := math.Atan2(c.y-cloud[0].y, c.x-cloud[0].x)
	cos := math.Cos(-angle)
	sin := math.Sin(-angle)
	for i, p := range cloud {
		dx := p.x - c.x
		dy := p.y - c.y
		cloud[i] = vec{
			x: dx*cos - dy*sin + c.x,
			y: dx*sin + dy*cos + c.y,
		}
	}
}

// scale uniformly maps the bounding box so that its larger side is 1
func scale(cloud []vec) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range cloud {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}

	size := math.Max(maxX-minX, maxY-minY)
	if size == 0 || math.IsInf(size, 0) {
		return
	}
	for i, p := range cloud {
		cloud[i] = vec{(p.x - minX) / size, (p.y - minY) / size}
	}
}

func translateToOrigin(cloud []vec) {
	if len(cloud) == 0 {
		return
	}
	c := centroid(cloud)
	for i, p := range cloud {
		cloud[i] = vec{p.x - c.x, p.y - c.y}
	}
}
