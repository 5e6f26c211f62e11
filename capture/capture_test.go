package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrdraw/vrdraw/model"
)

func TestRecorderCommit(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, int32(-1), r.StrokeID())

	id := r.Begin()
	assert.Equal(t, int32(0), id)

	r.AddPoint(model.Vector2{X: 10, Y: 20})
	r.AddPoint(model.Vector2{X: 11, Y: 22})
	r.AddPoint(model.Vector2{X: 11, Y: 22})

	stroke := r.Commit()
	assert.Len(t, stroke, 3)
	assert.Equal(t, model.Point{X: 10, Y: -20, StrokeID: 0}, stroke[0])
	for _, p := range stroke {
		assert.Equal(t, id, p.StrokeID)
	}

	assert.False(t, r.Active())
	assert.Equal(t, 0, r.Len())
}

func TestRecorderIdsNeverReused(t *testing.T) {
	r := NewRecorder()
	seen := map[int32]bool{}
	for i := 0; i < 5; i++ {
		id := r.Begin()
		assert.False(t, seen[id])
		seen[id] = true
		if i%2 == 0 {
			r.Discard()
		} else {
			r.Commit()
		}
	}
	assert.Equal(t, int32(4), r.StrokeID())
}

func TestRecorderIgnoresPointsWithoutStroke(t *testing.T) {
	r := NewRecorder()
	r.AddPoint(model.Vector2{X: 1, Y: 1})
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Commit())
}

func TestRecorderBeginAbandonsPrevious(t *testing.T) {
	r := NewRecorder()
	r.Begin()
	r.AddPoint(model.Vector2{X: 1, Y: 1})
	id := r.Begin()
	r.AddPoint(model.Vector2{X: 2, Y: 2})

	stroke := r.Commit()
	assert.Len(t, stroke, 1)
	assert.Equal(t, id, stroke.ID())
}

func TestCommittedStrokeIsIndependent(t *testing.T) {
	r := NewRecorder()
	r.Begin()
	r.AddPoint(model.Vector2{X: 1, Y: 1})
	stroke := r.Commit()

	r.Begin()
	r.AddPoint(model.Vector2{X: 5, Y: 5})
	assert.Equal(t, 1.0, stroke[0].X)
}
