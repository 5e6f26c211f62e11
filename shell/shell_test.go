package shell

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrdraw/vrdraw/config"
	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/library"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/physics"
)

func newTestCtxt(t *testing.T) *ShellCtxt {
	cfg := config.Default()
	lib, err := library.Default(cfg.Recognizer())
	require.NoError(t, err)
	return NewShellCtxt(cfg, lib)
}

func templatePoints(t *testing.T, ctx *ShellCtxt, name string) []model.Point {
	for _, tmpl := range ctx.Library.Templates() {
		if tmpl.Name == name {
			return tmpl.Points
		}
	}
	t.Fatalf("no template %s", name)
	return nil
}

func TestParseVector(t *testing.T) {
	v, err := parseVector([]string{"1", "-2.5", "3e-1"})
	require.NoError(t, err)
	assert.Equal(t, model.V3(1, -2.5, 0.3), v)

	_, err = parseVector([]string{"1", "2"})
	assert.Error(t, err)
	_, err = parseVector([]string{"1", "2", "z"})
	assert.Error(t, err)
}

func TestTraceLineSpawnsBody(t *testing.T) {
	ctx := newTestCtxt(t)
	bodies := len(ctx.World.Bodies())

	ctx.traceStroke(templatePoints(t, ctx, "line"), 1, 2)
	assert.False(t, ctx.drawing)

	out := ctx.step(controller.FrameInputs{Commit: controller.Press()})
	require.True(t, out.Committed)
	assert.Equal(t, "line", out.Result.Class)
	require.NotNil(t, out.Collider)
	assert.InDelta(t, 200/ctx.Config.PixelsPerUnit, out.Collider.Size.X, 1e-9)
	assert.InDelta(t, 2, out.Collider.Center.Z, 1e-9)
	assert.Len(t, ctx.World.Bodies(), bodies+1)
	assert.Equal(t, "line-0", ctx.bodyName(out.LineBody))
	assert.Equal(t, out.Stroke, ctx.lastStroke)

	require.Equal(t, []int32{0}, ctx.Lines.IDs())
	line, ok := ctx.Lines.Line(0)
	require.True(t, ok)
	pts := line.World()
	require.NotEmpty(t, pts)
	assert.InDelta(t, 2, pts[0].Z, 1e-9)
}

func TestStepHoldsButtons(t *testing.T) {
	ctx := newTestCtxt(t)
	cube := ctx.World.AddBody("cube", physics.BodyParams{Mass: 1})

	body, ok := ctx.bodyByName("cube")
	require.True(t, ok)
	assert.Equal(t, cube, body.ID)
	body, ok = ctx.bodyByName(cube.String())
	require.True(t, ok)
	assert.Equal(t, "cube", body.Name)

	ctx.Hand.TriggerEnter(cube)
	ctx.holding = true
	out := ctx.step(controller.FrameInputs{Grab: controller.Press()})
	assert.Equal(t, cube, out.Grabbed)

	ctx.step(controller.FrameInputs{})
	assert.Equal(t, cube, ctx.Hand.Holding())
	assert.Contains(t, ctx.prompt(), "holding")

	ctx.holding = false
	out = ctx.step(controller.FrameInputs{Grab: controller.Lift()})
	assert.Equal(t, cube, out.Released)
	assert.Contains(t, ctx.prompt(), "idle")
}

func TestYankBreaksJoint(t *testing.T) {
	ctx := newTestCtxt(t)
	_, err := ctx.yank(1, 0)
	assert.Equal(t, errNotHolding, err)

	cube := ctx.World.AddBody("cube", physics.BodyParams{Mass: 1})
	ctx.Hand.TriggerEnter(cube)
	ctx.holding = true
	ctx.step(controller.FrameInputs{Grab: controller.Press()})

	broke, err := ctx.yank(physics.DefaultBreakForce/2, 0)
	require.NoError(t, err)
	assert.False(t, broke)
	assert.Equal(t, 1, ctx.World.Joints())

	broke, err = ctx.yank(physics.DefaultBreakForce+1, 0)
	require.NoError(t, err)
	assert.True(t, broke)
	assert.Equal(t, 0, ctx.World.Joints())

	_, err = ctx.yank(physics.DefaultBreakForce+1, 0)
	assert.Error(t, err)

	ctx.holding = false
	out := ctx.step(controller.FrameInputs{Grab: controller.Lift()})
	assert.Equal(t, cube, out.Released)
	assert.Equal(t, uuid.Nil, ctx.Hand.Holding())
}

func TestDespawn(t *testing.T) {
	ctx := newTestCtxt(t)
	cube := ctx.World.AddBody("cube", physics.BodyParams{Mass: 1})
	ctx.Hand.TriggerEnter(cube)
	ctx.holding = true
	ctx.step(controller.FrameInputs{Grab: controller.Press()})

	require.NoError(t, ctx.despawn("cube"))
	_, ok := ctx.World.Body(cube)
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.World.Joints())
	assert.Equal(t, uuid.Nil, ctx.Hand.Holding())
	assert.False(t, ctx.holding)

	assert.Error(t, ctx.despawn("cube"))
	assert.Error(t, ctx.despawn(ctx.Hand.Body().String()))
}
