package shell

import (
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/google/uuid"

	"github.com/vrdraw/vrdraw/config"
	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/library"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/physics"
	"github.com/vrdraw/vrdraw/render"
	"github.com/vrdraw/vrdraw/version"
)

// ShellCtxt is the simulated scene the shell commands act on
type ShellCtxt struct {
	Config  config.Config
	Library *library.Library
	World   *physics.World
	Lines   *render.Lines
	Camera  render.OrthoCamera
	Hand    *controller.Hand

	// current pose and buttons held between commands
	pose    controller.Pose
	drawing bool
	holding bool

	lastStroke model.Stroke
	JSONOutput bool
}

func NewShellCtxt(cfg config.Config, lib *library.Library) *ShellCtxt {
	world := physics.NewWorld()
	lines := render.NewLines(cfg.LineWidth)
	camera := cfg.Camera()

	handCfg := controller.DefaultConfig()
	handCfg.LineClass = cfg.LineClass
	handCfg.Joint = cfg.Joint()
	handCfg.Collider = cfg.Synthesizer()

	return &ShellCtxt{
		Config:  cfg,
		Library: lib,
		World:   world,
		Lines:   lines,
		Camera:  camera,
		Hand:    controller.New(handCfg, lib, camera, lines, world),
	}
}

func (ctx *ShellCtxt) prompt() string {
	state := "idle"
	switch {
	case ctx.drawing:
		state = fmt.Sprintf("drawing #%d", ctx.Hand.StrokeID())
	case ctx.Hand.Holding() != uuid.Nil:
		state = "holding"
	}
	p := ctx.pose.Position
	return fmt.Sprintf("[%s (%.2f, %.2f, %.2f)]>", state, p.X, p.Y, p.Z)
}

// step runs one frame with the buttons currently held
func (ctx *ShellCtxt) step(in controller.FrameInputs) controller.FrameOutputs {
	in.Pose = ctx.pose
	if ctx.drawing && !in.Draw.Down && !in.Draw.Up {
		in.Draw = controller.Hold()
	}
	if ctx.holding && !in.Grab.Down && !in.Grab.Up {
		in.Grab = controller.Hold()
	}

	out := ctx.Hand.Update(in)
	if out.Committed {
		ctx.lastStroke = out.Stroke
		ctx.drawing = false
	}
	return out
}

// bodyByName resolves a body name or id
func (ctx *ShellCtxt) bodyByName(name string) (physics.Body, bool) {
	if id, err := uuid.Parse(name); err == nil {
		return ctx.World.Body(id)
	}
	return ctx.World.FindBody(name)
}

func (ctx *ShellCtxt) bodyName(id uuid.UUID) string {
	if b, ok := ctx.World.Body(id); ok {
		return b.Name
	}
	return id.String()
}

func RunShell(cfg config.Config, lib *library.Library, jsonOutput bool, args []string) error {
	shell := ishell.New()
	ctx := NewShellCtxt(cfg, lib)
	ctx.JSONOutput = jsonOutput
	defer ctx.Hand.Close()

	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(templatesCmd(ctx))
	shell.AddCmd(spawnCmd(ctx))
	shell.AddCmd(despawnCmd(ctx))
	shell.AddCmd(touchCmd(ctx))
	shell.AddCmd(untouchCmd(ctx))
	shell.AddCmd(grabCmd(ctx))
	shell.AddCmd(releaseCmd(ctx))
	shell.AddCmd(yankCmd(ctx))
	shell.AddCmd(moveCmd(ctx))
	shell.AddCmd(drawCmd(ctx))
	shell.AddCmd(liftCmd(ctx))
	shell.AddCmd(commitCmd(ctx))
	shell.AddCmd(traceCmd(ctx))
	shell.AddCmd(previewCmd(ctx))
	shell.AddCmd(bodiesCmd(ctx))
	shell.AddCmd(linesCmd(ctx))
	shell.AddCmd(statusCmd(ctx))
	shell.AddCmd(versionCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Printf("vrdraw %s, %d templates: %v\n", version.Version, lib.Len(), lib.Names())
	shell.Run()
	return nil
}
