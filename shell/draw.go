package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/model"
)

func parseVector(args []string) (model.Vector3, error) {
	if len(args) != 3 {
		return model.Vector3{}, errors.New("expected x y z")
	}
	var v [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return model.Vector3{}, fmt.Errorf("invalid coordinate %q", a)
		}
		v[i] = f
	}
	return model.V3(v[0], v[1], v[2]), nil
}

func moveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "move",
		Help: "move the hand, usage: move [--vx --vy --vz] <x> <y> <z>",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("move", flag.ContinueOnError)
			vx := flagSet.Float64("vx", 0, "velocity x")
			vy := flagSet.Float64("vy", 0, "velocity y")
			vz := flagSet.Float64("vz", 0, "velocity z")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			pos, err := parseVector(flagSet.Args())
			if err != nil {
				c.Err(err)
				return
			}

			ctx.pose = controller.Pose{
				Position: pos,
				Velocity: model.V3(*vx, *vy, *vz),
			}
			out := ctx.step(controller.FrameInputs{})
			if out.PointAdded {
				c.Printf("stroke #%d: %d points\n", ctx.Hand.StrokeID(), ctx.Hand.Points())
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}

func drawCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "draw",
		Help: "press the draw trigger at the current position",
		Func: func(c *ishell.Context) {
			ctx.drawing = true
			out := ctx.step(controller.FrameInputs{Draw: controller.Press()})
			c.Printf("stroke #%d started\n", out.StrokeID)
			c.SetPrompt(ctx.prompt())
		},
	}
}

func liftCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "lift",
		Help: "let go of the draw trigger",
		Func: func(c *ishell.Context) {
			if !ctx.drawing {
				c.Err(errors.New("not drawing"))
				return
			}
			ctx.drawing = false
			ctx.step(controller.FrameInputs{Draw: controller.Lift()})
			c.Printf("stroke #%d: %d points\n", ctx.Hand.StrokeID(), ctx.Hand.Points())
			c.SetPrompt(ctx.prompt())
		},
	}
}

func commitCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "commit",
		Help: "press the menu button to classify the stroke",
		Func: func(c *ishell.Context) {
			out := ctx.step(controller.FrameInputs{Commit: controller.Press()})
			if err := displayOutputs(c, ctx, out); err != nil {
				c.Err(err)
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}
