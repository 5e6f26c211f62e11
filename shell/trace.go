package shell

import (
	"errors"
	"io/ioutil"
	"path/filepath"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/encoding/gesture"
	"github.com/vrdraw/vrdraw/model"
)

func traceCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "trace",
		Help:      "draw a gesture file as one stroke with the hand and commit it",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("trace", flag.ContinueOnError)
			scale := flagSet.Float64P("scale", "s", 1, "pixels per definition unit")
			z := flagSet.Float64("z", 0, "depth of the drawing plane")
			noCommit := flagSet.BoolP("no-commit", "n", false, "leave the stroke uncommitted")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			args := flagSet.Args()
			if len(args) == 0 {
				c.Err(errors.New("missing gesture file"))
				return
			}

			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				c.Err(err)
				return
			}
			tmpl, err := gesture.Decode(gesture.Source{Name: filepath.Base(args[0]), Data: data})
			if err != nil {
				c.Err(err)
				return
			}

			if len(tmpl.Points) == 0 {
				c.Err(errors.New("gesture has no points"))
				return
			}
			ctx.traceStroke(tmpl.Points, *scale, *z)
			c.Printf("traced %s, %d points\n", tmpl.Name, len(tmpl.Points))

			if !*noCommit {
				out := ctx.step(controller.FrameInputs{Commit: controller.Press()})
				if err := displayOutputs(c, ctx, out); err != nil {
					c.Err(err)
				}
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}

// traceStroke moves the hand along points around the screen center.
// Definition y grows downwards, screen y upwards.
func (ctx *ShellCtxt) traceStroke(points []model.Point, scale, z float64) {
	center := model.Vector2{X: ctx.Camera.Width / 2, Y: ctx.Camera.Height / 2}
	for i, p := range points {
		screen := model.Vector2{X: center.X + p.X*scale, Y: center.Y - p.Y*scale}
		ctx.pose = controller.Pose{Position: ctx.Camera.ScreenToWorld(screen, z)}

		in := controller.FrameInputs{Draw: controller.Hold()}
		switch {
		case i == 0:
			in.Draw = controller.Press()
			ctx.drawing = true
		case i == len(points)-1:
			in.Draw = controller.Lift()
			ctx.drawing = false
		}
		ctx.step(in)
	}
}
