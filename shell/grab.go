package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/google/uuid"
	flag "github.com/ogier/pflag"

	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/physics"
)

func spawnCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "spawn",
		Help: "add a grabbable body, usage: spawn [--mass m] <name>",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("spawn", flag.ContinueOnError)
			mass := flagSet.Float64P("mass", "m", 1, "body mass")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			args := flagSet.Args()
			if len(args) == 0 {
				c.Err(errors.New("missing body name"))
				return
			}

			id := ctx.World.AddBody(args[0], physics.BodyParams{Mass: *mass, UseGravity: true})
			c.Println(fmt.Sprintf("spawned %s [%s]", args[0], id))
		},
	}
}

func touchCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "touch",
		Help:      "move the hand into a body, usage: touch <name|id>",
		Completer: createBodyCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing body"))
				return
			}
			body, ok := ctx.bodyByName(c.Args[0])
			if !ok {
				c.Err(errors.New("body doesn't exist"))
				return
			}
			ctx.Hand.TriggerEnter(body.ID)
			c.Println("touching", body.Name)
		},
	}
}

func untouchCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "untouch",
		Help: "move the hand away from the touched body",
		Func: func(c *ishell.Context) {
			ctx.Hand.TriggerExit()
		},
	}
}

func grabCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "grab",
		Help: "press the grab trigger",
		Func: func(c *ishell.Context) {
			if ctx.holding {
				c.Err(errors.New("grab trigger already pressed"))
				return
			}
			ctx.holding = true
			out := ctx.step(controller.FrameInputs{Grab: controller.Press()})
			if out.Grabbed == uuid.Nil {
				c.Println("nothing to grab")
			} else {
				c.Println("grabbed", ctx.bodyName(out.Grabbed))
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}

func releaseCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "release",
		Help: "let go of the grab trigger",
		Func: func(c *ishell.Context) {
			ctx.holding = false
			out := ctx.step(controller.FrameInputs{Grab: controller.Lift()})
			if out.Released != uuid.Nil {
				v := ctx.pose.Velocity
				c.Printf("released %s with velocity (%.2f, %.2f, %.2f)\n", ctx.bodyName(out.Released), v.X, v.Y, v.Z)
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}

// despawn removes a body, letting go of it first when held
func (ctx *ShellCtxt) despawn(name string) error {
	body, ok := ctx.bodyByName(name)
	if !ok {
		return errors.New("body doesn't exist")
	}
	if body.ID == ctx.Hand.Body() {
		return errors.New("can't remove the hand")
	}
	if ctx.Hand.Holding() == body.ID {
		ctx.Hand.Release()
		ctx.holding = false
	}
	if ctx.Hand.Touching() == body.ID {
		ctx.Hand.TriggerExit()
	}
	return ctx.World.RemoveBody(body.ID)
}

func despawnCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "despawn",
		Help:      "remove a body, usage: despawn <name|id>",
		Completer: createBodyCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing body"))
				return
			}
			if err := ctx.despawn(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			c.Println("removed", c.Args[0])
			c.SetPrompt(ctx.prompt())
		},
	}
}
