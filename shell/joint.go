package shell

import (
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vrdraw/vrdraw/physics"
)

var errNotHolding = errors.New("not holding anything")

// yank loads the joint of the held object, reporting whether it broke
func (ctx *ShellCtxt) yank(force, torque float64) (bool, error) {
	if ctx.Hand.Holding() == uuid.Nil {
		return false, errNotHolding
	}
	broke, err := ctx.World.Load(ctx.Hand.Joint(), force, torque)
	if errors.Cause(err) == physics.ErrNoJoint {
		return false, errors.New("joint already broken")
	}
	return broke, err
}

func yankCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "yank",
		Help: "pull on the held object, usage: yank <force> [torque]",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing force"))
				return
			}
			force, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(err)
				return
			}
			torque := 0.0
			if len(c.Args) > 1 {
				if torque, err = strconv.ParseFloat(c.Args[1], 64); err != nil {
					c.Err(err)
					return
				}
			}

			broke, err := ctx.yank(force, torque)
			if err != nil {
				c.Err(err)
				return
			}
			if broke {
				c.Println(noMatchColor.Sprint("joint broke"))
			} else {
				c.Println("joint holds")
			}
		},
	}
}
