package shell

import (
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/vrdraw/vrdraw/render"
)

func bodiesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "bodies",
		Help: "list the bodies of the scene",
		Func: func(c *ishell.Context) {
			held := ctx.Hand.Holding()
			for _, b := range ctx.World.Bodies() {
				name := b.Name
				if b.ID == held {
					name = color.GreenString(name)
				}
				line := fmt.Sprintf("%-12s %s mass %.2f", name, b.ID, b.Params.Mass)
				if b.Collider != nil {
					line += fmt.Sprintf(" box (%.2f, %.2f, %.2f) yaw %.1f",
						b.Collider.Size.X, b.Collider.Size.Y, b.Collider.Size.Z, b.Collider.YawDegrees)
				}
				c.Println(line)
			}
		},
	}
}

func statusCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "show the hand state",
		Func: func(c *ishell.Context) {
			h := ctx.Hand
			p := h.Pose().Position
			c.Printf("position   (%.2f, %.2f, %.2f)\n", p.X, p.Y, p.Z)
			c.Printf("stroke     #%d, %d points, drawing %v\n", h.StrokeID(), h.Points(), h.Drawing())
			c.Printf("lines      %d owned, %d total\n", h.OwnedLines(), ctx.Lines.Len())
			if id := h.Touching(); id != uuid.Nil {
				c.Printf("touching   %s\n", ctx.bodyName(id))
			}
			if id := h.Holding(); id != uuid.Nil {
				c.Printf("holding    %s\n", ctx.bodyName(id))
			}
			c.Printf("joints     %d\n", ctx.World.Joints())
		},
	}
}

func linesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "lines",
		Help: "list the rendered lines",
		Func: func(c *ishell.Context) {
			for _, id := range ctx.Lines.IDs() {
				line, ok := ctx.Lines.Line(id)
				if !ok {
					continue
				}
				pts := line.World()
				text := fmt.Sprintf("#%-4d %3d points width %.3f", id, len(pts), line.Width)
				if len(pts) > 0 {
					a, b := pts[0], pts[len(pts)-1]
					text += fmt.Sprintf(" from (%.2f, %.2f, %.2f) to (%.2f, %.2f, %.2f)", a.X, a.Y, a.Z, b.X, b.Y, b.Z)
				}
				if line.Color == render.LineColor {
					text = color.BlueString(text)
				}
				c.Println(text)
			}
		},
	}
}
