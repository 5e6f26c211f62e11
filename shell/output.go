package shell

import (
	"encoding/json"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/vrdraw/vrdraw/controller"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/version"
)

var (
	matchColor   = color.New(color.FgBlue, color.Bold)
	noMatchColor = color.New(color.FgRed)
)

// commitResult is the json form of a commit
type commitResult struct {
	StrokeID       int32               `json:"strokeId"`
	Points         int                 `json:"points"`
	Class          string              `json:"class"`
	Score          float64             `json:"score"`
	Collider       *model.ColliderSpec `json:"collider,omitempty"`
	Body           string              `json:"body,omitempty"`
	LinesDestroyed int                 `json:"linesDestroyed"`
}

func displayOutputs(c *ishell.Context, ctx *ShellCtxt, out controller.FrameOutputs) error {
	res := commitResult{
		StrokeID:       ctx.Hand.StrokeID(),
		Points:         len(out.Stroke),
		Class:          out.Result.Class,
		Score:          out.Result.Score,
		Collider:       out.Collider,
		LinesDestroyed: out.LinesDestroyed,
	}
	if out.LineBody != uuid.Nil {
		res.Body = ctx.bodyName(out.LineBody)
	}

	if ctx.JSONOutput {
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		c.Println(string(b))
		return nil
	}

	if !out.Result.Matched() {
		c.Println(noMatchColor.Sprintf("no match (%d points, score %.3f)", res.Points, res.Score))
		return nil
	}

	c.Println(matchColor.Sprintf("%s", res.Class), fmt.Sprintf("score %.3f, %d points", res.Score, res.Points))
	if out.Collider != nil {
		col := out.Collider
		c.Printf("  %s center (%.2f, %.2f, %.2f) size (%.2f, %.2f, %.2f) yaw %.1f\n",
			res.Body,
			col.Center.X, col.Center.Y, col.Center.Z,
			col.Size.X, col.Size.Y, col.Size.Z,
			col.YawDegrees)
	}
	if out.LinesDestroyed > 0 {
		c.Printf("  removed %d line(s)\n", out.LinesDestroyed)
	}
	return nil
}

func versionString() string {
	return "vrdraw " + version.Version
}
