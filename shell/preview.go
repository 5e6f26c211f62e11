package shell

import (
	"errors"
	"os"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/vrdraw/vrdraw/render"
)

func previewCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "preview",
		Help: "write the last committed stroke as png, usage: preview [--size n] <file.png>",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("preview", flag.ContinueOnError)
			size := flagSet.IntP("size", "s", 256, "image size in pixels")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			args := flagSet.Args()
			if len(args) == 0 {
				c.Err(errors.New("missing output file"))
				return
			}
			if len(ctx.lastStroke) == 0 {
				c.Err(errors.New("no committed stroke"))
				return
			}

			f, err := os.Create(args[0])
			if err != nil {
				c.Err(err)
				return
			}
			defer f.Close()

			if err := render.WritePNG(f, ctx.lastStroke, *size); err != nil {
				c.Err(err)
				return
			}
			c.Printf("wrote %s\n", args[0])
		},
	}
}
