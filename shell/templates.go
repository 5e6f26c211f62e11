package shell

import (
	"github.com/abiosoft/ishell"
)

func templatesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "templates",
		Help: "list loaded template gestures",
		Func: func(c *ishell.Context) {
			counts := make(map[string]int)
			for _, t := range ctx.Library.Templates() {
				counts[t.Name]++
			}
			for _, name := range ctx.Library.Names() {
				c.Printf("%-12s %d\n", name, counts[name])
			}
		},
	}
}

func versionCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "show version",
		Func: func(c *ishell.Context) {
			c.Println(versionString())
		},
	}
}
