package shell

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/vrdraw/vrdraw/encoding/gesture"
)

func createBodyCompleter(ctx *ShellCtxt) func([]string) []string {
	return func(args []string) []string {
		var names []string
		for _, b := range ctx.World.Bodies() {
			if b.ID == ctx.Hand.Body() {
				continue
			}
			names = append(names, b.Name)
		}
		return names
	}
}

// createFsEntryCompleter completes gesture definition files on the local disk
func createFsEntryCompleter() func([]string) []string {
	return func(args []string) []string {
		prefix := ""
		if len(args) > 0 {
			prefix = args[len(args)-1]
		}

		dir := filepath.Dir(prefix)
		if !strings.Contains(prefix, string(filepath.Separator)) {
			dir = "."
		}

		entries, err := ioutil.ReadDir(dir)
		if err != nil {
			return nil
		}

		var options []string
		for _, e := range entries {
			name := e.Name()
			if dir != "." {
				name = filepath.Join(dir, name)
			}
			if e.IsDir() {
				options = append(options, name+string(filepath.Separator))
			} else if gesture.IsDefinition(name) {
				options = append(options, name)
			}
		}
		return options
	}
}
