package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vrdraw/vrdraw/config"
	"github.com/vrdraw/vrdraw/library"
	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/shell"
	"github.com/vrdraw/vrdraw/version"
)

func main() {
	configFile := flag.String("c", "", "config file, defaults to $VRDRAW_CONFIG or ~/.vrdraw.yaml")
	templates := flag.String("t", "", "directory of gesture definitions, overrides the config")
	jsonOutput := flag.Bool("json", false, "print commit results as json")
	showVersion := flag.Bool("version", false, "print the version")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	log.InitLog()

	if err := run(*configFile, *templates, *jsonOutput, flag.Args()); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}

func run(configFile, templates string, jsonOutput bool, args []string) error {
	var err error
	if configFile == "" {
		if configFile, err = config.ConfigPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if templates != "" {
		cfg.Templates = templates
	}

	var lib *library.Library
	if cfg.Templates == "" {
		lib, err = library.Default(cfg.Recognizer())
	} else {
		lib, err = library.LoadDir(cfg.Templates, cfg.Recognizer(), cfg.LoadConcurrency)
	}
	if err != nil {
		return err
	}
	log.Info.Printf("%d templates loaded", lib.Len())

	return shell.RunShell(cfg, lib, jsonOutput, args)
}
