package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/vrdraw/vrdraw/encoding/gesture"
	"github.com/vrdraw/vrdraw/library"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/recognizer"
)

func main() {
	templates := flag.String("t", "", "directory of gesture definitions, built-in set if empty")
	concurrency := flag.Int("j", 4, "files classified at once")
	minScore := flag.Float64("min", recognizer.DefaultMinScore, "minimum score of a match")
	points := flag.Int("n", recognizer.DefaultPoints, "resampled points per cloud")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: classify [-t dir] [-j n] [-min score] file...")
		os.Exit(2)
	}

	cfg := recognizer.DefaultConfig()
	cfg.MinScore = *minScore
	cfg.Points = *points

	if err := classify(cfg, *templates, *concurrency, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func classify(cfg recognizer.Config, templates string, concurrency int, files []string) error {
	var lib *library.Library
	var err error
	if templates == "" {
		lib, err = library.Default(cfg)
	} else {
		lib, err = library.LoadDir(templates, cfg, concurrency)
	}
	if err != nil {
		return err
	}

	candidates := make([]model.Stroke, len(files))
	for i, name := range files {
		data, err := ioutil.ReadFile(name)
		if err != nil {
			return err
		}
		g, err := gesture.Decode(gesture.Source{Name: filepath.Base(name), Data: data})
		if err != nil {
			return err
		}
		candidates[i] = g.Points
	}

	results, err := lib.Recognizer().ClassifyBatch(context.Background(), candidates, int64(concurrency))
	if err != nil {
		return err
	}

	for i, res := range results {
		class := res.Class
		if !res.Matched() {
			class = "-"
		}
		fmt.Printf("%s\t%s\t%.4f\n", files[i], class, res.Score)
	}
	return nil
}
