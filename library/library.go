// Package library holds the read-only set of template gestures strokes
// are classified against. A Library is built once at startup.
package library

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vrdraw/vrdraw/encoding/gesture"
	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/recognizer"
)

//go:embed gestures
var defaultGestures embed.FS

const defaultDir = "gestures"

// Library is an immutable set of templates with a prepared recognizer
type Library struct {
	templates []model.TemplateGesture
	rec       *recognizer.Recognizer
}

// Load decodes sources in order
func Load(sources []gesture.Source, cfg recognizer.Config) (*Library, error) {
	templates := make([]model.TemplateGesture, 0, len(sources))
	for _, src := range sources {
		t, err := gesture.Decode(src)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return newLibrary(templates, cfg), nil
}

// LoadDir loads every definition found directly in dir
func LoadDir(dir string, cfg recognizer.Config, concurrency int) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "can't open template dir")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), ".", cfg, concurrency)
}

// Default loads the templates shipped with the binary
func Default(cfg recognizer.Config) (*Library, error) {
	return LoadFS(defaultGestures, defaultDir, cfg, 0)
}

// LoadFS decodes the definitions in dir of fsys on up to concurrency
// goroutines. Templates keep file name order.
func LoadFS(fsys fs.FS, dir string, cfg recognizer.Config, concurrency int) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, "can't list templates")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !gesture.IsDefinition(e.Name()) {
			continue
		}
		names = append(names, path.Join(dir, e.Name()))
	}

	templates := make([]model.TemplateGesture, len(names))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return errors.Wrapf(err, "can't read %s", name)
			}
			t, err := gesture.Decode(gesture.Source{Name: name, Data: data})
			if err != nil {
				return err
			}
			templates[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Trace.Printf("loaded %d templates from %s", len(templates), dir)
	return newLibrary(templates, cfg), nil
}

func newLibrary(templates []model.TemplateGesture, cfg recognizer.Config) *Library {
	return &Library{
		templates: templates,
		rec:       recognizer.New(cfg, templates),
	}
}

// Templates returns a copy of the templates in library order
func (l *Library) Templates() []model.TemplateGesture {
	out := make([]model.TemplateGesture, len(l.templates))
	for i, t := range l.templates {
		points := make([]model.Point, len(t.Points))
		copy(points, t.Points)
		out[i] = model.TemplateGesture{Name: t.Name, Points: points}
	}
	return out
}

func (l *Library) Len() int {
	return len(l.templates)
}

// Names returns the distinct class names in library order
func (l *Library) Names() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(l.templates))
	for _, t := range l.templates {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		names = append(names, t.Name)
	}
	return names
}

// Recognizer returns the recognizer prepared for this library
func (l *Library) Recognizer() *recognizer.Recognizer {
	return l.rec
}

func (l *Library) Classify(candidate model.Stroke) model.ClassificationResult {
	return l.rec.Classify(candidate)
}
