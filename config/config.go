package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/vrdraw/vrdraw/collider"
	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/physics"
	"github.com/vrdraw/vrdraw/recognizer"
	"github.com/vrdraw/vrdraw/render"
)

const (
	defaultConfigFile = ".vrdraw.yaml"
	configFileEnvVar  = "VRDRAW_CONFIG"
)

type Config struct {
	// Templates is a directory of gesture definitions, empty for the built-in set
	Templates         string  `yaml:"templates"`
	LoadConcurrency   int     `yaml:"load_concurrency"`
	ResamplePoints    int     `yaml:"resample_points"`
	MinScore          float64 `yaml:"min_score"`
	RotationInvariant bool    `yaml:"rotation_invariant"`
	LineClass         string  `yaml:"line_class"`
	MinColliderHeight float64 `yaml:"min_collider_height"`
	LineWidth         float64 `yaml:"line_width"`
	BreakForce        float64 `yaml:"break_force"`
	BreakTorque       float64 `yaml:"break_torque"`
	PixelsPerUnit     float64 `yaml:"pixels_per_unit"`
	ScreenWidth       float64 `yaml:"screen_width"`
	ScreenHeight      float64 `yaml:"screen_height"`
}

func Default() Config {
	return Config{
		LoadConcurrency:   4,
		ResamplePoints:    recognizer.DefaultPoints,
		MinScore:          recognizer.DefaultMinScore,
		RotationInvariant: true,
		LineClass:         "line",
		LineWidth:         render.DefaultWidth,
		BreakForce:        physics.DefaultBreakForce,
		BreakTorque:       physics.DefaultBreakForce,
		PixelsPerUnit:     500,
		ScreenWidth:       1920,
		ScreenHeight:      1080,
	}
}

// ConfigPath returns the config file location, VRDRAW_CONFIG or
// ~/.vrdraw.yaml
func ConfigPath() (string, error) {
	if path, ok := os.LookupEnv(configFileEnvVar); ok {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultConfigFile), nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		log.Trace.Printf("config %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "can't read config %s", path)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "can't parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	log.Trace.Printf("loaded config from %s", path)
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ResamplePoints < 2 {
		return errors.Errorf("resample_points must be at least 2, got %d", c.ResamplePoints)
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return errors.Errorf("min_score must be within [0, 1], got %g", c.MinScore)
	}
	if c.LineClass == "" {
		return errors.New("line_class is empty")
	}
	if c.MinColliderHeight < 0 {
		return errors.Errorf("min_collider_height is negative")
	}
	if c.PixelsPerUnit <= 0 {
		return errors.Errorf("pixels_per_unit must be positive")
	}
	return nil
}

func (c Config) Recognizer() recognizer.Config {
	return recognizer.Config{
		Points:            c.ResamplePoints,
		MinScore:          c.MinScore,
		RotationInvariant: c.RotationInvariant,
	}
}

func (c Config) Synthesizer() collider.Synthesizer {
	return collider.Synthesizer{MinHeight: c.MinColliderHeight}
}

func (c Config) Joint() physics.JointParams {
	return physics.JointParams{
		BreakForce:  c.BreakForce,
		BreakTorque: c.BreakTorque,
	}
}

func (c Config) Camera() render.OrthoCamera {
	return render.NewOrthoCamera(c.ScreenWidth, c.ScreenHeight, c.PixelsPerUnit)
}
