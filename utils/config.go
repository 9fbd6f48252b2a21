package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that decodes from either a string like "150ms" or nanoseconds
type Duration time.Duration

func (d *Duration) parse(raw any) error {
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(v))
	case int:
		*d = Duration(time.Duration(v))
	default:
		return errors.Errorf("unsupported duration value %v", raw)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.parse(raw)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.parse(raw)
}

// Config holds the configuration for the simulation driver
type Config struct {
	Columns             int         `json:"columns" yaml:"columns"`
	Rows                int         `json:"rows" yaml:"rows"`
	FrameRate           Duration    `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int         `json:"max_generations" yaml:"max_generations"`
	Pattern             string      `json:"pattern" yaml:"pattern"`
	RandomDensity       float64     `json:"random_density" yaml:"random_density"`
	Seed                int64       `json:"seed" yaml:"seed"`
	RenderStyle         model.Style `json:"render_style" yaml:"render_style"`
	AutoRestart         bool        `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int         `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	TelemetryPath       string      `json:"telemetry_path" yaml:"telemetry_path"`
	Quiet               bool        `json:"quiet" yaml:"quiet"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Columns:             50,
		Rows:                50,
		FrameRate:           Duration(150 * time.Millisecond),
		MaxGenerations:      1000,
		Pattern:             model.PatternDiagonal,
		RandomDensity:       0.15,
		Seed:                0, // 0 means seed from the clock
		RenderStyle:         model.StyleBlocks,
		AutoRestart:         false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return config, errors.Errorf("[LoadConfig] unsupported config extension %q: %+v", ext, filename)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0 || c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board must be positive, got %dx%d", c.Columns, c.Rows)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate %v is negative", time.Duration(c.FrameRate))
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations %d is negative", c.MaxGenerations)
	case !c.RenderStyle.Valid():
		return errors.Wrapf(ErrInvalidConfig, "unknown render_style %q", c.RenderStyle)
	case !slices.Contains(model.PatternNames(), c.Pattern):
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q, want one of %v", c.Pattern, model.PatternNames())
	}
	return nil
}
