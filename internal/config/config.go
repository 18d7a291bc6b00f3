package config

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/natefinch/atomic"

	"github.com/vango-dev/typewriter/internal/errors"
	"github.com/vango-dev/typewriter/pkg/dom"
	"github.com/vango-dev/typewriter/pkg/vdom"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "typewriter.json"

	// DefaultTitle is the page title used when none is configured.
	DefaultTitle = "typewriter"

	// DefaultLineTag is the element each configured line is rendered into.
	DefaultLineTag = "p"

	// DefaultDuration is the default per-character duration in seconds.
	DefaultDuration = 0.05
)

// Config represents the complete typewriter.json configuration.
type Config struct {
	// Title is the page title.
	Title string `json:"title,omitempty"`

	// Lang is the document language.
	Lang string `json:"lang,omitempty"`

	// Wallpaper is the image shown faintly behind the text. Empty disables it.
	Wallpaper string `json:"wallpaper,omitempty"`

	// Typing holds the per-character duration and the delay before the
	// first line starts.
	Typing dom.TypingOptions `json:"typing"`

	// Gap is the pause in seconds between the end of one line and the start
	// of the next.
	Gap float64 `json:"gap,omitempty"`

	// Style is applied to every typed character.
	Style vdom.Styles `json:"style,omitempty"`

	// Lines are typed one after another.
	Lines []Line `json:"lines,omitempty"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render,omitempty"`

	// Output is the file the rendered page is written to. Empty means stdout.
	Output string `json:"output,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Line is one line of typed text.
type Line struct {
	// Text is the content to type.
	Text string `json:"text"`

	// Tag is the element holding the line (default "p").
	Tag string `json:"tag,omitempty"`

	// Style is merged over Config.Style for this line's characters.
	Style vdom.Styles `json:"style,omitempty"`

	// Duration overrides Typing.Duration for this line.
	Duration *float64 `json:"duration,omitempty"`

	// Pause is an extra wait in seconds before this line starts.
	Pause float64 `json:"pause,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty"`
}

// Step is a line with its resolved animation timing.
type Step struct {
	Line
	Options dom.TypingOptions
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Title: DefaultTitle,
		Lang:  "en",
		Typing: dom.TypingOptions{
			Duration: DefaultDuration,
		},
		Gap: 0.5,
		Style: vdom.Styles{
			"font-family": "monospace",
		},
		Lines: []Line{
			{Text: "Hello, world."},
		},
		Render: RenderConfig{
			Indent: "  ",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for typewriter.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Missing fields
// keep their defaults; style maps are merged over the default style. A
// missing file is reported as an E120 error wrapping fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Cannot read " + path).
			WithSuggestion("Run 'typewriter init' to create a default typewriter.json").
			Wrap(err)
	}

	cfg := New()
	// Lines are replaced as a whole, never merged with the sample line.
	cfg.Lines = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that typewriter.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo atomically writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.New("E120").WithDetail("Cannot write " + path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the configuration was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the configuration file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in values a file may have cleared.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	for i := range c.Lines {
		if c.Lines[i].Tag == "" {
			c.Lines[i].Tag = DefaultLineTag
		}
	}
}

// Validate checks that every timing value is a finite, non-negative number.
func (c *Config) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return errors.New("E121").
				WithDetailf("%s must be a non-negative number, got %v", name, v)
		}
		return nil
	}

	if err := check("typing.duration", c.Typing.Duration); err != nil {
		return err
	}
	if err := check("typing.delay", c.Typing.Delay); err != nil {
		return err
	}
	if err := check("gap", c.Gap); err != nil {
		return err
	}
	for i, l := range c.Lines {
		if l.Duration != nil {
			if err := check(linePath(i, "duration"), *l.Duration); err != nil {
				return err
			}
		}
		if err := check(linePath(i, "pause"), l.Pause); err != nil {
			return err
		}
	}
	return nil
}

func linePath(i int, field string) string {
	return "lines[" + strconv.Itoa(i) + "]." + field
}

// Sequence resolves the timing of every line so that each starts once the
// previous one has finished typing, plus Gap and the line's own Pause.
func (c *Config) Sequence() []Step {
	steps := make([]Step, 0, len(c.Lines))
	cursor := c.Typing.Delay
	for i, l := range c.Lines {
		duration := c.Typing.Duration
		if l.Duration != nil {
			duration = *l.Duration
		}
		if i > 0 {
			cursor += c.Gap
		}
		opts := dom.TypingOptions{Duration: duration, Delay: cursor + l.Pause}
		steps = append(steps, Step{Line: l, Options: opts})
		cursor = opts.End(utf8.RuneCountInString(l.Text))
	}
	return steps
}
