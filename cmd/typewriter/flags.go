package main

import (
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/typewriter/internal/config"
	"github.com/vango-dev/typewriter/internal/errors"
)

// pageFlags are the configuration overrides shared by render and preview.
type pageFlags struct {
	configPath string
	texts      []string
	duration   float64
	delay      float64
	wallpaper  string
	title      string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", config.ConfigFileName, "Configuration file")
	flags.StringArrayVarP(&f.texts, "text", "t", nil, "Line to type (repeatable, replaces configured lines)")
	flags.Float64Var(&f.duration, "duration", config.DefaultDuration, "Seconds per character")
	flags.Float64Var(&f.delay, "delay", 0, "Seconds before the first character")
	flags.StringVar(&f.wallpaper, "wallpaper", "", "Background image source")
	flags.StringVar(&f.title, "title", "", "Page title")
}

// load reads the configuration and applies explicitly set flags. A missing
// file is only an error when --config was given.
func (f *pageFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFile(f.configPath)
	switch {
	case err == nil:
		slog.Debug("loaded config", "path", cfg.Path())
	case !cmd.Flags().Changed("config") && errors.Is(err, fs.ErrNotExist):
		slog.Debug("no config file, using defaults", "path", f.configPath)
		cfg = config.New()
	default:
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("text") {
		cfg.Lines = nil
		for _, t := range f.texts {
			cfg.Lines = append(cfg.Lines, config.Line{Text: t, Tag: config.DefaultLineTag})
		}
	}
	if flags.Changed("duration") {
		cfg.Typing.Duration = f.duration
	}
	if flags.Changed("delay") {
		cfg.Typing.Delay = f.delay
	}
	if flags.Changed("wallpaper") {
		cfg.Wallpaper = f.wallpaper
	}
	if flags.Changed("title") {
		cfg.Title = f.title
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.New("E141").WithSuggestion("Check the --duration and --delay flags").Wrap(err)
	}
	return cfg, nil
}
