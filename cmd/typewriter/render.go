package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/vango-dev/typewriter/internal/errors"
	"github.com/vango-dev/typewriter/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		flags  pageFlags
		out    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the typing page to HTML",
		Long: `Render the configured lines into a standalone HTML page.

The page is written to stdout unless --out (or "output" in the
configuration) names a file, which is replaced atomically.

Examples:
  typewriter render > index.html
  typewriter render --out dist/index.html --pretty
  typewriter render -t "$ whoami" -t "guest" --duration 0.08`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = out
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}

			body, err := buildBody(cfg)
			if err != nil {
				return err
			}

			renderer := render.NewRenderer(render.RendererConfig{
				Pretty: cfg.Render.Pretty,
				Indent: cfg.Render.Indent,
				Logger: slog.Default(),
			})

			var buf bytes.Buffer
			if err := renderer.RenderPage(&buf, pageData(cfg, body)); err != nil {
				return errors.New("E140").Wrap(err)
			}

			if cfg.Output == "" {
				if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
					return errors.New("E140").Wrap(err)
				}
				return nil
			}

			if err := writeFile(cfg.Output, &buf); err != nil {
				return err
			}
			slog.Info("rendered page", "path", cfg.Output, "lines", len(cfg.Lines), "bytes", buf.Len())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the page to this file")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")

	return cmd
}

// writeFile atomically replaces path with the contents of buf, creating
// missing parent directories.
func writeFile(path string, buf *bytes.Buffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("E140").WithDetail("Cannot create " + dir).Wrap(err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(buf.Bytes())); err != nil {
		return errors.New("E140").WithDetail("Cannot write " + path).Wrap(err)
	}
	return nil
}
