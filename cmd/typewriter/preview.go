package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/typewriter/internal/config"
	"github.com/vango-dev/typewriter/internal/errors"
	"github.com/vango-dev/typewriter/pkg/dom"
)

func previewCmd() *cobra.Command {
	var (
		flags pageFlags
		speed float64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Type the configured lines in this terminal",
		Long: `Type the configured lines in the terminal with the same timing the
rendered page uses. Press Ctrl-C to stop.

Examples:
  typewriter preview
  typewriter preview -t "hello" --speed 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if speed <= 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
				return errors.New("E141").WithDetailf("--speed must be a positive number, got %v", speed)
			}

			err = typeOut(cmd.Context(), cmd.OutOrStdout(), cfg.Sequence(), speed)
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed multiplier")

	return cmd
}

// typeOut writes each step to w one character at a time, pacing output with
// dom.Delay. A character is written once its animation would have finished.
func typeOut(ctx context.Context, w io.Writer, steps []config.Step, speed float64) error {
	elapsed := 0.0
	for _, step := range steps {
		if err := wait(ctx, step.Options.Delay-elapsed, speed); err != nil {
			return err
		}
		elapsed = step.Options.Delay

		for _, c := range step.Text {
			if err := wait(ctx, step.Options.Duration, speed); err != nil {
				return err
			}
			elapsed += step.Options.Duration
			if _, err := io.WriteString(w, string(c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// wait blocks for seconds/speed, or until ctx is done.
func wait(ctx context.Context, seconds, speed float64) error {
	ms := int(math.Round(seconds / speed * float64(time.Second/time.Millisecond)))
	if ms <= 0 {
		return ctx.Err()
	}
	select {
	case <-dom.Delay(ms):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
