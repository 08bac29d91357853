package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/joystick/cmd/joystick/internal/host"
	"github.com/go-drift/joystick/cmd/joystick/internal/logging"
	"github.com/go-drift/joystick/cmd/joystick/internal/script"
	"github.com/go-drift/joystick/pkg/graphics"
)

type replayOptions struct {
	size    float64
	density float64
	frames  string
	plot    bool
}

func newReplayCmd(a *app) *cobra.Command {
	opts := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay a gesture script against the stick",
		Long: `Replay reads a YAML gesture script, dispatches each step through the
surface and prints the stick state after every step.

The surface size comes from the script, then --size, then the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.replay(cmd, args[0], opts)
		},
	}
	cmd.Flags().Float64Var(&opts.size, "size", 0, "surface edge when the script has no size")
	cmd.Flags().Float64Var(&opts.density, "density", 0, "pixels per logical unit (default from config)")
	cmd.Flags().StringVar(&opts.frames, "frames", "", "write one PNG per step into this directory")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot the direction per step")
	return cmd
}

func (a *app) replay(cmd *cobra.Command, path string, opts *replayOptions) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	events, err := s.Events()
	if err != nil {
		return fmt.Errorf("invalid script %s: %w", path, err)
	}

	edge, density, err := a.dimensions(cmd, opts.size, opts.density)
	if err != nil {
		return err
	}
	size := graphics.Size{Width: edge, Height: edge}
	if s.HasSize() {
		size = s.SurfaceSize()
	}

	if opts.frames != "" {
		if err := os.MkdirAll(opts.frames, 0o755); err != nil {
			return fmt.Errorf("failed to create frames directory: %w", err)
		}
	}

	h := host.New(host.Options{
		Size:         size,
		Density:      density,
		OnTransition: logging.Transitions(a.logger),
	})
	a.logger.Debug("replaying script",
		zap.String("path", path),
		zap.String("version", s.CanonicalVersion()),
		zap.Int("steps", len(events)),
	)

	xs := make([]float64, 0, len(events))
	ys := make([]float64, 0, len(events))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tPOINTER\tPHASE\tPOSITION\tHIT\tSTATE\tTHUMB\tDIRECTION")
	for i, ev := range events {
		hit := h.Dispatch(ev)
		st := h.Stick().State()
		dir := h.Stick().Direction()
		xs = append(xs, dir.X)
		ys = append(ys, dir.Y)

		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%t\t%s\t%s\t%+.3f,%+.3f\n",
			i+1,
			ev.PointerID,
			ev.Phase,
			formatPoint(ev.Position),
			hit,
			st.Phase,
			formatPoint(st.Thumb),
			dir.X, dir.Y,
		)

		if opts.frames != "" {
			frame := filepath.Join(opts.frames, fmt.Sprintf("step-%03d.png", i+1))
			if err := host.WritePNG(frame, h.Frame()); err != nil {
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if opts.plot {
		graph := asciigraph.PlotMany([][]float64{xs, ys},
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption("direction x (red) / y (blue) per step"),
		)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), graph)
	}
	return nil
}

func formatPoint(p graphics.Offset) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
