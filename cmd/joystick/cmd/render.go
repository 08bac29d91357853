package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/joystick/cmd/joystick/internal/host"
	"github.com/go-drift/joystick/cmd/joystick/internal/logging"
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/widgets"
)

type renderOptions struct {
	size    float64
	density float64
	at      string
	out     string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the stick to a PNG",
		Long: `Render lays out a stick on a square surface and writes the frame as PNG.

With --at the stick is pressed at that surface point and left held, so the
frame shows the displaced thumb. Use --out - to write the PNG to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.render(cmd, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.size, "size", 0, "surface edge in pixels (default from config, or 170 x density)")
	cmd.Flags().Float64Var(&opts.density, "density", 0, "pixels per logical unit (default from config)")
	cmd.Flags().StringVar(&opts.at, "at", "", "press the stick at x,y before rendering")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "joystick.png", "output PNG path, or - for stdout")
	return cmd
}

// dimensions merges flags over the resolved config. A density given on the
// command line without a size scales the default size with it.
func (a *app) dimensions(cmd *cobra.Command, size, density float64) (float64, float64, error) {
	if size < 0 {
		return 0, 0, fmt.Errorf("--size must be positive, got %v", size)
	}
	if density < 0 {
		return 0, 0, fmt.Errorf("--density must be positive, got %v", density)
	}
	resolvedSize, resolvedDensity := a.config.Size, a.config.Density
	if density > 0 {
		resolvedDensity = density
		if !cmd.Flags().Changed("size") {
			resolvedSize = widgets.PreferredSize(density)
		}
	}
	if size > 0 {
		resolvedSize = size
	}
	return resolvedSize, resolvedDensity, nil
}

func (a *app) render(cmd *cobra.Command, opts *renderOptions) error {
	size, density, err := a.dimensions(cmd, opts.size, opts.density)
	if err != nil {
		return err
	}
	h := host.New(host.Options{
		Size:         graphics.Size{Width: size, Height: size},
		Density:      density,
		OnTransition: logging.Transitions(a.logger),
	})

	if opts.at != "" {
		pos, err := parsePoint(opts.at)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		if !h.Dispatch(gestures.PointerEvent{PointerID: 1, Position: pos, Phase: gestures.PointerPhaseDown}) {
			a.logger.Warn("press missed the stick", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
		}
	}

	img := h.Frame()
	if opts.out == "-" {
		return host.EncodePNG(cmd.OutOrStdout(), img)
	}
	if err := host.WritePNG(opts.out, img); err != nil {
		return err
	}

	state := h.Stick().State()
	dir := h.Stick().Direction()
	a.logger.Info("wrote frame", zap.String("path", opts.out), zap.Float64("size", size))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s x=%+.3f y=%+.3f\n", opts.out, state.Phase, dir.X, dir.Y)
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (graphics.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Offset{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("y: %w", err)
	}
	return graphics.Offset{X: x, Y: y}, nil
}
