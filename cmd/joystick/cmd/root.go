// Package cmd implements the joystick CLI commands.
//
// The root command loads the optional joystick.yaml, builds the logger and
// installs it as the error handler before any subcommand runs.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/joystick/cmd/joystick/internal/config"
	"github.com/go-drift/joystick/cmd/joystick/internal/logging"
	"github.com/go-drift/joystick/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app holds state shared by subcommands once the root has run.
type app struct {
	configPath string
	logLevel   string
	verbose    bool

	config *config.Resolved
	logger *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "joystick",
		Short: "Virtual analog stick: render, replay and drive it from a terminal",
		Long: `joystick hosts a virtual analog stick on a software surface.

It renders frames to PNG, replays scripted gestures and shows the stick
in a terminal driven by the mouse.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file path (yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log callers and stack traces")

	root.AddCommand(
		newRenderCmd(a),
		newReplayCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	resolved, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		level, err := config.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		resolved.LogLevel = level
	}
	resolved.Verbose = resolved.Verbose || a.verbose

	logger, err := logging.New(resolved.LogLevel, resolved.Verbose)
	if err != nil {
		return err
	}
	a.config = resolved
	a.logger = logger
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: resolved.Verbose})

	if resolved.Path != "" {
		logger.Debug("loaded config", zap.String("path", resolved.Path))
	}
	return nil
}

// ErrReported marks an error that was already sent to the error handler.
var ErrReported = stderrors.New("error reported")

// Execute runs the CLI until it finishes or the process is interrupted.
// Structured errors are reported through the installed error handler and
// come back wrapped in ErrReported.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return report(NewRootCmd().ExecuteContext(ctx))
}

func report(err error) error {
	var jerr *errors.JoystickError
	if !stderrors.As(err, &jerr) {
		return err
	}
	errors.Report(jerr)
	return fmt.Errorf("%w: %w", ErrReported, err)
}
