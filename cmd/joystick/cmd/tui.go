package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/joystick/cmd/joystick/internal/host"
	"github.com/go-drift/joystick/cmd/joystick/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Drive the stick with the mouse in the terminal",
		Long: `Tui shows the stick in the terminal. Press and drag with the left mouse
button to move the thumb; q, esc or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("starting tui")
			return tui.Run(cmd.Context(), host.Options{Density: a.config.Density})
		},
	}
}
