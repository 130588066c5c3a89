package cli

import (
	"io"

	"rotary/app"
	"rotary/hal"

	"github.com/spf13/cobra"
)

func terminalCmd() *cobra.Command {
	var (
		o   options
		tps int
	)
	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Draw the dial in the terminal and dial with the mouse",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Log lines would tear the screen; they go to --log or nowhere.
			hopts, closer, err := o.halOptions(io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()
			cfg := hal.TerminalConfig{Options: hopts, FPS: tps}
			err = hal.RunTerminal(func(h hal.HAL) func() error {
				return app.NewWithConfig(h, o.appConfig(false))
			}, cfg)
			if cleanExit(err) {
				return nil
			}
			return err
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().IntVar(&tps, "tps", 30, "frames per second")
	return cmd
}
