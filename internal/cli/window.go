package cli

import (
	"os"

	"rotary/app"
	"rotary/hal"

	"github.com/spf13/cobra"
)

func windowCmd() *cobra.Command {
	var (
		o     options
		scale int
		tps   int
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the dial in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			hopts, closer, err := o.halOptions(os.Stdout)
			if err != nil {
				return err
			}
			defer closer.Close()
			cfg := hal.WindowConfig{Options: hopts, Scale: scale, TPS: tps}
			err = hal.RunWindow(func(h hal.HAL) func() error {
				return app.NewWithConfig(h, o.appConfig(false))
			}, cfg)
			if cleanExit(err) {
				return nil
			}
			return err
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().IntVar(&scale, "scale", 2, "window size as a multiple of the framebuffer")
	cmd.Flags().IntVar(&tps, "tps", 60, "updates per second")
	return cmd
}
