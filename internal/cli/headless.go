package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"rotary/app"
	"rotary/hal"

	"github.com/spf13/cobra"
)

func headlessCmd() *cobra.Command {
	var (
		o     options
		hz    int
		ticks uint64
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a display, e.g. to replay --dial and log the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hopts, closer, err := o.halOptions(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			cfg := hal.HeadlessConfig{Options: hopts, Hz: hz, Ticks: ticks}
			err = hal.RunHeadless(ctx, func(h hal.HAL) func() error {
				return app.NewWithConfig(h, o.appConfig(true))
			}, cfg)
			if cleanExit(err) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().IntVar(&hz, "hz", 60, "steps per second")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N steps (0 = until the dial script ends or interrupted)")
	return cmd
}
