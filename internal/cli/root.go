// Package cli wires the rotary commands: a desktop window, a terminal UI and
// a headless runner, all sharing one viper-backed flag set.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rotary/app"
	"rotary/hal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// options holds the flags shared by every host command.
type options struct {
	width, height int
	dial          string
	audio         bool
	logPath       string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.IntVar(&o.width, "width", hal.DefaultWidth, "framebuffer width in pixels")
	fs.IntVar(&o.height, "height", hal.DefaultHeight, "framebuffer height in pixels")
	fs.StringVar(&o.dial, "dial", "", "number to dial automatically after start")
	fs.BoolVar(&o.audio, "audio", false, "play pulse clicks for dialed digits")
	fs.StringVar(&o.logPath, "log", "", "log file (\"-\" for stdout)")
}

// halOptions opens the log target. The returned closer must be called when
// the host exits.
func (o *options) halOptions(defaultLog io.Writer) (hal.Options, io.Closer, error) {
	hopts := hal.Options{Width: o.width, Height: o.height, Audio: o.audio, Log: defaultLog}
	switch o.logPath {
	case "":
		return hopts, nopCloser{}, nil
	case "-":
		hopts.Log = os.Stdout
		return hopts, nopCloser{}, nil
	}
	f, err := os.OpenFile(o.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return hal.Options{}, nil, fmt.Errorf("open log: %w", err)
	}
	hopts.Log = f
	return hopts, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (o *options) appConfig(exitWhenDone bool) app.Config {
	return app.Config{Dial: o.dial, Audio: o.audio, ExitWhenDone: exitWhenDone && o.dial != ""}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rotary",
		Short: "A rotary phone dial",
		Long: `Rotary draws an old telephone dial. Put a finger (or the mouse) in a hole,
turn it clockwise to the stopper and let go to dial that digit.`,
		PersistentPreRunE: bindFlags,
		SilenceUsage:      true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.rotary.toml or $HOME/.rotary.toml)")

	root.AddCommand(windowCmd(), terminalCmd(), headlessCmd(), versionCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName(".rotary")
	}
	viper.SetEnvPrefix("rotary")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "rotary: reading config: %v\n", err)
		}
	}
}

// bindFlags copies config values into flags the user did not set, so the
// command line still wins.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Config keys drop hyphens; viper compares case-insensitively.
		name := strings.ReplaceAll(f.Name, "-", "")
		if err != nil || f.Changed || !viper.IsSet(name) {
			return
		}
		if setErr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(name))); setErr != nil {
			err = fmt.Errorf("config value for %s: %w", f.Name, setErr)
		}
	})
	return err
}

// cleanExit reports whether err only means the run ended normally.
func cleanExit(err error) bool {
	return err == nil || errors.Is(err, app.ErrDone)
}
