// Command stepspiral renders the spiral step-goal watch face and runs it
// in a terminal.
//
// Usage:
//
//	stepspiral render --goal 18000 --out spiral.png
//	stepspiral dots --goal 12000 --json
//	stepspiral watch --log-file watch.log
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	stepspiral "github.com/gogpu/stepspiral"
	"github.com/gogpu/stepspiral/internal/config"
)

// defaultConfigPath is read when --config is not given, if it exists.
const defaultConfigPath = "stepspiral.yaml"

// app holds state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	logFile    string

	cfg     config.File
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "stepspiral",
		Short:         "Spiral step-goal watch face",
		Long:          `Render the goal spiral and progress ring as images, or run the watch face in a terminal.`,
		Version:       stepspiral.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			return a.setupLogging(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			stepspiral.SetLogger(nil)
			if a.logSink != nil {
				return a.logSink.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./"+defaultConfigPath+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	flags.StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")

	rootCmd.AddCommand(newRenderCmd(a), newDotsCmd(a), newWatchCmd(a))
	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	path := a.configPath
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil && !explicit && config.IsNotExist(err) {
		cfg, err = config.Load("")
	}
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// setupLogging installs a text handler. The watch face owns the terminal,
// so it logs only when --log-file is set.
func (a *app) setupLogging(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case a.logFile != "":
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logSink = f
		w = f
	case cmd.Name() == "watch":
		stepspiral.SetLogger(nil)
		return nil
	}

	stepspiral.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
