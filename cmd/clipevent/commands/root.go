// Package commands implements the clipevent command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/clipevent/internal/app"
)

// BuildInfo is the version stamped into the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command that runs a player.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
	watch      bool
	scenePath  string
	scriptPath string
}

// NewRoot builds the command tree.
func NewRoot(info BuildInfo) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "clipevent",
		Short: "Inspect and replay movie clip input events",
		Long: `clipevent feeds host input through the player's event pipeline: the input
manager turns host events into player input, and the router delivers the
resulting clip events to a scene of display objects and their Lua handlers.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "path to a TOML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	pf.StringVar(&g.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&g.watch, "watch", false, "reload the configuration file when it changes")
	pf.StringVar(&g.scenePath, "scene", "", "YAML scene file; the built-in scene is used when empty")
	pf.StringVar(&g.scriptPath, "script", "", "Lua script run after the scene is built")

	root.AddCommand(
		newTableCmd(),
		newReplayCmd(g),
		newInspectCmd(g),
		newWindowCmd(g),
	)
	return root
}

// playerOptions returns the options shared by every player-backed
// command. fallback receives logs when --log-file is not set.
func (g *globalFlags) playerOptions(fallback io.Writer) (app.Options, func() error, error) {
	opts := app.Options{
		ConfigPath: g.configPath,
		Watch:      g.watch,
		LogLevel:   g.logLevel,
		LogOutput:  fallback,
		ScenePath:  g.scenePath,
		ScriptPath: g.scriptPath,
	}
	closeLog := func() error { return nil }
	if g.logFile != "" {
		f, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return app.Options{}, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.LogOutput = f
		closeLog = f.Close
	}
	return opts, closeLog, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
