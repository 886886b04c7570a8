package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/clipevent/internal/app"
	"github.com/dshills/clipevent/internal/dispatch"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/record"
)

type replayFlags struct {
	realtime bool
	speed    float64
	quiet    bool
}

func newReplayCmd(g *globalFlags) *cobra.Command {
	f := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay <recording>",
		Short: "Feed a recorded session through a player and print every delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return runReplay(ctx, cmd.OutOrStdout(), g, f, args[0])
		},
	}
	cmd.Flags().BoolVar(&f.realtime, "realtime", false, "pace events by their recorded offsets")
	cmd.Flags().Float64Var(&f.speed, "speed", 1, "playback speed with --realtime")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the summary")
	return cmd
}

func readRecording(path string) (*record.Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rec, err := record.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func runReplay(ctx context.Context, out io.Writer, g *globalFlags, f *replayFlags, path string) error {
	rec, err := readRecording(path)
	if err != nil {
		return err
	}

	opts, closeLog, err := g.playerOptions(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// The observer sees Load before New returns.
	var p *app.Player
	if !f.quiet {
		opts.Observer = func(d dispatch.Delivery) {
			fmt.Fprintf(out, "    %-24s -> %s (%s)\n", d.Event, targetName(p, d), d.Result)
		}
	}
	p, err = app.New(opts)
	if err != nil {
		return err
	}
	defer p.Shutdown()

	var replayOpts []record.ReplayOption
	if f.realtime {
		replayOpts = append(replayOpts, record.Realtime(f.speed))
	}

	fed := 0
	err = record.Replay(ctx, rec, func(e record.Entry) error {
		if !f.quiet {
			fmt.Fprintf(out, "%10s  %s\n", e.At, input.Describe(e.Event))
		}
		fed++
		_, err := p.Feed(ctx, e.Event)
		return err
	}, replayOpts...)
	if err != nil {
		return err
	}

	s := p.Router().Stats()
	fmt.Fprintf(out, "session %s: %d events, %d deliveries, %d handled, %d panics\n",
		rec.Session, fed, s.Deliveries, s.Handled, s.Panics)
	return nil
}

func targetName(p *app.Player, d dispatch.Delivery) string {
	if p == nil {
		return d.Target.String()
	}
	return p.Tree().Name(d.Target)
}
