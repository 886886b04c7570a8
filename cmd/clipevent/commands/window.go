package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/clipevent/internal/app"
	"github.com/dshills/clipevent/internal/clip"
	"github.com/dshills/clipevent/internal/dispatch"
	ebitenhost "github.com/dshills/clipevent/internal/host/ebiten"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/notify"
)

// statusLines is how much of the log the window shows.
const statusLines = 36

type windowFlags struct {
	recordPath string
	width      int
	height     int
}

func newWindowCmd(g *globalFlags) *cobra.Command {
	f := &windowFlags{}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a window and show the clip events its input produces",
		Long: `window opens a desktop window and feeds its mouse, keyboard, text and
gamepad input through a player, ticking one frame per window update.
Close the window to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return runWindow(ctx, g, f)
		},
	}
	cmd.Flags().StringVar(&f.recordPath, "record", "", "save the session to this file on exit")
	cmd.Flags().IntVar(&f.width, "width", ebitenhost.DefaultWidth, "window width")
	cmd.Flags().IntVar(&f.height, "height", ebitenhost.DefaultHeight, "window height")
	return cmd
}

func runWindow(ctx context.Context, g *globalFlags, f *windowFlags) error {
	opts, closeLog, err := g.playerOptions(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	con := &console{}
	var p *app.Player
	opts.Record = f.recordPath != ""
	opts.Observer = func(d dispatch.Delivery) {
		// EnterFrame arrives every tick and would drown the log.
		if d.Event.Kind == clip.KindEnterFrame {
			return
		}
		con.printf("  %s -> %s (%s)", d.Event, targetName(p, d), d.Result)
	}
	p, err = app.New(opts)
	if err != nil {
		return err
	}
	defer p.Shutdown()
	p.Notifier().Subscribe(func(n notify.PlayerNotification) {
		con.printf("  host: %s", notify.Describe(n))
	})

	game := ebitenhost.NewGame(
		func(ev input.PlayerEvent) {
			con.printf("%s", input.Describe(ev))
			if _, err := p.Feed(ctx, ev); err != nil && ctx.Err() == nil {
				con.printf("  error: %v", err)
			}
		},
		ebitenhost.WithTracker(ebitenhost.NewTracker(ebitenhost.WithShortcuts(p.Config().Shortcuts()))),
		ebitenhost.WithWindowSize(f.width, f.height),
		ebitenhost.WithFrameFunc(func() error {
			if ctx.Err() != nil {
				return ebiten.Termination
			}
			return p.Tick(ctx)
		}),
		ebitenhost.WithStatus(func() string {
			start := max(0, len(con.lines)-statusLines)
			return strings.Join(con.lines[start:], "\n")
		}),
	)

	if err := game.Run("clipevent: " + p.Tree().Name(p.Tree().Root())); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	if f.recordPath != "" {
		if err := p.SaveRecording(f.recordPath); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
	}
	return nil
}
