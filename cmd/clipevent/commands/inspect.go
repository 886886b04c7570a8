package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/clipevent/internal/app"
	"github.com/dshills/clipevent/internal/dispatch"
	"github.com/dshills/clipevent/internal/host/terminal"
	"github.com/dshills/clipevent/internal/input"
	"github.com/dshills/clipevent/internal/input/key"
	"github.com/dshills/clipevent/internal/notify"
)

// maxLines bounds the inspector's scrollback.
const maxLines = 500

type inspectFlags struct {
	recordPath string
	cellWidth  float64
	cellHeight float64
}

func newInspectCmd(g *globalFlags) *cobra.Command {
	f := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Capture terminal input and show the clip events it produces",
		Long: `inspect puts the terminal in raw mode and feeds every key, mouse, paste and
focus report through a player. Each host event is shown with the clip
events it was delivered as. Press Escape or Ctrl+C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("inspect needs an interactive terminal")
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return runInspect(ctx, g, f)
		},
	}
	cmd.Flags().StringVar(&f.recordPath, "record", "", "save the session to this file on exit")
	cmd.Flags().Float64Var(&f.cellWidth, "cell-width", 8, "pixel width of one terminal cell")
	cmd.Flags().Float64Var(&f.cellHeight, "cell-height", 16, "pixel height of one terminal cell")
	return cmd
}

func runInspect(ctx context.Context, g *globalFlags, f *inspectFlags) (err error) {
	// Logs would overwrite the screen.
	opts, closeLog, err := g.playerOptions(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	con := &console{}
	var p *app.Player
	opts.Record = f.recordPath != ""
	opts.Observer = func(d dispatch.Delivery) {
		con.printf("    %s -> %s (%s)", d.Event, targetName(p, d), d.Result)
	}
	p, err = app.New(opts)
	if err != nil {
		return err
	}
	defer p.Shutdown()
	p.Notifier().Subscribe(func(n notify.PlayerNotification) {
		con.printf("    host: %s", notify.Describe(n))
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnablePaste()
	screen.EnableFocus()
	con.screen = screen

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr := terminal.NewTranslator(
		terminal.WithCellSize(f.cellWidth, f.cellHeight),
		terminal.WithShortcuts(p.Config().Shortcuts()),
	)
	src := terminal.NewSource(screen,
		terminal.WithTranslator(tr),
		terminal.WithLogger(p.Logger()),
	)

	con.printf("scene %q, %d objects. Escape or Ctrl+C quits.", p.Tree().Name(p.Tree().Root()), p.Tree().Len())
	con.draw()

	runErr := src.Run(ctx, func(ev input.PlayerEvent) {
		if isQuit(ev) {
			cancel()
			return
		}
		con.printf("%s", input.Describe(ev))
		if _, err := p.Feed(ctx, ev); err != nil && !errors.Is(err, context.Canceled) {
			con.printf("    error: %v", err)
		}
		con.draw()
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if f.recordPath != "" {
		if err := p.SaveRecording(f.recordPath); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
	}
	return nil
}

func isQuit(ev input.PlayerEvent) bool {
	down, ok := ev.(input.KeyDown)
	if !ok {
		return false
	}
	code := down.Key.KeyCode()
	return code == key.CodeEscape || (code == key.CodeC && down.Modifiers.Has(key.ModCtrl))
}

// console is a scrolling log drawn on a tcell screen.
type console struct {
	screen tcell.Screen
	lines  []string
}

func (c *console) printf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
	if len(c.lines) > maxLines {
		c.lines = c.lines[len(c.lines)-maxLines:]
	}
}

func (c *console) draw() {
	if c.screen == nil {
		return
	}
	c.screen.Clear()
	width, height := c.screen.Size()
	start := max(0, len(c.lines)-height)
	for y, line := range c.lines[start:] {
		drawLine(c.screen, y, width, line)
	}
	c.screen.Show()
}

// drawLine writes s at row y, one grapheme cluster per cell run,
// clipped to width.
func drawLine(s tcell.Screen, y, width int, line string) {
	x := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() && x < width {
		runes := g.Runes()
		w := g.Width()
		if x+w > width {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
		x += max(w, 1)
	}
}
