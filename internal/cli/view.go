package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rmerrors "github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/pipeline"
	"github.com/matzehuels/radialmap/pkg/session"
	"github.com/matzehuels/radialmap/pkg/view"
)

// viewCommand creates the interactive terminal viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		noCache   bool
		noSession bool
		flags     layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "view [document]",
		Short: "Explore a mind map in the terminal",
		Long: `Explore a mind map in the terminal.

Keys:
  + / -        zoom in / out (or mouse wheel)
  arrows       pan (or drag with the mouse)
  r            toggle rotation, [ and ] change its speed
  c            toggle curved links
  l            show leaf labels only
  t            constant-size labels
  f            fullscreen (hide the status bar)
  0            fit the map to the window
  q / esc      quit

The camera is saved on exit and restored the next time the same document
is opened, unless --no-session is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, &opts)
			return c.runView(cmd.Context(), args[0], opts, noCache, noSession)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noSession, "no-session", false, "do not restore or save the view")
	flags.register(cmd, &opts)

	return cmd
}

// runView lays out the document and runs the viewer until the user quits.
func (c *CLI) runView(ctx context.Context, input string, opts pipeline.Options, noCache, noSession bool) error {
	opts.Filename = input
	opts.Logger = c.Logger
	c.config.Apply(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	if opts.IsTwopi() {
		return rmerrors.New(rmerrors.ErrCodeInvalidVizType, "the terminal viewer only draws radial layouts")
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	t, err := runner.Parse(ctx, opts)
	if err != nil {
		return err
	}
	if err := layout.Compute(t, opts.LayoutConfig()); err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}

	var store *session.FileStore
	state := view.Default()
	state.CurvedLinks = opts.CurvedLinks()
	restored := false
	if !noSession {
		store, err = session.NewFileStore("")
		if err != nil {
			c.Logger.Warn("sessions disabled", "error", err)
		} else if sess, err := store.Get(ctx, session.IDFor(abs)); err != nil {
			c.Logger.Warn("ignoring saved view", "error", err)
		} else if sess != nil {
			state = sess.View
			restored = true
			c.Logger.Debug("restored view", "session", sess.ID, "zoom", state.Zoom)
		}
	}

	m := NewMapViewModel(filepath.Base(input), t, opts.LinkOptions(), state, restored)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	final, runErr := p.Run()
	interrupted := errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil
	if runErr != nil && !interrupted {
		return fmt.Errorf("run viewer: %w", runErr)
	}

	if fm, ok := final.(MapViewModel); ok && store != nil {
		c.saveView(ctx, store, abs, fm.State)
	}
	if interrupted {
		return ctx.Err()
	}
	return nil
}

// saveView stores the camera for document. It also runs after the viewer
// was interrupted, so ctx may already be cancelled.
func (c *CLI) saveView(ctx context.Context, store session.Store, document string, s view.State) {
	if err := store.Set(context.WithoutCancel(ctx), session.New(document, s, session.DefaultTTL)); err != nil {
		printWarning("Could not save view: %v", err)
		return
	}
	c.Logger.Debug("saved view", "document", document)
}
