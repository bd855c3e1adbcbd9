package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/internal/tui"
	tuinotify "github.com/colonyops/inkwell/internal/tui/notify"
	"github.com/colonyops/inkwell/pkg/clock"
	"github.com/colonyops/inkwell/pkg/logutils"
)

type DemoCmd struct {
	flags *Flags
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Run the interactive sign-up and toast demo",
		UsageText: "inkwell demo",
		Description: `Opens a sign-up form validated by the configured validation mode, with
keybindings to push, focus and dismiss toast notifications.

Press f1 inside the demo for the list of keybindings.`,
		Action: cmd.run,
	})
	return app
}

// Run executes the demo. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *DemoCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	cfg := cmd.flags.Config
	store := notify.NewStore(clock.New(),
		notify.WithDefaultTTL(cfg.Toast.TTL),
		notify.WithMaxVisible(cfg.Toast.MaxVisible),
	)
	defer store.Clear()

	var watcher *tui.ConfigWatcher
	if cmd.flags.ConfigPath != "" {
		w, err := tui.NewConfigWatcher(cmd.flags.ConfigPath)
		if err != nil {
			log.Warn().Err(err).Msg("config reload disabled")
		} else {
			watcher = w
			defer func() { _ = w.Close() }()
		}
	}

	m := tui.New(tui.Options{
		Config:  cfg,
		Bus:     tuinotify.NewBus(store),
		Watcher: watcher,
	})

	// Console logs would draw over the TUI; hold them until it exits.
	if cmd.flags.LogFile == "" {
		prev := log.Logger
		logger, held := logutils.Hold(prev)
		log.Logger = logger
		defer func() {
			log.Logger = prev
			_ = held.Release(os.Stderr)
		}()
	}

	log.Info().Str("mode", cfg.Validation.Mode).Msg("starting demo")
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
