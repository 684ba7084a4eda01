package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/nhath/mentions/internal/directory"
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/logging"
	"github.com/nhath/mentions/internal/source"
	"github.com/nhath/mentions/internal/ui"
	"github.com/nhath/mentions/internal/ui/styles"
)

type ComposeCmd struct {
	flags *Flags

	// flags
	noDirectory bool
}

// NewComposeCmd creates the interactive composer command
func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

// Flags returns the composer flags so they can be registered on the root
// command, where the composer is the default action.
func (cmd *ComposeCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-directory",
			Usage:       "do not connect to the people directory",
			Sources:     cli.EnvVars("MENTIONS_NO_DIRECTORY"),
			Destination: &cmd.noDirectory,
		},
	}
}

// Run opens the composer TUI
func (cmd *ComposeCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	styles.Init(cfg.Theme)

	store, err := history.NewStore()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	var dir directory.Driver
	if !cmd.noDirectory {
		dir, err = openDirectory(ctx, cfg.Directory, keyringSecrets(cfg.Directory))
		if err != nil {
			// Directory suggestions stay empty; everything else still works
			log.Warn().Err(err).Str("dsn", cfg.Directory.BuildDSN()).Msg("people directory unavailable")
			dir = nil
		} else {
			defer dir.Close()
		}
	}

	registry, err := source.Build(cfg, dir, store)
	if err != nil {
		return fmt.Errorf("build sources: %w", err)
	}

	model := ui.NewModel(cfg, registry, store, logging.Component("ui"))
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
