package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/table"
)

type RecentCmd struct {
	flags *Flags

	// flags
	limit   int
	trigger string
	forget  int
}

// NewRecentCmd creates a new recent command
func NewRecentCmd(flags *Flags) *RecentCmd {
	return &RecentCmd{flags: flags}
}

// Register adds the recent command to the application
func (cmd *RecentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "recent",
		Usage:     "List recently committed mentions",
		UsageText: "mentions recent [--limit N] [--trigger CHAR] [--forget ID]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum number of mentions to show",
				Value:       20,
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "trigger",
				Aliases:     []string{"t"},
				Usage:       "only show mentions made with this trigger",
				Destination: &cmd.trigger,
			},
			&cli.IntFlag{
				Name:        "forget",
				Usage:       "delete the mention with this ID from history",
				Destination: &cmd.forget,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RecentCmd) run(ctx context.Context, c *cli.Command) error {
	store, err := history.NewStore()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if cmd.forget > 0 {
		return forget(store, int64(cmd.forget), c.Root().Writer)
	}

	var entries []history.Entry
	if cmd.trigger != "" {
		entries, err = store.Recent(cmd.trigger, "", cmd.limit)
	} else {
		entries, err = store.List(cmd.limit, 0)
	}
	if err != nil {
		return fmt.Errorf("list mentions: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No mentions recorded yet\n")
		return nil
	}

	table.Init(cmd.flags.Config.Theme)
	_, err = fmt.Fprintln(c.Root().Writer, table.FromHistory(entries).View())
	return err
}

func forget(store *history.Store, id int64, w io.Writer) error {
	entry, err := store.GetByID(id)
	if err != nil {
		return fmt.Errorf("mention %d: %w", id, err)
	}
	if entry == nil {
		return fmt.Errorf("no mention with ID %d", id)
	}
	if err := store.Delete(id); err != nil {
		return fmt.Errorf("forget mention %d: %w", id, err)
	}
	_, err = fmt.Fprintf(w, "Forgot %s%s\n", entry.Trigger, entry.DisplayPreview(40))
	return err
}
