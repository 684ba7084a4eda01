package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/directory"
)

type SeedCmd struct {
	flags *Flags

	// flags
	path string
}

// NewSeedCmd creates a new seed command
func NewSeedCmd(flags *Flags) *SeedCmd {
	return &SeedCmd{flags: flags}
}

// Register adds the seed command to the application
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "seed",
		Usage:     "Write a sample people directory into a SQLite file",
		UsageText: "mentions seed [--path FILE]",
		Description: `Creates the people table if needed and inserts a handful of sample people.

Without --path the configured SQLite directory is used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Usage:       "SQLite file to seed",
				Destination: &cmd.path,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SeedCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.path
	table := directory.DefaultTable
	if dir := cmd.flags.Config.Directory; path == "" {
		if dir.Type != "sqlite" {
			path = config.DefaultDirectoryPath()
		} else {
			path = dir.Database
			table = dir.Table
		}
	}

	n, err := Seed(ctx, path, table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.Root().Writer, "Seeded %d people into %s\n", n, path)
	return err
}

// Seed writes the sample people into the SQLite file at path.
func Seed(ctx context.Context, path, table string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create directory dir: %w", err)
	}

	d := &directory.SQLiteDriver{}
	if err := d.Connect(directory.ConnectParams{Database: path, Table: table}); err != nil {
		return 0, err
	}
	defer d.Close()

	if err := d.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("create schema: %w", err)
	}
	if err := d.Seed(ctx, directory.SamplePeople); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return len(directory.SamplePeople), nil
}
