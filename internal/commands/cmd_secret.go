package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nhath/mentions/internal/config"
)

type SecretCmd struct {
	flags *Flags

	// flags
	delete bool
}

// NewSecretCmd creates a new secret command
func NewSecretCmd(flags *Flags) *SecretCmd {
	return &SecretCmd{flags: flags}
}

// Register adds the secret command to the application
func (cmd *SecretCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "secret",
		Usage:     "Store the people directory password in the OS keyring",
		UsageText: "echo PASSWORD | mentions secret\n   mentions secret --delete",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "delete",
				Usage:       "remove the stored password",
				Destination: &cmd.delete,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SecretCmd) run(ctx context.Context, c *cli.Command) error {
	name := cmd.flags.Config.Directory.Name
	if name == "" {
		return errors.New("directory has no name; set [directory].name in the config")
	}

	ks, err := config.NewKeyringStore()
	if err != nil {
		return err
	}

	if cmd.delete {
		if err := ks.DeletePassword(name); err != nil {
			return fmt.Errorf("delete password: %w", err)
		}
		_, err = fmt.Fprintf(c.Root().Writer, "Removed password for %s\n", name)
		return err
	}

	password, err := readSecret(c.Root().Reader)
	if err != nil {
		return err
	}
	if err := ks.SetPassword(name, password); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	_, err = fmt.Fprintf(c.Root().Writer, "Stored password for %s\n", name)
	return err
}

// readSecret reads the first line of r, which defaults to stdin.
func readSecret(r io.Reader) (string, error) {
	if r == nil {
		r = os.Stdin
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}
