package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/directory"
)

// keyringSecrets opens the OS keyring for directory passwords. SQLite
// directories need none.
func keyringSecrets(dir config.Directory) config.SecretStore {
	if dir.Type == "sqlite" {
		return nil
	}
	ks, err := config.NewKeyringStore()
	if err != nil {
		log.Warn().Err(err).Msg("keyring unavailable, connecting without stored password")
		return nil
	}
	return ks
}

// openDirectory connects to the configured people directory. SQLite
// directories get their schema created on first use.
func openDirectory(ctx context.Context, dir config.Directory, secrets config.SecretStore) (directory.Driver, error) {
	resolved, err := dir.Resolved(secrets)
	if err != nil {
		return nil, err
	}

	driver, err := directory.NewDriver(directory.DriverType(resolved.Type))
	if err != nil {
		return nil, err
	}

	if resolved.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(resolved.Database), 0o755); err != nil {
			return nil, fmt.Errorf("create directory dir: %w", err)
		}
	}

	err = driver.Connect(directory.ConnectParams{
		Host:     resolved.Host,
		Port:     resolved.Port,
		User:     resolved.User,
		Password: resolved.Password,
		Database: resolved.Database,
		Table:    resolved.Table,
	})
	if err != nil {
		return nil, err
	}

	if err := driver.Ping(ctx); err != nil {
		_ = driver.Close()
		return nil, directory.WrapConnectionError(err)
	}

	if s, ok := driver.(*directory.SQLiteDriver); ok {
		if err := s.EnsureSchema(ctx); err != nil {
			_ = driver.Close()
			return nil, err
		}
	}
	return driver, nil
}
