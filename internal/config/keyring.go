package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "mentions"

// SecretStore looks up stored passwords by directory name
type SecretStore interface {
	GetPassword(name string) (string, error)
}

// KeyringStore manages password storage in system keyring
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore creates a new keyring store instance
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// NewKeyringStoreWith wraps an already opened keyring
func NewKeyringStoreWith(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

// SetPassword stores a password for a directory
func (k *KeyringStore) SetPassword(name, password string) error {
	return k.ring.Set(keyring.Item{
		Key:  name,
		Data: []byte(password),
	})
}

// GetPassword retrieves a password for a directory
func (k *KeyringStore) GetPassword(name string) (string, error) {
	item, err := k.ring.Get(name)
	if err != nil {
		return "", fmt.Errorf("password not found for directory %s: %w", name, err)
	}
	return string(item.Data), nil
}

// DeletePassword removes a password for a directory
func (k *KeyringStore) DeletePassword(name string) error {
	return k.ring.Remove(name)
}
