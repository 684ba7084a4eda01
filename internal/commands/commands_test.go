package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/directory"
	"github.com/nhath/mentions/internal/history"
)

func TestSeedThenOpenDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "people.db")

	n, err := Seed(ctx, path, "")
	require.NoError(t, err)
	assert.Equal(t, len(directory.SamplePeople), n)

	// seeding twice is idempotent
	_, err = Seed(ctx, path, "")
	require.NoError(t, err)

	d, err := openDirectory(ctx, config.Directory{Type: "sqlite", Database: path}, nil)
	require.NoError(t, err)
	defer d.Close()

	people, err := d.Search(ctx, "ken", 5)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Ken Thompson", people[0].DisplayName)
}

func TestOpenDirectory_CreatesEmptySQLiteSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")

	d, err := openDirectory(ctx, config.Directory{Type: "sqlite", Database: path}, nil)
	require.NoError(t, err)
	defer d.Close()

	people, err := d.Search(ctx, "a", 5)
	require.NoError(t, err)
	assert.Empty(t, people)
}

type staticSecrets map[string]string

func (s staticSecrets) GetPassword(name string) (string, error) {
	return s[name], nil
}

func TestOpenDirectory_UnknownType(t *testing.T) {
	_, err := openDirectory(context.Background(), config.Directory{Type: "oracle", Name: "x"}, nil)
	assert.Error(t, err)
}

func TestOpenDirectory_UnreachablePostgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dir := config.Directory{Name: "prod", DSN: "postgres://app@127.0.0.1:1/people"}
	_, err := openDirectory(ctx, dir, staticSecrets{"prod": "secret"})
	require.Error(t, err)

	var connErr *directory.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestReadSecret(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "line", in: "hunter2\n", want: "hunter2"},
		{name: "crlf", in: "hunter2\r\n", want: "hunter2"},
		{name: "no newline", in: "hunter2", want: "hunter2"},
		{name: "empty", in: "", wantErr: true},
		{name: "blank line", in: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSecret(strings.NewReader(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForget(t *testing.T) {
	store, err := history.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	e := &history.Entry{Trigger: "@", Source: "directory", EntityID: "u-001", Display: "Ada Lovelace", IsRecord: true, MentionedAt: time.Now().UTC()}
	require.NoError(t, store.Add(e))

	var out bytes.Buffer
	require.NoError(t, forget(store, e.ID, &out))
	assert.Equal(t, "Forgot @Ada Lovelace\n", out.String())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Error(t, forget(store, e.ID, &out))
}
