package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/directory"
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

func ids(es []suggestions.Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}
	return out
}

func TestFuzzy(t *testing.T) {
	f := NewFuzzy("channels", []string{"general", "random", "engineering", "design"})
	ctx := context.Background()

	all, err := f.Suggest(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"general", "random", "engineering", "design"}, ids(all))

	got, err := f.Suggest(ctx, "gen", 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "general", got[0].ID())
	assert.NotContains(t, ids(got), "random")

	limited, err := f.Suggest(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestFuzzy_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFuzzy("x", []string{"a"}).Suggest(ctx, "a", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrefix(t *testing.T) {
	p := NewPrefix("tags", []string{"bug", "Blocker", "feature", "followup"})
	ctx := context.Background()

	got, err := p.Suggest(ctx, "b", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blocker", "bug"}, ids(got))

	got, err = p.Suggest(ctx, "FO", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"followup"}, ids(got))

	got, err = p.Suggest(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = p.Suggest(ctx, "zzz", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDirectory(t *testing.T) {
	d := &directory.SQLiteDriver{}
	require.NoError(t, d.Connect(directory.ConnectParams{Database: ":memory:"}))
	defer d.Close()
	ctx := context.Background()
	require.NoError(t, d.EnsureSchema(ctx))
	require.NoError(t, d.Seed(ctx, directory.SamplePeople))

	got, err := NewDirectory(d).Suggest(ctx, "grace", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, suggestions.KindRecord, got[0].Kind())
	assert.Equal(t, "u-007", got[0].ID())
	assert.Equal(t, "Grace Hopper", got[0].Display())
	assert.Equal(t, "Compilers", got[0].Detail())
}

func TestRecent(t *testing.T) {
	store, err := history.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	now := time.Now().UTC()
	require.NoError(t, store.Add(&history.Entry{Trigger: "@", Source: "directory", EntityID: "u-001", Display: "Ada Lovelace", IsRecord: true, MentionedAt: now}))
	require.NoError(t, store.Add(&history.Entry{Trigger: "#", Source: "channels", EntityID: "general", Display: "general", MentionedAt: now}))

	people, err := NewRecent(store, "@").Suggest(context.Background(), "ad", 5)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, suggestions.KindRecord, people[0].Kind())
	assert.Equal(t, "u-001", people[0].ID())

	channels, err := NewRecent(store, "#").Suggest(context.Background(), "", 5)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, suggestions.Text("general"), channels[0])
}

func TestBuildAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	store, err := history.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	r, err := Build(cfg, nil, store)
	require.NoError(t, err)

	at := cfg.Triggers[0]
	recent, ok := r.Lookup(at, config.SourceRecent)
	require.True(t, ok)
	assert.Equal(t, "recent@", recent.Name())

	_, ok = r.Lookup(at, config.SourceDirectory)
	assert.False(t, ok, "directory is not registered without a driver")

	channels, ok := r.Lookup(cfg.Triggers[1], "channels")
	require.True(t, ok)
	assert.IsType(t, &Fuzzy{}, channels)

	tags, ok := r.Get("tags")
	require.True(t, ok)
	assert.IsType(t, &Prefix{}, tags)
}

func TestBuild_UnknownListKind(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lists["bad"] = config.List{Kind: "regex"}

	_, err := Build(cfg, nil, nil)
	assert.Error(t, err)
}
