package source

import (
	"context"

	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// Recent suggests entities previously mentioned with the same trigger.
type Recent struct {
	store   *history.Store
	trigger string
}

// NewRecent returns a recent source scoped to trigger.
func NewRecent(store *history.Store, trigger string) *Recent {
	return &Recent{store: store, trigger: trigger}
}

// Name implements Source.
func (r *Recent) Name() string { return RecentName(r.trigger) }

// Suggest implements Source.
func (r *Recent) Suggest(_ context.Context, query string, limit int) ([]suggestions.Entity, error) {
	entries, err := r.store.Recent(r.trigger, query, limit)
	if err != nil {
		return nil, err
	}

	out := make([]suggestions.Entity, 0, len(entries))
	for _, e := range entries {
		if !e.IsRecord {
			out = append(out, suggestions.Text(e.EntityID))
			continue
		}
		ent, err := suggestions.NewRecord(e.EntityID, e.Display, "recent")
		if err != nil {
			continue
		}
		out = append(out, ent)
	}
	return out, nil
}
