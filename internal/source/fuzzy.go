package source

import (
	"context"

	"github.com/sahilm/fuzzy"

	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// Fuzzy ranks a static list with fuzzy matching.
type Fuzzy struct {
	name  string
	items []string
}

// NewFuzzy returns a fuzzy source over items.
func NewFuzzy(name string, items []string) *Fuzzy {
	return &Fuzzy{name: name, items: items}
}

// Name implements Source.
func (f *Fuzzy) Name() string { return f.name }

// Suggest implements Source. An empty query lists items in their
// configured order.
func (f *Fuzzy) Suggest(ctx context.Context, query string, limit int) ([]suggestions.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []suggestions.Entity
	if query == "" {
		for _, item := range f.items {
			out = append(out, suggestions.Text(item))
		}
	} else {
		for _, m := range fuzzy.Find(query, f.items) {
			out = append(out, suggestions.Text(m.Str))
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
