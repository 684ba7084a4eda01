package source

import (
	"context"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// Prefix completes a static list by case-insensitive prefix.
type Prefix struct {
	name string
	trie *patricia.Trie
}

// NewPrefix indexes items in a patricia trie keyed by their lowercase form.
func NewPrefix(name string, items []string) *Prefix {
	trie := patricia.NewTrie()
	for _, item := range items {
		trie.Insert(patricia.Prefix(strings.ToLower(item)), item)
	}
	return &Prefix{name: name, trie: trie}
}

// Name implements Source.
func (p *Prefix) Name() string { return p.name }

// Suggest implements Source. Results are sorted alphabetically.
func (p *Prefix) Suggest(ctx context.Context, query string, limit int) ([]suggestions.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var words []string
	err := p.trie.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(_ patricia.Prefix, item patricia.Item) error {
		words = append(words, item.(string))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	out := make([]suggestions.Entity, len(words))
	for i, w := range words {
		out[i] = suggestions.Text(w)
	}
	return out, nil
}
