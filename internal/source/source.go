// Package source provides the suggestion sources queried after a trigger.
package source

import (
	"context"
	"fmt"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/directory"
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// Source produces candidate entities for a query.
type Source interface {
	Name() string
	Suggest(ctx context.Context, query string, limit int) ([]suggestions.Entity, error)
}

// Registry resolves source names to sources.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds s under its name, replacing any previous source.
func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

// Get returns the source registered under name.
func (r *Registry) Get(name string) (Source, bool) {
	s, ok := r.sources[name]
	return s, ok
}

// Build registers one source per configured list, plus the directory and
// recent sources when their backends are given. A nil backend leaves the
// source unregistered so triggers referencing it yield empty groups.
func Build(cfg *config.Config, dir directory.Driver, store *history.Store) (*Registry, error) {
	r := NewRegistry()

	for name, list := range cfg.Lists {
		switch list.Kind {
		case "fuzzy":
			r.Register(NewFuzzy(name, list.Items))
		case "prefix":
			r.Register(NewPrefix(name, list.Items))
		default:
			return nil, fmt.Errorf("list %q: unknown kind %q", name, list.Kind)
		}
	}

	if dir != nil {
		r.Register(NewDirectory(dir))
	}
	if store != nil {
		for _, t := range cfg.Triggers {
			r.Register(NewRecent(store, t.Char))
		}
	}
	return r, nil
}

// RecentName is the registry name of the recent source for a trigger.
func RecentName(trigger string) string {
	return config.SourceRecent + trigger
}

// Lookup resolves a source name configured on trigger t. The built-in
// recent source is scoped per trigger.
func (r *Registry) Lookup(t config.Trigger, name string) (Source, bool) {
	if name == config.SourceRecent {
		name = RecentName(t.Char)
	}
	return r.Get(name)
}
