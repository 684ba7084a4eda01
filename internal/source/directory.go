package source

import (
	"context"

	"github.com/nhath/mentions/internal/directory"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// Directory suggests people from a database directory.
type Directory struct {
	driver directory.Driver
}

// NewDirectory wraps a connected driver.
func NewDirectory(d directory.Driver) *Directory {
	return &Directory{driver: d}
}

// Name implements Source.
func (d *Directory) Name() string { return "directory" }

// Suggest implements Source.
func (d *Directory) Suggest(ctx context.Context, query string, limit int) ([]suggestions.Entity, error) {
	people, err := d.driver.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	out := make([]suggestions.Entity, 0, len(people))
	for _, p := range people {
		e, err := suggestions.NewRecord(p.ID, p.DisplayName, p.Title)
		if err != nil {
			// rows without an id cannot be mentioned
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
