package suggestions

import "fmt"

// Group is the ordered candidate list produced for one descriptor.
type Group struct {
	Descriptor Descriptor
	Entities   []Entity
}

// Suggestions maps descriptors to groups, keeping insertion order.
type Suggestions struct {
	groups []Group
	index  map[Descriptor]int
}

// NewSuggestions builds a mapping from groups in the given order. A repeated
// descriptor replaces the earlier group in place.
func NewSuggestions(groups ...Group) Suggestions {
	var s Suggestions
	for _, g := range groups {
		s = s.Set(g.Descriptor, g.Entities)
	}
	return s
}

// Set returns a copy with entities stored under d. Existing descriptors keep
// their position; new ones are appended.
func (s Suggestions) Set(d Descriptor, entities []Entity) Suggestions {
	groups := make([]Group, len(s.groups), len(s.groups)+1)
	copy(groups, s.groups)
	index := make(map[Descriptor]int, len(s.index)+1)
	for k, v := range s.index {
		index[k] = v
	}

	if i, ok := index[d]; ok {
		groups[i].Entities = entities
	} else {
		index[d] = len(groups)
		groups = append(groups, Group{Descriptor: d, Entities: entities})
	}
	return Suggestions{groups: groups, index: index}
}

// Get returns the entities stored under d.
func (s Suggestions) Get(d Descriptor) ([]Entity, bool) {
	i, ok := s.index[d]
	if !ok {
		return nil, false
	}
	return s.groups[i].Entities, true
}

// Groups returns the groups in iteration order.
func (s Suggestions) Groups() []Group {
	return s.groups
}

// Len returns the number of descriptors.
func (s Suggestions) Len() int {
	return len(s.groups)
}

// Entry is one entity placed at its global position in the flattened list.
type Entry struct {
	Entity     Entity
	Descriptor Descriptor
	Index      int
	// Key is the render identity; it is never used for focus math.
	Key string
}

// Aggregate flattens s in group-then-entity order with contiguous indexes.
func Aggregate(s Suggestions) []Entry {
	entries := make([]Entry, 0, Count(s))
	for _, g := range s.groups {
		for _, e := range g.Entities {
			if e.kind == KindRecord && e.id == "" {
				panic(fmt.Sprintf("suggestions: record without id in %q group", g.Descriptor.Mention.Source))
			}
			entries = append(entries, Entry{
				Entity:     e,
				Descriptor: g.Descriptor,
				Index:      len(entries),
				Key:        e.id,
			})
		}
	}
	return entries
}

// Count returns the total number of entities across all groups.
func Count(s Suggestions) int {
	n := 0
	for _, g := range s.groups {
		n += len(g.Entities)
	}
	return n
}
