package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	people   = Descriptor{Mention: MentionDescriptor{Trigger: "@", Source: "people"}, Query: "b"}
	recent   = Descriptor{Mention: MentionDescriptor{Trigger: "@", Source: "recent"}, Query: "b"}
	channels = Descriptor{Mention: MentionDescriptor{Trigger: "#", Source: "channels"}, Query: "ge"}
)

func TestAggregate_OrderAndIndexes(t *testing.T) {
	s := NewSuggestions(
		Group{Descriptor: recent, Entities: []Entity{Text("bob")}},
		Group{Descriptor: people, Entities: []Entity{
			MustRecord("u1", "Bea", "design"),
			MustRecord("u2", "Bill", ""),
		}},
		Group{Descriptor: channels, Entities: []Entity{Text("general")}},
	)

	entries := Aggregate(s)
	require.Len(t, entries, 4)

	want := []struct {
		key  string
		desc Descriptor
	}{
		{"bob", recent},
		{"u1", people},
		{"u2", people},
		{"general", channels},
	}
	for i, w := range want {
		assert.Equal(t, i, entries[i].Index)
		assert.Equal(t, w.key, entries[i].Key)
		assert.Equal(t, w.desc, entries[i].Descriptor)
	}
	assert.Equal(t, len(entries), Count(s))
}

func TestAggregate_Empty(t *testing.T) {
	tests := []struct {
		name string
		in   Suggestions
	}{
		{name: "zero value", in: Suggestions{}},
		{name: "no groups", in: NewSuggestions()},
		{name: "empty groups", in: NewSuggestions(
			Group{Descriptor: people},
			Group{Descriptor: channels, Entities: []Entity{}},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Aggregate(tt.in))
			assert.Equal(t, 0, Count(tt.in))
		})
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	s := NewSuggestions(
		Group{Descriptor: people, Entities: []Entity{Text("a"), Text("b")}},
		Group{Descriptor: channels, Entities: []Entity{Text("c")}},
	)
	assert.Equal(t, Aggregate(s), Aggregate(s))
}

func TestSuggestions_SetKeepsPosition(t *testing.T) {
	s := NewSuggestions(
		Group{Descriptor: recent},
		Group{Descriptor: people},
	)
	updated := s.Set(recent, []Entity{Text("bob")})

	require.Equal(t, 2, updated.Len())
	assert.Equal(t, recent, updated.Groups()[0].Descriptor)
	assert.Equal(t, people, updated.Groups()[1].Descriptor)

	got, ok := updated.Get(recent)
	require.True(t, ok)
	assert.Equal(t, []Entity{Text("bob")}, got)

	// the original mapping is untouched
	orig, _ := s.Get(recent)
	assert.Empty(t, orig)
}

func TestNewSuggestions_RepeatedDescriptorReplaces(t *testing.T) {
	s := NewSuggestions(
		Group{Descriptor: people, Entities: []Entity{Text("a")}},
		Group{Descriptor: channels, Entities: []Entity{Text("c")}},
		Group{Descriptor: people, Entities: []Entity{Text("b")}},
	)

	entries := Aggregate(s)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Key)
	assert.Equal(t, "c", entries[1].Key)
}

func TestEntityIdentity(t *testing.T) {
	text := Text("bob")
	assert.Equal(t, KindText, text.Kind())
	assert.Equal(t, "bob", text.ID())
	assert.Equal(t, "bob", text.Display())

	rec := MustRecord("u42", "Bob Smith", "eng")
	assert.Equal(t, KindRecord, rec.Kind())
	assert.Equal(t, "u42", rec.ID())
	assert.Equal(t, "Bob Smith", rec.Display())
	assert.Equal(t, "eng", rec.Detail())

	noDisplay := MustRecord("u7", "", "")
	assert.Equal(t, "u7", noDisplay.Display())
}

func TestNewRecord_MissingID(t *testing.T) {
	_, err := NewRecord("", "Nobody", "")
	require.ErrorIs(t, err, ErrMissingID)

	assert.Panics(t, func() { MustRecord("", "Nobody", "") })
}

func TestAggregate_PanicsOnRecordWithoutID(t *testing.T) {
	s := NewSuggestions(Group{Descriptor: people, Entities: []Entity{{kind: KindRecord}}})
	assert.Panics(t, func() { Aggregate(s) })
}
