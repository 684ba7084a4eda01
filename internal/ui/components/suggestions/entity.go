package suggestions

import "errors"

// ErrMissingID is returned when a record entity is built without an id.
var ErrMissingID = errors.New("suggestions: record entity requires an id")

// Kind tags the entity variant.
type Kind uint8

const (
	// KindText is a bare string that is its own identity.
	KindText Kind = iota
	// KindRecord carries an explicit id plus display data.
	KindRecord
)

// Entity is a single mention candidate.
type Entity struct {
	kind    Kind
	id      string
	display string
	detail  string
}

// Text returns a bare textual entity.
func Text(value string) Entity {
	return Entity{kind: KindText, id: value, display: value}
}

// NewRecord returns a record entity identified by id.
func NewRecord(id, display, detail string) (Entity, error) {
	if id == "" {
		return Entity{}, ErrMissingID
	}
	return Entity{kind: KindRecord, id: id, display: display, detail: detail}, nil
}

// MustRecord is like NewRecord but panics on a missing id.
func MustRecord(id, display, detail string) Entity {
	e, err := NewRecord(id, display, detail)
	if err != nil {
		panic(err)
	}
	return e
}

// Kind returns the entity variant.
func (e Entity) Kind() Kind { return e.kind }

// ID returns the stable identity: the value itself for text, the id for records.
func (e Entity) ID() string { return e.id }

// Display returns the label shown in the list, falling back to the id.
func (e Entity) Display() string {
	if e.display == "" {
		return e.id
	}
	return e.display
}

// Detail returns secondary text, empty for text entities.
func (e Entity) Detail() string { return e.detail }

// MentionDescriptor is the trigger configuration a group was produced for.
type MentionDescriptor struct {
	Trigger     string
	Source      string
	AppendSpace bool
}

// Descriptor pairs a trigger configuration with the query typed after it.
type Descriptor struct {
	Mention MentionDescriptor
	Query   string
}
