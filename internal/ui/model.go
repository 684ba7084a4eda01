// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/source"
	"github.com/nhath/mentions/internal/ui/components/mention"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
	"github.com/nhath/mentions/internal/ui/styles"
	"github.com/nhath/mentions/internal/ui/trigger"
)

// Message is a sent composer message
type Message struct {
	ID    string
	Text  string
	Spans []mention.Span
}

// committed is a mention inserted into the current draft
type committed struct {
	label string
	id    string
}

// keyMap holds the composer key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Dismiss key.Binding
	Send    key.Binding
	Quit    key.Binding
}

func newKeyMap(k config.KeyMap) keyMap {
	binding := func(keys []string, desc string) key.Binding {
		b := key.NewBinding(key.WithKeys(keys...))
		if len(keys) > 0 {
			b.SetHelp(keys[0], desc)
		}
		return b
	}
	return keyMap{
		Up:      binding(k.Up, "Up"),
		Down:    binding(k.Down, "Down"),
		Select:  binding(k.Select, "Select"),
		Dismiss: binding(k.Dismiss, "Dismiss"),
		Send:    binding(k.Send, "Send"),
		Quit:    binding(k.Quit, "Quit"),
	}
}

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	width, height int
	config        *config.Config
	registry      *source.Registry
	historyStore  *history.Store
	log           zerolog.Logger
	keys          keyMap

	// Components
	input      textinput.Model
	transcript viewport.Model
	overlay    suggestions.Model
	messages   []Message

	// Active trigger
	active    bool
	match     trigger.Match
	dismissed int // start offset of a dismissed trigger word, -1 when none
	draft     []committed

	// Overlay props
	suggestions suggestions.Suggestions
	focus       int
	pending     map[suggestions.Descriptor]bool

	// Debounce and lookup sequencing
	debounceID int
	loadSeq    int

	// Status
	statusMsg string
	errorMsg  string
}

// NewModel creates a new UI model. store may be nil, in which case
// committed mentions are not recorded.
func NewModel(cfg *config.Config, registry *source.Registry, store *history.Store, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message, @ to mention someone..."
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.MessageStyle
	ti.CharLimit = 2000
	ti.Width = 80
	ti.Focus()

	vp := viewport.New(80, 10)

	ov := suggestions.New().
		SetStyles(suggestions.DefaultStyles().Merge(styles.Suggestions())).
		SetMaxHeight(cfg.Overlay.MaxHeight).
		SetWidth(cfg.Overlay.Width).
		OnSelect(func(e suggestions.Entity, d suggestions.Descriptor) tea.Cmd {
			return func() tea.Msg { return MentionSelectedMsg{Entity: e, Descriptor: d} }
		}).
		OnMouseEnter(func(index int) tea.Cmd {
			return func() tea.Msg { return MentionHoveredMsg{Index: index} }
		})

	if registry == nil {
		registry = source.NewRegistry()
	}

	return Model{
		config:       cfg,
		registry:     registry,
		historyStore: store,
		log:          log,
		keys:         newKeyMap(cfg.Keys),
		input:        ti,
		transcript:   vp,
		overlay:      ov,
		dismissed:    -1,
		focus:        suggestions.NoFocus,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.overlay.Init())
}
