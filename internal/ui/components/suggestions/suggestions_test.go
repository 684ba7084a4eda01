package suggestions

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/mentions/internal/ui/icons"
	"github.com/nhath/mentions/internal/ui/tuitest"
)

func users(n int) Suggestions {
	entities := make([]Entity, n)
	for i := range entities {
		entities[i] = Text(fmt.Sprintf("user%d", i))
	}
	return NewSuggestions(Group{Descriptor: people, Entities: entities})
}

func TestView_HiddenWithoutDataOrLoading(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	m = m.SetProps(Props{Suggestions: NewSuggestions(Group{Descriptor: people}), FocusIndex: NoFocus})
	assert.Empty(t, m.View())
}

func TestView_LoadingWithoutSuggestions(t *testing.T) {
	m := New().SetProps(Props{FocusIndex: NoFocus, IsLoading: true})

	require.True(t, m.Visible())
	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Loading...")
}

func TestView_LoadingIndicatorAfterList(t *testing.T) {
	m := New().SetProps(Props{Suggestions: users(2), FocusIndex: 0, IsLoading: true})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "user0")
	assert.Contains(t, out, "user1")
	assert.Greater(t, indexOf(out, "Loading..."), indexOf(out, "user1"))
}

func TestView_MarksOnlyFocusedEntry(t *testing.T) {
	m := New().SetProps(Props{Suggestions: users(3), FocusIndex: 1})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, icons.IconSelect+" user1")
	assert.NotContains(t, out, icons.IconSelect+" user0")
	assert.NotContains(t, out, icons.IconSelect+" user2")

	e, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, "user1", e.Key)
}

func TestOutOfRangeFocus(t *testing.T) {
	m := New().SetMaxHeight(2).SetProps(Props{
		Suggestions:           users(3),
		FocusIndex:            999,
		ScrollFocusedIntoView: true,
	})

	_, ok := m.Focused()
	assert.False(t, ok)
	assert.NotContains(t, tuitest.StripANSI(m.View()), icons.IconSelect)
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestAutoScroll_NearestEdge(t *testing.T) {
	m := New().SetMaxHeight(3)
	props := Props{Suggestions: users(10), ScrollFocusedIntoView: true}

	props.FocusIndex = 5
	m = m.SetProps(props)
	assert.Equal(t, 3, m.ScrollOffset())

	props.FocusIndex = 1
	m = m.SetProps(props)
	assert.Equal(t, 1, m.ScrollOffset())

	props.FocusIndex = 2
	m = m.SetProps(props)
	assert.Equal(t, 1, m.ScrollOffset(), "visible item must not move the list")

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "user1")
	assert.Contains(t, out, "user3")
	assert.NotContains(t, out, "user0")
	assert.NotContains(t, out, "user4")
}

func TestAutoScroll_Disabled(t *testing.T) {
	m := New().SetMaxHeight(3).SetProps(Props{
		Suggestions:           users(10),
		FocusIndex:            8,
		ScrollFocusedIntoView: false,
	})
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestAutoScroll_MultiLineItems(t *testing.T) {
	tall := ItemRendererFunc(func(p ItemProps) string {
		return lipgloss.JoinVertical(lipgloss.Left, p.Entity.Display(), "  detail")
	})
	m := New().SetRenderer(tall).SetMaxHeight(4).SetProps(Props{
		Suggestions:           users(5),
		FocusIndex:            3,
		ScrollFocusedIntoView: true,
	})

	// item 3 spans lines [6, 8)
	assert.Equal(t, 4, m.ScrollOffset())
}

func TestSelect_ForwardsUnchanged(t *testing.T) {
	type call struct {
		e Entity
		d Descriptor
	}
	var calls []call
	m := New().OnSelect(func(e Entity, d Descriptor) tea.Cmd {
		calls = append(calls, call{e, d})
		return nil
	})
	before := m.Props()

	m.Select(Text("bob"), people)

	require.Len(t, calls, 1)
	assert.Equal(t, Text("bob"), calls[0].e)
	assert.Equal(t, people, calls[0].d)
	assert.Equal(t, before, m.Props())
}

func TestSelect_DefaultIsNoop(t *testing.T) {
	m := New()
	assert.Nil(t, m.Select(Text("bob"), people))
}

func TestMouse_ClickSelectsItemUnderPointer(t *testing.T) {
	var got []string
	m := New().SetPosition(10, 4).OnSelect(func(e Entity, _ Descriptor) tea.Cmd {
		got = append(got, e.ID())
		return nil
	}).SetProps(Props{Suggestions: users(3), FocusIndex: 0})

	// border takes row 4; items start at row 5
	m, _ = m.Update(tuitest.Click(12, 5))
	m, _ = m.Update(tuitest.Click(12, 7))
	m, _ = m.Update(tuitest.Click(12, 4))
	m, _ = m.Update(tuitest.Click(2, 6))

	assert.Equal(t, []string{"user0", "user2"}, got)
}

func TestMouse_ClickHonoursScrollOffset(t *testing.T) {
	var got string
	m := New().SetMaxHeight(3).OnSelect(func(e Entity, _ Descriptor) tea.Cmd {
		got = e.ID()
		return nil
	}).SetProps(Props{Suggestions: users(10), FocusIndex: 6, ScrollFocusedIntoView: true})
	require.Equal(t, 4, m.ScrollOffset())

	m.Update(tuitest.Click(3, 1))
	assert.Equal(t, "user4", got)
}

func TestMouse_HoverNotifiesOncePerItem(t *testing.T) {
	var hovered []int
	m := New().OnMouseEnter(func(i int) tea.Cmd {
		hovered = append(hovered, i)
		return nil
	}).SetProps(Props{Suggestions: users(3), FocusIndex: 0})

	m, _ = m.Update(tuitest.Motion(3, 2))
	m, _ = m.Update(tuitest.Motion(5, 2))
	m, _ = m.Update(tuitest.Motion(5, 3))
	m, _ = m.Update(tuitest.Motion(5, 30))
	m, _ = m.Update(tuitest.Motion(5, 3))

	assert.Equal(t, []int{1, 2, 2}, hovered)
	assert.Equal(t, 0, m.Props().FocusIndex, "hover never moves focus by itself")
}

func TestMouse_HoverWithoutCallbackIsNoop(t *testing.T) {
	m := New().SetProps(Props{Suggestions: users(3), FocusIndex: 0})

	var cmd tea.Cmd
	assert.NotPanics(t, func() { m, cmd = m.Update(tuitest.Motion(3, 2)) })
	assert.Nil(t, cmd)
}

func TestStyles_MergeOverrides(t *testing.T) {
	base := DefaultStyles()
	loading := lipgloss.NewStyle().Bold(true)
	merged := base.Merge(Overrides{LoadingIndicator: &loading})

	assert.True(t, merged.LoadingIndicator.GetBold())
	assert.True(t, merged.LoadingIndicator.GetItalic(), "unset properties fall back to defaults")
	assert.Equal(t, base.Item.GetForeground(), merged.Item.GetForeground())
}

func TestRenderer_ReceivesItemProps(t *testing.T) {
	var seen []ItemProps
	r := ItemRendererFunc(func(p ItemProps) string {
		seen = append(seen, p)
		return p.Key
	})
	s := NewSuggestions(
		Group{Descriptor: recent, Entities: []Entity{Text("bob")}},
		Group{Descriptor: people, Entities: []Entity{MustRecord("u1", "Bea", "")}},
	)
	New().SetRenderer(r).SetProps(Props{Suggestions: s, FocusIndex: 1})

	require.NotEmpty(t, seen)
	last := seen[len(seen)-2:]
	assert.Equal(t, "bob", last[0].ID)
	assert.Equal(t, 0, last[0].Index)
	assert.False(t, last[0].Focused)
	assert.Equal(t, "u1", last[1].Key)
	assert.Equal(t, "people", last[1].Descriptor.Source)
	assert.Equal(t, "b", last[1].Query)
	assert.True(t, last[1].Focused)
}

func TestNav(t *testing.T) {
	assert.Equal(t, 0, NextIndex(NoFocus, 3))
	assert.Equal(t, 2, NextIndex(1, 3))
	assert.Equal(t, 0, NextIndex(2, 3))
	assert.Equal(t, NoFocus, NextIndex(0, 0))

	assert.Equal(t, 2, PrevIndex(NoFocus, 3))
	assert.Equal(t, 2, PrevIndex(0, 3))
	assert.Equal(t, 0, PrevIndex(1, 3))
	assert.Equal(t, 2, PrevIndex(999, 3))
	assert.Equal(t, NoFocus, PrevIndex(0, 0))
}

func TestHighlightQuery(t *testing.T) {
	hl := lipgloss.NewStyle()
	assert.Equal(t, "Bobby", highlightQuery("Bobby", "", hl))
	assert.Equal(t, "Bobby", tuitest.StripANSI(highlightQuery("Bobby", "bb", hl)))
	assert.Equal(t, "Bobby", highlightQuery("Bobby", "zz", hl))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestStyles_MergeKeepsSpacing(t *testing.T) {
	border := lipgloss.NewStyle().BorderForeground(lipgloss.Color("#FF0000"))
	merged := DefaultStyles().Merge(Overrides{Container: &border})

	_, right, _, left := merged.Container.GetPadding()
	assert.Equal(t, 1, right)
	assert.Equal(t, 1, left)
}
