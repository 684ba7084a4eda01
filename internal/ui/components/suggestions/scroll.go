package suggestions

// Bounds is a vertical extent in a coordinate space shared by the container
// and its items. Bottom is exclusive.
type Bounds struct {
	Top    int
	Bottom int
}

// Geometry exposes the realized layout of the list after a render commit.
type Geometry interface {
	ScrollOffset() int
	SetScrollOffset(offset int)
	VisibleHeight() int
	ContentHeight() int
	ContainerBounds() Bounds
	// ItemBounds reports the bounds of the item at a flat index, if rendered.
	ItemBounds(index int) (Bounds, bool)
}

// ScrollIntoView moves the scroll offset the minimum distance needed to show
// the focused item. It reports whether the offset changed.
func ScrollIntoView(g Geometry, focusIndex int) bool {
	visible := g.VisibleHeight()
	if visible <= 0 || g.ContentHeight() <= visible {
		return false
	}

	item, ok := g.ItemBounds(focusIndex)
	if !ok {
		return false
	}

	scrollTop := g.ScrollOffset()
	containerTop := g.ContainerBounds().Top
	top := item.Top - containerTop + scrollTop
	bottom := item.Bottom - containerTop + scrollTop

	switch {
	case top < scrollTop:
		g.SetScrollOffset(top)
	case bottom > scrollTop+visible:
		g.SetScrollOffset(bottom - visible)
	default:
		return false
	}
	return true
}
