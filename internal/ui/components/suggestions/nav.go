package suggestions

// NextIndex moves focus one entry down, wrapping to the top. With no focus
// it starts at the first entry.
func NextIndex(focus, count int) int {
	if count <= 0 {
		return NoFocus
	}
	if focus < 0 || focus >= count-1 {
		return 0
	}
	return focus + 1
}

// PrevIndex moves focus one entry up, wrapping to the bottom. With no focus
// it starts at the last entry.
func PrevIndex(focus, count int) int {
	if count <= 0 {
		return NoFocus
	}
	if focus <= 0 || focus >= count {
		return count - 1
	}
	return focus - 1
}
