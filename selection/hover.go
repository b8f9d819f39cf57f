package selection

// CommitHover decides whether a drag gesture hovering over the entry at
// hoverIndex should commit a Move from dragIndex. pointerOffset is the
// pointer's distance from the top of the hovered entry and height is that
// entry's on-screen extent.
//
// The move commits only once the pointer crosses the hovered entry's
// midpoint in the direction of travel: dragging forward commits below the
// midpoint, dragging backward commits above it. The hysteresis keeps
// adjacent entries from swapping back and forth while the pointer sits
// near a boundary.
func CommitHover(dragIndex, hoverIndex, pointerOffset, height int) bool {
	if dragIndex == hoverIndex || height <= 0 {
		return false
	}
	middle := height / 2
	if dragIndex < hoverIndex && pointerOffset < middle {
		return false
	}
	if dragIndex > hoverIndex && pointerOffset > middle {
		return false
	}
	return true
}
