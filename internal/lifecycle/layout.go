package lifecycle

import "github.com/cristianoliveira/bubbletoast/internal/entity"

// Layout constants, in terminal rows.
const (
	// heightCompact is the rendered height of a toast without a description.
	heightCompact = 3
	// heightExtended is the rendered height of a toast with a description.
	heightExtended = 4
	// spacing is the fixed gap between stacked toasts.
	spacing = 1
	// edgeMargin is the base offset from the anchoring screen edge for
	// top- and bottom-anchored stacks.
	edgeMargin = 1
)

// Height returns the rendered height in rows for a toast.
func Height(t *entity.Toast) int {
	if t.Description != "" {
		return heightExtended
	}
	return heightCompact
}

// OffscreenOffset returns the starting (and exit target) offset for a
// toast: just outside the viewport on the anchoring side.
func OffscreenOffset(t *entity.Toast) float64 {
	return -float64(Height(t) + spacing)
}

// StackOffset computes the resting offset for a toast given the full
// active set. Offsets grow away from the anchoring edge by stacking
// index; center-anchored toasts are re-centered by half the total stack
// extent so the stack grows symmetrically around the middle.
func StackOffset(t *entity.Toast, active []*entity.Toast) float64 {
	offset := float64(t.Index * (Height(t) + spacing))
	switch t.Position {
	case entity.PositionCenter:
		return offset - StackExtent(active)/2
	default:
		return offset + edgeMargin
	}
}

// StackExtent returns the total height of the active stack, including
// inter-toast spacing.
func StackExtent(active []*entity.Toast) float64 {
	total := 0
	for _, t := range active {
		total += Height(t) + spacing
	}
	if total > 0 {
		total -= spacing
	}
	return float64(total)
}
