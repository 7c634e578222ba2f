package nav

const (
	// ScrolledThreshold is the offset past which the navbar switches to its
	// solid style.
	ScrolledThreshold = 50
	// Lookahead makes a section active this many pixels before its top
	// reaches the viewport top.
	Lookahead = 200
)

// ActiveSection returns the last section, in document order, whose top
// minus Lookahead is at or above offset. Later matches overwrite earlier
// ones, so the lowest qualifying section wins. ok is false when nothing
// qualifies.
func ActiveSection(offset float64, sections []Layout) (id SectionID, ok bool) {
	for _, s := range sections {
		if offset >= s.Top-Lookahead {
			id, ok = s.ID, true
		}
	}
	return id, ok
}

// IsScrolled reports whether offset is past ScrolledThreshold.
func IsScrolled(offset float64) bool {
	return offset > ScrolledThreshold
}

// Track recomputes the scroll-derived fields of state. When no section
// qualifies (including an empty layout) the previous active section is
// kept.
func Track(state UIState, offset float64, sections []Layout) UIState {
	state.Scrolled = IsScrolled(offset)
	if id, ok := ActiveSection(offset, sections); ok && id != "" {
		state.ActiveSection = id
	}
	return state
}
