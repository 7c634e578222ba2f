package nav

// HeaderOffset is the height of the fixed navbar; navigation stops this far
// above the section top so the heading is not hidden.
const HeaderOffset = 80

// BehaviorSmooth asks the browser for an animated scroll.
const BehaviorSmooth = "smooth"

// ScrollCommand is a viewport scroll for the browser to perform. The
// animation duration belongs to the browser.
type ScrollCommand struct {
	Top      float64 `json:"top"`
	Behavior string  `json:"behavior"`
}

// Find returns the layout for id.
func Find(id SectionID, sections []Layout) (Layout, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Layout{}, false
}

// Navigate scrolls to target and closes the mobile menu. If target is not
// among sections nothing changes and ok is false; callers treat that as a
// silent no-op.
func Navigate(state UIState, target SectionID, sections []Layout) (UIState, ScrollCommand, bool) {
	section, ok := Find(target, sections)
	if !ok {
		return state, ScrollCommand{}, false
	}

	state.MenuOpen = false
	return state, ScrollCommand{
		Top:      section.Top - HeaderOffset,
		Behavior: BehaviorSmooth,
	}, true
}

// ToggleMenu flips the mobile menu.
func ToggleMenu(state UIState) UIState {
	state.MenuOpen = !state.MenuOpen
	return state
}
