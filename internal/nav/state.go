// Package nav holds the navbar state machine: which section is active,
// whether the page has scrolled past the header, and whether the mobile
// menu is open. Everything here is pure; the browser measures the layout
// and the server only reduces events into a new UIState.
package nav

// SectionID names a rendered page section, matching its HTML id attribute.
type SectionID string

// Hero is the first section on the page and the initial active section.
const Hero SectionID = "hero"

// Layout is one section as measured by the browser at event time.
type Layout struct {
	ID     SectionID `json:"id"`
	Top    float64   `json:"top"`
	Height float64   `json:"height"`
}

// UIState is the per-tab navbar state. It is never persisted; the browser
// echoes it back with every event.
type UIState struct {
	MenuOpen      bool      `json:"menuOpen"`
	ActiveSection SectionID `json:"activeSection"`
	Scrolled      bool      `json:"scrolled"`
}

// DefaultState is the state at first render.
func DefaultState() UIState {
	return UIState{
		MenuOpen:      false,
		ActiveSection: Hero,
		Scrolled:      false,
	}
}

// Normalize fills in an empty active section, which only happens when a
// client posts a state it never received from us.
func (s UIState) Normalize() UIState {
	if s.ActiveSection == "" {
		s.ActiveSection = Hero
	}
	return s
}
