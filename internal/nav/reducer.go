package nav

// Event is something the browser reports about the page.
type Event interface {
	// Name labels the event in logs and metrics.
	Name() string
}

// ScrollEvent is a window scroll, or the initial measurement after load.
type ScrollEvent struct {
	Offset   float64
	Sections []Layout
}

// NavigateEvent is a click on a navigation control.
type NavigateEvent struct {
	Target   SectionID
	Sections []Layout
}

// ToggleMenuEvent is a click on the mobile menu button.
type ToggleMenuEvent struct{}

func (ScrollEvent) Name() string     { return "scroll" }
func (NavigateEvent) Name() string   { return "navigate" }
func (ToggleMenuEvent) Name() string { return "menu" }

// Effect is what the browser must do besides re-rendering.
type Effect struct {
	// Scroll is set when the viewport has to move.
	Scroll *ScrollCommand
}

// Reduce applies event to state. Unknown events leave state untouched.
func Reduce(state UIState, event Event) (UIState, Effect) {
	switch e := event.(type) {
	case ScrollEvent:
		return Track(state, e.Offset, e.Sections), Effect{}
	case NavigateEvent:
		next, cmd, ok := Navigate(state, e.Target, e.Sections)
		if !ok {
			return state, Effect{}
		}
		return next, Effect{Scroll: &cmd}
	case ToggleMenuEvent:
		return ToggleMenu(state), Effect{}
	default:
		return state, Effect{}
	}
}
