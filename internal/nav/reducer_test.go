package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownEvent struct{}

func (unknownEvent) Name() string { return "unknown" }

func TestReduce(t *testing.T) {
	layout := pageLayout()

	t.Run("scroll then navigate then scroll", func(t *testing.T) {
		state := DefaultState()

		state, eff := Reduce(state, ToggleMenuEvent{})
		assert.True(t, state.MenuOpen)
		assert.Nil(t, eff.Scroll)

		state, eff = Reduce(state, NavigateEvent{Target: "education", Sections: layout})
		require.NotNil(t, eff.Scroll)
		assert.Equal(t, float64(3920), eff.Scroll.Top)
		assert.False(t, state.MenuOpen)

		// The browser performs the scroll and reports the new offset.
		state, eff = Reduce(state, ScrollEvent{Offset: eff.Scroll.Top, Sections: layout})
		assert.Nil(t, eff.Scroll)
		assert.Equal(t, SectionID("education"), state.ActiveSection)
		assert.True(t, state.Scrolled)
	})

	t.Run("navigate miss has no effect", func(t *testing.T) {
		state := UIState{MenuOpen: true, ActiveSection: "about"}
		got, eff := Reduce(state, NavigateEvent{Target: "nope", Sections: layout})
		assert.Equal(t, state, got)
		assert.Nil(t, eff.Scroll)
	})

	t.Run("unknown event", func(t *testing.T) {
		state := DefaultState()
		got, eff := Reduce(state, unknownEvent{})
		assert.Equal(t, state, got)
		assert.Nil(t, eff.Scroll)
	})
}

func TestUIState_Normalize(t *testing.T) {
	assert.Equal(t, Hero, UIState{}.Normalize().ActiveSection)
	assert.Equal(t, SectionID("about"), UIState{ActiveSection: "about"}.Normalize().ActiveSection)
}
