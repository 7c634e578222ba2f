package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNavigate_Hit(t *testing.T) {
	for _, open := range []bool{true, false} {
		state := UIState{MenuOpen: open, ActiveSection: "hero"}

		got, cmd, ok := Navigate(state, "projects", pageLayout())

		require.True(t, ok)
		assert.False(t, got.MenuOpen)
		assert.Equal(t, SectionID("hero"), got.ActiveSection, "active section follows the next scroll event")
		assert.Equal(t, ScrollCommand{Top: 2920, Behavior: "smooth"}, cmd)
	}
}

func TestNavigate_HeroGoesAboveTop(t *testing.T) {
	_, cmd, ok := Navigate(DefaultState(), "hero", pageLayout())
	require.True(t, ok)
	assert.Equal(t, float64(-80), cmd.Top)
}

func TestNavigate_MissIsNoOp(t *testing.T) {
	state := UIState{MenuOpen: true, ActiveSection: "about", Scrolled: true}

	got, cmd, ok := Navigate(state, "blog", pageLayout())

	assert.False(t, ok)
	assert.Equal(t, state, got)
	assert.Equal(t, ScrollCommand{}, cmd)
}

func TestNavigate_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		layout := pageLayout()
		state := UIState{
			MenuOpen:      rapid.Bool().Draw(rt, "menu"),
			ActiveSection: SectionID(rapid.SampledFrom([]string{"hero", "about", "contact"}).Draw(rt, "active")),
			Scrolled:      rapid.Bool().Draw(rt, "scrolled"),
		}
		target := SectionID(rapid.SampledFrom([]string{"hero", "skills", "contact", "missing", ""}).Draw(rt, "target"))

		got, _, ok := Navigate(state, target, layout)
		_, exists := Find(target, layout)

		if ok != exists {
			rt.Fatalf("ok = %v for target %q", ok, target)
		}
		if ok && got.MenuOpen {
			rt.Fatalf("menu left open after navigating")
		}
		if !ok && got != state {
			rt.Fatalf("state changed on miss: %+v -> %+v", state, got)
		}
	})
}

func TestToggleMenu(t *testing.T) {
	s := DefaultState()
	s = ToggleMenu(s)
	assert.True(t, s.MenuOpen)
	s = ToggleMenu(s)
	assert.False(t, s.MenuOpen)
}
