package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anupks5942/portfolio/internal/nav"
	"github.com/anupks5942/portfolio/internal/relay"
)

// scrollEventName is the HX-Trigger event portfolio.js turns into
// window.scrollTo.
const scrollEventName = "portfolio:scroll"

type scrollRequest struct {
	Offset   float64      `json:"offset"`
	Sections []nav.Layout `json:"sections"`
	State    nav.UIState  `json:"state"`
}

type navigateRequest struct {
	Target   nav.SectionID `json:"target"`
	Sections []nav.Layout  `json:"sections"`
	State    nav.UIState   `json:"state"`
}

type menuRequest struct {
	State nav.UIState `json:"state"`
}

// Home page route
func (s *Server) handleIndex(c *gin.Context) {
	html, err := s.IndexHTML()
	if err != nil {
		s.logger.Error("Error rendering page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) bindUI(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		s.logger.Debug("Bad UI event", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.Status(http.StatusBadRequest)
		return false
	}
	return true
}

// reduce runs event against prev and answers with the new navbar, or 204
// when nothing visible changed and no scroll is needed.
func (s *Server) reduce(c *gin.Context, prev nav.UIState, event nav.Event) {
	prev = prev.Normalize()
	next, effect := nav.Reduce(prev, event)

	if effect.Scroll != nil {
		trigger, err := json.Marshal(map[string]nav.ScrollCommand{scrollEventName: *effect.Scroll})
		if err != nil {
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Header("HX-Trigger", string(trigger))
	} else if next == prev {
		s.metrics.observeUIEvent(event.Name(), "unchanged")
		c.Status(http.StatusNoContent)
		return
	}

	s.metrics.observeUIEvent(event.Name(), "changed")
	s.html(c, http.StatusOK, s.page.Navbar(next, false))
}

func (s *Server) handleScroll(c *gin.Context) {
	var req scrollRequest
	if !s.bindUI(c, &req) {
		return
	}
	s.reduce(c, req.State, nav.ScrollEvent{Offset: req.Offset, Sections: req.Sections})
}

// Unknown targets answer 204: the click is ignored.
func (s *Server) handleNavigate(c *gin.Context) {
	var req navigateRequest
	if !s.bindUI(c, &req) {
		return
	}
	s.reduce(c, req.State, nav.NavigateEvent{Target: req.Target, Sections: req.Sections})
}

func (s *Server) handleMenu(c *gin.Context) {
	var req menuRequest
	if !s.bindUI(c, &req) {
		return
	}
	s.reduce(c, req.State, nav.ToggleMenuEvent{})
}

func (s *Server) requireContactForm(c *gin.Context) {
	if !s.page.ContactFormEnabled() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Next()
}

func (s *Server) handleContactForm(c *gin.Context) {
	s.html(c, http.StatusOK, s.page.ContactForm(relay.Submission{}, relay.Status{}))
}

// Handle contact form submission with HTMX. Failures still answer 200 so
// HTMX swaps the form with its status message.
func (s *Server) handleContact(c *gin.Context) {
	var sub relay.Submission
	if err := c.ShouldBind(&sub); err != nil {
		s.logger.Debug("Bad contact form", zap.Error(err))
	}

	res := s.relay.Submit(c.Request.Context(), sub)
	s.html(c, http.StatusOK, s.page.ContactForm(res.Form, res.Status))
}
