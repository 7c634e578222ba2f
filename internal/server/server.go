package server

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/anupks5942/portfolio/internal/config"
	"github.com/anupks5942/portfolio/internal/nav"
	"github.com/anupks5942/portfolio/internal/page"
	"github.com/anupks5942/portfolio/internal/relay"
)

//go:embed static/*
var assets embed.FS

const indexCacheKey = "index"

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	page    *page.Page
	relay   *relay.Relay
	metrics *Metrics
	cache   *cache.Cache
	hasher  *ipHasher
}

// New wires a server. rl may be nil when the contact form is disabled.
func New(cfg *config.Config, logger *zap.Logger, pg *page.Page, rl *relay.Relay, m *Metrics) (*Server, error) {
	hasher, err := newIPHasher()
	if err != nil {
		return nil, err
	}
	if pg.ContactFormEnabled() && rl == nil {
		return nil, errors.New("contact form enabled without a relay")
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		page:    pg,
		relay:   rl,
		metrics: m,
		cache:   cache.New(cfg.PageCacheTTL, 2*cfg.PageCacheTTL),
		hasher:  hasher,
	}, nil
}

// Router builds the gin engine with every route.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(s.logger, s.hasher, s.metrics))

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, errors.Wrap(err, "loading static assets")
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	ui := r.Group("/ui")
	ui.POST("/scroll", s.handleScroll)
	ui.POST("/navigate", s.handleNavigate)
	ui.POST("/menu", s.handleMenu)

	// Contact form endpoints - return just the form HTML
	r.GET("/contact-form", s.requireContactForm, s.handleContactForm)
	r.POST("/contact", s.requireContactForm, s.handleContact)

	return r, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.Contact.Timeout + 15*time.Second,
	}
}

// IndexHTML renders the full page at its default state, from cache when
// possible.
func (s *Server) IndexHTML() ([]byte, error) {
	if cached, ok := s.cache.Get(indexCacheKey); ok {
		return cached.([]byte), nil
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, s.page.Document(nav.DefaultState())); err != nil {
		return nil, errors.Wrap(err, "rendering page")
	}
	html := buf.Bytes()
	s.cache.SetDefault(indexCacheKey, html)
	return html, nil
}

func (s *Server) html(c *gin.Context, status int, node g.Node) {
	var buf bytes.Buffer
	if err := page.Render(&buf, node); err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
