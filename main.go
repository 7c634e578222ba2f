package main

import (
	"bufio"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anupks5942/portfolio/internal/config"
	"github.com/anupks5942/portfolio/internal/content"
	"github.com/anupks5942/portfolio/internal/logger"
	"github.com/anupks5942/portfolio/internal/nav"
	"github.com/anupks5942/portfolio/internal/page"
	"github.com/anupks5942/portfolio/internal/relay"
	"github.com/anupks5942/portfolio/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Single-page portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	var out string
	render := &cobra.Command{
		Use:   "render",
		Short: "Write the full page markup to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderPage(out)
		},
	}
	render.Flags().StringVarP(&out, "out", "o", "index.html", "output file, - for stdout")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}, render)
	return root
}

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	page   *page.Page
}

func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, zap.String("service", "portfolio"))
	if err != nil {
		return nil, err
	}

	portfolio, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	for _, issue := range portfolio.CheckNavigation() {
		log.Warn("Navigation link will not scroll", zap.String("issue", issue.String()))
	}

	pg, err := page.New(portfolio, page.Options{ContactForm: cfg.Contact.Enabled})
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: log, page: pg}, nil
}

func serve() error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	gin.SetMode(a.cfg.GinMode)
	metrics := server.NewMetrics()

	var rl *relay.Relay
	if a.cfg.Contact.Enabled {
		rl, err = newRelay(a.cfg.Contact, a.logger, metrics)
		if err != nil {
			return err
		}
		a.logger.Info("Contact form enabled", zap.String("provider", a.cfg.Contact.Provider))
	}

	srv, err := server.New(a.cfg, a.logger, a.page, rl, metrics)
	if err != nil {
		return err
	}
	router, err := srv.Router()
	if err != nil {
		return err
	}
	return server.Serve(srv.HTTPServer(router), a.logger)
}

func newRelay(cfg config.ContactConfig, log *zap.Logger, rec relay.Recorder) (*relay.Relay, error) {
	owner, confirm := cfg.EmailJS.OwnerTemplateID, cfg.EmailJS.SenderTemplate

	var sender relay.Sender
	switch cfg.Provider {
	case config.MailProviderSMTP:
		if owner == "" {
			owner = "owner"
		}
		if confirm == "" {
			confirm = "sender"
		}
		s, err := relay.NewSMTPSender(relay.SMTPConfig{
			Host:    cfg.SMTP.Host,
			Port:    cfg.SMTP.Port,
			User:    cfg.SMTP.User,
			Pass:    cfg.SMTP.Pass,
			ToEmail: cfg.SMTP.ToEmail,
		}, owner, confirm)
		if err != nil {
			return nil, err
		}
		sender = s
	default:
		sender = relay.NewEmailJSSender(relay.EmailJSConfig{
			Endpoint:    cfg.EmailJS.Endpoint,
			ServiceID:   cfg.EmailJS.ServiceID,
			UserID:      cfg.EmailJS.UserID,
			AccessToken: cfg.EmailJS.AccessToken,
		}, &http.Client{Timeout: cfg.Timeout + 5*time.Second})
	}

	return relay.New(sender, owner, confirm, log,
		relay.WithTimeout(cfg.Timeout),
		relay.WithRecorder(rec),
	), nil
}

func renderPage(out string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	w := os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "creating %s", out)
		}
		defer f.Close()
		w = f
	}

	buf := bufio.NewWriter(w)
	if err := page.Render(buf, a.page.Document(nav.DefaultState())); err != nil {
		return errors.Wrap(err, "rendering page")
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if out != "-" {
		a.logger.Info("Page rendered", zap.String("out", out))
	}
	return nil
}
