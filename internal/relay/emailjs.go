package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailJSConfig struct {
	Endpoint    string
	ServiceID   string
	UserID      string // public key
	AccessToken string // private key, optional
}

// EmailJSSender sends through the EmailJS REST API.
type EmailJSSender struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJSSender(cfg EmailJSConfig, client *http.Client) *EmailJSSender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJSSender{cfg: cfg, client: client}
}

type emailJSRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams Params `json:"template_params"`
}

func (s *EmailJSSender) Send(ctx context.Context, templateID string, params Params) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         s.cfg.UserID,
		AccessToken:    s.cfg.AccessToken,
		TemplateParams: params,
	})
	if err != nil {
		return errors.Wrap(err, "encoding emailjs request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building emailjs request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling emailjs")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("emailjs: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	return nil
}
