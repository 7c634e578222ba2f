package relay

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
)

type SMTPConfig struct {
	Host    string // e.g. smtp.gmail.com
	Port    string // e.g. 587
	User    string
	Pass    string
	ToEmail string // owner inbox
}

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends over plain SMTP. The owner template becomes a
// notification to ToEmail with Reply-To set to the visitor; the sender
// template becomes a confirmation to the visitor.
type SMTPSender struct {
	cfg            SMTPConfig
	ownerTemplate  string
	senderTemplate string
	sendMail       sendMailFunc
}

func NewSMTPSender(cfg SMTPConfig, ownerTemplate, senderTemplate string) (*SMTPSender, error) {
	if cfg.User == "" || cfg.Pass == "" {
		return nil, errors.New("SMTP credentials not configured")
	}
	if ownerTemplate == senderTemplate {
		return nil, errors.Errorf("SMTP owner and sender templates must differ, both are %q", ownerTemplate)
	}
	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.User
	}
	return &SMTPSender{
		cfg:            cfg,
		ownerTemplate:  ownerTemplate,
		senderTemplate: senderTemplate,
		sendMail:       sendMailContext,
	}, nil
}

// Send returns as soon as ctx is done, even if the SMTP exchange is still
// in progress.
func (s *SMTPSender) Send(ctx context.Context, templateID string, params Params) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var to string
	var msg []byte
	switch templateID {
	case s.ownerTemplate:
		to, msg = s.cfg.ToEmail, s.ownerNotice(params)
	case s.senderTemplate:
		to, msg = params.Email, s.senderConfirmation(params)
	default:
		return fmt.Errorf("smtp: unknown template %q", templateID)
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(ctx, s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrapf(err, "smtp send to %s", to)
		}
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "smtp send to %s", to)
	}
}

// sendMailContext is smtp.SendMail with the connection bound to ctx: the
// dial honours cancellation and the deadline applies to every command.
func sendMailContext(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (s *SMTPSender) ownerNotice(p Params) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", p.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, p.Name, p.Email, p.Message)

	return compose(s.cfg.ToEmail, s.cfg.User, p.Email, subject, body)
}

func (s *SMTPSender) senderConfirmation(p Params) []byte {
	subject := "Thanks for getting in touch"
	body := fmt.Sprintf(`
Hi %s,

Thanks for your message. I'll get back to you soon.

Your message:
%s
`, p.Name, p.Message)

	return compose(p.Email, s.cfg.User, s.cfg.ToEmail, subject, body)
}

var headerSafe = strings.NewReplacer("\r", "", "\n", " ")

func compose(to, from, replyTo, subject, body string) []byte {
	return []byte("To: " + headerSafe.Replace(to) + "\r\n" +
		"Subject: " + headerSafe.Replace(subject) + "\r\n" +
		"From: " + headerSafe.Replace(from) + "\r\n" +
		"Reply-To: " + headerSafe.Replace(replyTo) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
