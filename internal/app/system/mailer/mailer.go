// internal/app/system/mailer/mailer.go

// Package mailer sends notification email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is a single outbound message with both plain-text and HTML
// bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email. The contact handler depends on this rather
// than the SMTP mailer so tests can swap in a recording fake.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Mailer sends mail through a single SMTP server.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

// New creates a Mailer. It does not dial; connections are made per
// send.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger}
}

const crlf = "\r\n"

// Send delivers the email, honoring context cancellation between the
// build and the dial. smtp.SendMail itself does not take a context;
// delivery that has already started runs to completion.
func (m *Mailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := m.buildMessage(email)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email.To, err)
	}

	m.log.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))
	return nil
}

// buildMessage assembles a multipart/alternative MIME message with
// text and HTML parts.
func (m *Mailer) buildMessage(email Email) []byte {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	const boundary = "mime-boundary-promyk"
	var b strings.Builder
	b.WriteString("From: " + from + crlf)
	b.WriteString("To: " + email.To + crlf)
	b.WriteString("Subject: " + email.Subject + crlf)
	b.WriteString("MIME-Version: 1.0" + crlf)
	b.WriteString(`Content-Type: multipart/alternative; boundary="` + boundary + `"` + crlf)
	b.WriteString(crlf)

	b.WriteString("--" + boundary + crlf)
	b.WriteString("Content-Type: text/plain; charset=UTF-8" + crlf)
	b.WriteString(crlf)
	b.WriteString(email.TextBody + crlf)

	b.WriteString("--" + boundary + crlf)
	b.WriteString("Content-Type: text/html; charset=UTF-8" + crlf)
	b.WriteString(crlf)
	b.WriteString(email.HTMLBody + crlf)

	b.WriteString("--" + boundary + "--" + crlf)
	return []byte(b.String())
}
