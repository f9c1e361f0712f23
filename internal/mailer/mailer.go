// Package mailer sends one-off notification mail. The core never inspects
// delivery success; callers log failures and move on.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/yunqiuxu/unswtalk/internal/config"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTP(cfg *config.Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: cfg.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// LogMailer stands in when no SMTP relay is configured; messages go to the
// log instead of the wire. Confirmation codes stay out of the log line.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	slog.Info("mail suppressed, no SMTP relay configured", "to", to, "subject", subject)
	return nil
}

// FromConfig picks the SMTP mailer when a relay host is configured, the
// log mailer otherwise.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return NewSMTP(cfg)
}
