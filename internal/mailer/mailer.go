package mailer

import (
	"fmt"
	"net/smtp"

	"quizhub/internal/config"
)

// SMTPMailer sends plain-text mail through a configured relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	message := fmt.Appendf(nil, "To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", to, subject, body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, message); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
