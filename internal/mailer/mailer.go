package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Config carries the SMTP account used for organizer notices.
type Config struct {
	Host     string
	Port     string
	From     string
	Password string
}

type Mailer struct {
	cfg Config
	log *zerolog.Logger
}

func New(cfg Config, log *zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// SendOrganizerStatusEmail notifies an organizer that their account was
// suspended or reactivated.
func (m *Mailer) SendOrganizerStatusEmail(firstName, status, recipientEmail string) error {
	var subject, body string
	switch status {
	case "suspended":
		subject = "Votre compte organisateur a été suspendu"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre compte organisateur a été suspendu par un administrateur.\nVous ne pouvez plus gérer d'événements jusqu'à sa réactivation.", firstName)
	case "active":
		subject = "Votre compte organisateur a été réactivé"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre compte organisateur a été réactivé.\nVous pouvez de nouveau gérer vos événements.", firstName)
	default:
		return fmt.Errorf("unknown organizer status %q", status)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.From, recipientEmail, subject, body,
	)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{recipientEmail}, []byte(msg)); err != nil {
		m.log.Warn().Msgf("failed to send email to %s: %v", recipientEmail, err)
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Info().Msgf("email sent to %s (status: %s)", recipientEmail, status)
	return nil
}
