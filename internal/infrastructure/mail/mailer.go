package mail

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/mail.v2"

	"github.com/photosbyzee/studio-portal/internal/infrastructure/config"
)

// ContactMessage is a submitted contact-form entry.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer delivers contact-form notifications to the studio inbox over SMTP.
// When no SMTP host is configured the message is logged instead, so the
// contact endpoint keeps working in development.
type Mailer struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

func NewMailer(cfg config.SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// SendContact forwards a contact-form submission.
func (m *Mailer) SendContact(msg ContactMessage) error {
	if m.cfg.Host == "" {
		m.log.Info().
			Str("name", msg.Name).
			Str("email", msg.Email).
			Msg("SMTP not configured, contact message logged only")
		return nil
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Message)

	em := mail.NewMessage()
	em.SetHeader("From", m.cfg.From)
	em.SetHeader("To", m.cfg.To)
	em.SetHeader("Reply-To", msg.Email)
	em.SetHeader("Subject", fmt.Sprintf("New contact message from %s", msg.Name))
	em.SetBody("text/plain", body)

	d := mail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(em); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
