package mailer

import (
	"crypto/tls"
	"log"

	mail "github.com/go-mail/mail/v2"

	"github.com/gimnasioapp/gym-api/internal/config"
)

// Mailer sends transactional mail over SMTP. Without SMTP configuration it
// degrades to a console backend that logs instead of delivering, which is
// the expected mode outside production.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) configured() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.configured() {
		log.Printf("mail (console backend) to=%s subject=%q", to, subject)
		return nil
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: m.host}

	return d.DialAndSend(msg)
}
