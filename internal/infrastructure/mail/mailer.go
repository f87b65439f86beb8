// Package mail sends lead alerts to the operations inbox over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/promontazh/landing-api/internal/core/domain"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

func NewMailer(host string, port int, user, pass, from, to string) *Mailer {
	return &Mailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
		to:   to,
	}
}

// SendLeadAlert notifies the team about a new installation request.
func (m *Mailer) SendLeadAlert(c domain.Client) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New installation request from %s", c.Name))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nDate: %s\n",
		c.Name, c.Email, c.Phone, c.Date,
	))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send lead alert: %w", err)
	}
	return nil
}
