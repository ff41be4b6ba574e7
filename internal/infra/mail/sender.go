package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendConversionAlert avisa o time de vendas que um lead converteu.
func (s *EmailSender) SendConversionAlert(to, leadID, leadEmail, campaignID, status string) error {
	body := fmt.Sprintf(`
		<h2>Lead convertido 🎉</h2>
		<p>O lead <strong>%s</strong> mudou para o status <strong>%s</strong>.</p>
		<ul>
			<li>Lead ID: %s</li>
			<li>Campanha: %s</li>
		</ul>`,
		leadEmail, status, leadID, campaignID,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead convertido: %s (%s)", leadEmail, status))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
