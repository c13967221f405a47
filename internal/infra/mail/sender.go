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
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendBookingAlert avisa o dono da agenda que um lead acabou de marcar
// reunião. Best-effort: quem chama decide se loga e segue.
func (s *EmailSender) SendBookingAlert(to, leadName, businessName, meetingAt, meetLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Nova reunião agendada: %s | %s", businessName, leadName))

	body := fmt.Sprintf(
		"<p>O lead <b>%s</b> (%s) agendou uma reunião.</p>"+
			"<p>Quando: <b>%s</b></p>"+
			"<p>Link da call: <a href=%q>%s</a></p>",
		leadName, businessName, meetingAt, meetLink, meetLink,
	)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	return d.DialAndSend(m)
}
