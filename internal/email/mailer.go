// Package email sends transactional mail (password-reset links, payment
// OTPs) over SMTP. The service layer depends on the Mailer interface so
// tests can capture outgoing mail instead of talking to a real server.
package email

import "gopkg.in/gomail.v2"

// Mailer delivers a single HTML message. Failures are returned to the
// caller to propagate; there is no retry here.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through an SMTP server using gomail. The From
// address is the authenticated account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Foodify")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
