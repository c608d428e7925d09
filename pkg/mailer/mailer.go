// Package mailer delivers the transactional emails for account verification,
// password reset and account deletion notices.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"account-service/pkg/utils"
)

// Mailer is the outbound notification contract used by the services.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer connects to the configured SMTP server over SSL
// (the default port 465 matches Gmail's SSL endpoint).
func NewSMTPMailer(config utils.EmailConfig) Mailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.User, config.Password)
	dialer.SSL = config.Port == 465

	from := config.From
	if from == "" {
		from = config.User
	}

	return &smtpMailer{
		dialer: dialer,
		from:   from,
	}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
