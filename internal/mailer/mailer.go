package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/NiraJ01010101/chaiBackend/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SMTPMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		send:     smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := BuildMessage(m.from, to, subject, body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := m.send(m.host+":"+m.port, auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}
	logrus.WithField("to", to).Info("mail sent")
	return nil
}

func BuildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		from, to, subject, body))
}

func ResetPasswordBody(link string) string {
	return fmt.Sprintf("Hello,\n\nUse the link below to reset your password:\n%s\n\nIf you did not ask for this, ignore this email.\n", link)
}
