package notifications

import (
	"fmt"
	"strings"

	"portfolio-backend/src/config"

	gomail "gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, html, replyTo string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewSMTPSender error ถ้าตั้งค่า SMTP ไม่ครบ
func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	missing := []string{}
	if cfg.SMTPHost == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.SMTPPort == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.SMTPFrom == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %v", strings.Join(missing, ", "))
	}
	return &SMTPSender{Host: cfg.SMTPHost, Port: cfg.SMTPPort, User: cfg.SMTPUser, Pass: cfg.SMTPPass, From: cfg.SMTPFrom}, nil
}

func (s *SMTPSender) Send(to, subject, html, replyTo string) error {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(s.message(to, subject, html, replyTo))
}

func (s *SMTPSender) message(to, subject, html, replyTo string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetAddressHeader("To", to, "")
	if replyTo != "" {
		m.SetAddressHeader("Reply-To", replyTo, "")
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	return m
}
