package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SmtpMailer submits one message per call over plain SMTP. No queue, no
// retry; a failure surfaces to the caller.
type SmtpMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSmtpMailer(host, port, username, password, from string) *SmtpMailer {
	return &SmtpMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
	}
}

func (m *SmtpMailer) Send(to, subject, body string, html bool) error {
	if m.Host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	contentType := "text/plain; charset=\"UTF-8\""
	if html {
		contentType = "text/html; charset=\"UTF-8\""
	}

	var message strings.Builder
	message.WriteString("From: " + m.From + "\r\n")
	message.WriteString("To: " + to + "\r\n")
	message.WriteString("Subject: " + subject + "\r\n")
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: " + contentType + "\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(message.String())); err != nil {
		return fmt.Errorf("error sending email to %s: %w", to, err)
	}

	return nil
}
