package notify

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"review-scheduler/internal/models"
)

var (
	ErrNoRecipient      = errors.New("recipient has no email address")
	ErrInvalidRecipient = errors.New("recipient email address contains a line break")
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends plain-text mail through an unauthenticated relay.
type SMTPSender struct {
	addr     string
	from     string
	sendMail sendMailFunc
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@review-scheduler.local"
	}

	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%s", host, port),
		from:     from,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, n *models.NotificationLog) error {
	to := strings.TrimSpace(n.RecipientEmail)
	if to == "" {
		return ErrNoRecipient
	}
	if strings.ContainsAny(to, "\r\n") {
		return ErrInvalidRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.from, to, n.Subject, n.Content)
	return s.sendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

// buildMessage renders an RFC 5322 message. Header values are folded onto
// one line and the subject is RFC 2047 encoded when it is not plain ASCII.
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		SingleLine(from),
		SingleLine(to),
		mime.QEncoding.Encode("utf-8", SingleLine(subject)),
		body,
	)
}
