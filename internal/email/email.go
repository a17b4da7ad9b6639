// Package email delivers transactional mail over SMTP. Delivery is
// best-effort: callers log failures and continue, they never roll back the
// state that triggered the mail.
package email

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

//go:generate mockgen -source=email.go -destination=../mocks/email_mocks.go -package=mocks

// InvitationEmail carries everything needed to notify an invitee.
type InvitationEmail struct {
	To               string
	InviterName      string
	OrganizationName string
	InvitationLink   string
	Role             string
}

// Sender is the mail delivery collaborator.
type Sender interface {
	SendInvitationEmail(invite InvitationEmail) error
}

// SMTPSender sends mail through a single SMTP relay.
type SMTPSender struct {
	HostPort string
	TLS      *tls.Config
	User     string
	Password string
	From     string
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(hostPort, user, password, from string, useTLS bool) *SMTPSender {
	s := &SMTPSender{
		HostPort: hostPort,
		User:     user,
		Password: password,
		From:     from,
	}
	if useTLS {
		host := hostPort
		if idx := strings.IndexByte(hostPort, ':'); idx >= 0 {
			host = hostPort[:idx]
		}
		s.TLS = &tls.Config{ServerName: host}
	}
	return s
}

// SendInvitationEmail delivers the invitation notification.
func (s *SMTPSender) SendInvitationEmail(invite InvitationEmail) error {
	subject := fmt.Sprintf("You're invited to join %s", invite.OrganizationName)
	body := fmt.Sprintf(
		"%s has invited you to join %s as a %s.\r\n\r\n"+
			"Accept the invitation:\r\n%s\r\n\r\n"+
			"The link expires; if it stops working, ask for a new invitation.\r\n",
		invite.InviterName, invite.OrganizationName, invite.Role, invite.InvitationLink)

	return s.send(message{
		From:    s.From,
		To:      []string{invite.To},
		Subject: subject,
		Body:    body,
	})
}

type message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

func (m message) write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.From, strings.Join(m.To, ", "), m.Subject, m.Body)
	return err
}

func (s *SMTPSender) dial() (*smtp.Client, error) {
	var client *smtp.Client
	var err error

	if s.TLS != nil {
		client, err = smtp.DialTLS(s.HostPort, s.TLS)
	} else {
		client, err = smtp.Dial(s.HostPort)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to smtp server: %w", err)
	}

	if s.User != "" || s.Password != "" {
		if err := client.Auth(sasl.NewLoginClient(s.User, s.Password)); err != nil {
			client.Close()
			return nil, fmt.Errorf("AUTH failed: %w", err)
		}
	}

	return client, nil
}

func (s *SMTPSender) send(m message) error {
	client, err := s.dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(m.From, nil); err != nil {
		return fmt.Errorf("smtp server rejected mail from '%s': %w", m.From, err)
	}
	for _, address := range m.To {
		if err := client.Rcpt(address, nil); err != nil {
			return fmt.Errorf("smtp server rejected mail to '%s': %w", address, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp server rejected request to send mail data: %w", err)
	}
	if err := m.write(writer); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if err := client.Quit(); err != nil {
		smtpError := &smtp.SMTPError{}
		if errors.As(err, &smtpError) {
			// Some SMTP servers return 250 instead of 221 on QUIT
			if smtpError.Code == 250 {
				return nil
			}
		}
		return err
	}
	return nil
}
