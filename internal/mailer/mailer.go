// Package mailer delivers the rendered plan over an authenticated
// SMTP submission session.
package mailer

import (
	"fmt"
	"time"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog/log"

	"eatreal-api/internal/config"
)

const (
	fromName    = "EatReal"
	subject     = "Your Personalized Nutrition Plan"
	sendTimeout = 15 * time.Second
)

// Mailer sends one HTML email to one recipient.
type Mailer interface {
	Send(toEmail, htmlBody string) error
}

// SMTPMailer submits mail through an authenticated STARTTLS session,
// one dial per send.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer builds a mailer from the process configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.EmailUsername,
		password: cfg.EmailPassword,
	}
}

// Send submits the plan email. Every transport, auth or session fault
// comes back as an error value; a hung session is cut off by the send
// timeout.
func (m *SMTPMailer) Send(toEmail, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.username, fromName))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)

	errChan := make(chan error, 1)
	go func() {
		errChan <- d.DialAndSend(msg)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			log.Error().Err(err).Str("recipient", toEmail).Msg("failed to send plan email")
			return err
		}
		log.Info().Str("recipient", toEmail).Msg("plan email sent")
		return nil
	case <-time.After(sendTimeout):
		log.Error().Str("recipient", toEmail).Msg("timeout sending plan email")
		return fmt.Errorf("email sending timeout")
	}
}
