// Package email sends platform notifications over SMTP.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Message is one outgoing HTML email.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// UseTLS dials with implicit TLS. Otherwise STARTTLS is used when offered.
	UseTLS bool
}

// SMTPSender implements Sender
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
	dialer net.Dialer
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		logger: logger.With().Str("component", "email").Logger(),
		dialer: net.Dialer{Timeout: 10 * time.Second},
	}
}

func (s *SMTPSender) configured() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

// Send delivers msg. Without SMTP credentials the message is only logged.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.configured() {
		s.logger.Warn().
			Str("toEmail", msg.To).
			Str("subject", msg.Subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	conn, err := s.dial(ctx, addr)
	if err != nil {
		s.logger.Error().Err(err).Str("server", addr).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if !s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
				return fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	if err := client.Auth(smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(compose(s.config, msg)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	s.logger.Debug().Str("toEmail", msg.To).Str("subject", msg.Subject).Msg("Email sent")
	return client.Quit()
}

func (s *SMTPSender) dial(ctx context.Context, addr string) (net.Conn, error) {
	if s.config.UseTLS {
		d := &tls.Dialer{NetDialer: &s.dialer, Config: &tls.Config{ServerName: s.config.Host}}
		return d.DialContext(ctx, "tcp", addr)
	}
	return s.dialer.DialContext(ctx, "tcp", addr)
}

// compose renders the headers and body of msg.
func compose(cfg SMTPConfig, msg Message) []byte {
	to := msg.To
	if msg.ToName != "" {
		to = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", msg.ToName), msg.To)
	}

	var b strings.Builder
	headers := [][2]string{
		{"From", fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", cfg.FromName), cfg.FromEmail)},
		{"To", to},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
