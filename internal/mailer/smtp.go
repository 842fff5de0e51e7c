// Package mailer performs single SMTP delivery attempts. Retry policy
// lives one level up in the engine; each call here opens its own
// connection, sends one message, and closes.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"golang.org/x/time/rate"

	"github.com/noshahi-devs/notification-service/internal/config"
	"github.com/noshahi-devs/notification-service/internal/models"
)

// Mailer sends email over SMTP using the configured transport settings.
type Mailer struct {
	cfg     config.EmailConfig
	limiter *rate.Limiter
	timeout time.Duration
}

// New constructs a Mailer. ratePerSecond bounds outbound message rate
// so bulk fan-out cannot flood the relay; zero disables the limit.
func New(cfg config.EmailConfig, ratePerSecond int) *Mailer {
	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(float64(ratePerSecond))
		burst = ratePerSecond
	}
	return &Mailer{
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		timeout: cfg.AttemptTimeout,
	}
}

// Send performs exactly one delivery attempt and returns the generated
// Message-ID on success. Failures are reported as *SendError so the
// caller can distinguish transient from fatal.
func (m *Mailer) Send(ctx context.Context, req models.SendRequest) (string, error) {
	msg, messageID, err := buildMessage(req, m.cfg.SenderEmail, m.cfg.SenderName, m.cfg.DefaultReplyTo)
	if err != nil {
		return "", fatal(err)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fatal(fmt.Errorf("send aborted: %w", err))
	}

	recipients := append([]string{req.To}, req.Cc...)
	recipients = append(recipients, req.Bcc...)

	if err := m.deliver(recipients, msg); err != nil {
		return "", err
	}
	return messageID, nil
}

// deliver runs the SMTP session for one message. The per-attempt
// timeout bounds the whole session via a connection deadline.
func (m *Mailer) deliver(recipients []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	conn, err := net.DialTimeout("tcp", addr, m.timeout)
	if err != nil {
		return transient(fmt.Errorf("failed to connect to %s: %w", addr, err))
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(m.timeout))

	// Port 465 expects an implicit TLS session from the first byte.
	if m.cfg.EnableSSL && m.cfg.SMTPPort == 465 {
		conn = tls.Client(conn, &tls.Config{ServerName: m.cfg.SMTPHost})
	}

	client, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		return transient(fmt.Errorf("smtp handshake with %s failed: %w", addr, err))
	}
	defer client.Close()

	if m.cfg.EnableSSL && m.cfg.SMTPPort != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.SMTPHost}); err != nil {
				return transient(fmt.Errorf("starttls failed: %w", err))
			}
		}
	}

	if m.cfg.SenderPassword != "" {
		auth := smtp.PlainAuth("", m.cfg.SenderEmail, m.cfg.SenderPassword, m.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return transient(fmt.Errorf("smtp auth rejected: %w", err))
		}
	}

	if err := client.Mail(m.cfg.SenderEmail); err != nil {
		return transient(fmt.Errorf("MAIL FROM rejected: %w", err))
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return transient(fmt.Errorf("RCPT TO %s rejected: %w", rcpt, err))
		}
	}

	w, err := client.Data()
	if err != nil {
		return transient(fmt.Errorf("DATA rejected: %w", err))
	}
	if _, err := w.Write(msg); err != nil {
		return transient(fmt.Errorf("failed to write message body: %w", err))
	}
	if err := w.Close(); err != nil {
		return transient(fmt.Errorf("message not accepted: %w", err))
	}

	// Message was accepted; a failed QUIT does not unsend it.
	_ = client.Quit()
	return nil
}
