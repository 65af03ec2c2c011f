// Package mail dispatches transactional email over SMTP with bounded retry.
// Dispatch blocks the request that triggered it; there is no outbound queue.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/pixelgrove/studio/pkg/slogx"
)

// DefaultMaxAttempts bounds how many times a message is retried before the
// failure surfaces to the caller.
const DefaultMaxAttempts = 3

// Sender is what the HTTP layer depends on, so handler tests can stub
// delivery without an SMTP server.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// FrontendURL is the base for links embedded in emails, e.g. the reset
	// link <FrontendURL>/reset-password/<token>.
	FrontendURL string

	// MaxAttempts defaults to DefaultMaxAttempts when zero.
	MaxAttempts int
}

// Dispatcher sends mail through a single SMTP client. Safe for concurrent
// use; the underlying client serializes dials.
type Dispatcher struct {
	cfg    Config
	client *gomail.Client

	// transport is swapped out in tests.
	transport func(ctx context.Context, msg *gomail.Msg) error

	// backoffBase scales the exponential delay between attempts; production
	// keeps the default of one second so attempt n waits 2^n seconds.
	backoffBase time.Duration
}

// NewDispatcher builds a Dispatcher from SMTP settings.
func NewDispatcher(cfg Config) (*Dispatcher, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("mail: host and from address are required")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: failed to create smtp client: %w", err)
	}

	d := &Dispatcher{
		cfg:         cfg,
		client:      client,
		backoffBase: time.Second,
	}
	d.transport = func(ctx context.Context, msg *gomail.Msg) error {
		return d.client.DialAndSendWithContext(ctx, msg)
	}
	return d, nil
}

// SendPasswordReset emails the one-time reset link. The plaintext token only
// ever exists here and in the recipient's inbox.
func (d *Dispatcher) SendPasswordReset(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(d.cfg.FrontendURL, "/"), token)

	greeting := name
	if greeting == "" {
		greeting = "there"
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received a request to reset the password for your account.\n"+
			"Follow the link below within 10 minutes to choose a new password:\n\n"+
			"%s\n\n"+
			"If you did not request this, you can safely ignore this email.\n",
		greeting, link,
	)

	return d.send(ctx, to, "Reset your password", body)
}

// send delivers a message, retrying with exponential backoff on failure.
// The loop blocks the calling request; this service has no background mail
// queue and surfaces the final failure to the caller.
func (d *Dispatcher) send(ctx context.Context, to, subject, body string) error {
	log := slogx.FromContext(ctx)

	msg := gomail.NewMsg()
	if err := msg.From(d.cfg.From); err != nil {
		return fmt.Errorf("mail: invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	var lastErr error
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		lastErr = d.transport(ctx, msg)
		if lastErr == nil {
			if attempt > 1 {
				log.Info("email sent after retry", "to", to, "attempt", attempt)
			}
			return nil
		}

		log.Warn("email dispatch failed",
			"to", to,
			"attempt", attempt,
			"max_attempts", d.cfg.MaxAttempts,
			"error", lastErr,
		)

		if attempt == d.cfg.MaxAttempts {
			break
		}

		select {
		case <-time.After(d.backoffBase * (1 << attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("mail: giving up after %d attempts: %w", d.cfg.MaxAttempts, lastErr)
}
