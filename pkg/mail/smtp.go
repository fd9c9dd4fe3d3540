package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type SMTPMailer struct {
	client *gomail.Client
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client}, nil
}

func (m *SMTPMailer) Name() string {
	return "SMTP"
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := buildMsg(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMsg(msg Message) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.FromFormat(msg.From.Name, msg.From.Email); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	for _, to := range msg.To {
		if err := out.AddToFormat(to.Name, to.Email); err != nil {
			return nil, fmt.Errorf("smtp to: %w", err)
		}
	}
	if msg.ReplyTo != nil {
		// The reply-to address is built from user input and never validated
		// upstream, so a malformed one is dropped instead of failing the send.
		if err := out.ReplyToFormat(msg.ReplyTo.Name, msg.ReplyTo.Email); err != nil {
			slog.Warn("dropping invalid reply-to address", "reply_to", msg.ReplyTo.Email, "error", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}
	return out, nil
}
