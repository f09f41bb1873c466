// Package mail implements the MailSender domain service over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"prwatch/config"
	"prwatch/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

const activationSubject = "Confirm your property review"

// smtpSender dispatches activation mail through a configured SMTP account.
type smtpSender struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpSender{
		client: client,
		from:   cfg.SMTP.From,
		logger: logger,
	}, nil
}

// SendActivationMail sends the activation message to a single recipient.
func (s *smtpSender) SendActivationMail(ctx context.Context, mail *service.ActivationMail) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(mail.To); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(activationSubject)
	msg.SetBodyString(gomail.TypeTextPlain, activationBody(mail.ActivationLink))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send activation mail")
	}

	s.logger.Info("Activation mail dispatched", slog.String("to", mail.To))

	return nil
}

func activationBody(link string) string {
	return fmt.Sprintf(
		"Thanks for leaving a review.\n\n"+
			"Please confirm your email address to publish it:\n\n%s\n\n"+
			"If you did not submit a review, you can ignore this message.\n", link)
}
