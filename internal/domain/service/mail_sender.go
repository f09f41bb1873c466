package service

import "context"

// ActivationMail is the message sent to a review submitter so they can
// confirm their review and account.
type ActivationMail struct {
	To             string // Recipient email address.
	ActivationLink string // Absolute URL embedding user id, review id and token.
}

// MailSender defines the interface for dispatching activation mail.
// Dispatch failure is reported to the caller but never rolls back the
// pending review/user records.
type MailSender interface {
	// SendActivationMail sends the activation message to a single recipient.
	SendActivationMail(ctx context.Context, mail *ActivationMail) error
}
