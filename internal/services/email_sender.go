package services

// EmailSender delivers a rendered preview directly to a recipient, bypassing
// the campaign platform. Used for test sends when SMTP is configured.
type EmailSender interface {
	Send(to string, subject string, htmlBody string, textBody string) error
}
