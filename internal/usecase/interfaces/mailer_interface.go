package interfaces

import "context"

// Attachment is a file riding along with an email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a rendered outbound email.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// IMailer abstracts the outbound mail relay (SES).
//
// Lifecycle callers must treat Send failures as non-fatal once the state
// transition has been persisted: the failure is logged, never surfaced as a
// request error.
type IMailer interface {
	Send(ctx context.Context, msg Message) error
}
