package mail

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"homefix_api/internal/usecase/interfaces"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMissingMailFrom = errors.New("missing MAIL_FROM")

// SESMailer delivers lifecycle notification emails through Amazon SES.
// Plain HTML mail goes out as simple content; mail with a quotation
// attachment is assembled into a raw MIME message first.
type SESMailer struct {
	client   *sesv2.Client
	from     string
	mockMode bool
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(cfg awssdk.Config) (*SESMailer, error) {
	if isMailMockEnabled() {
		log.Printf("[mail][mailer] mock mode enabled")
		return &SESMailer{mockMode: true}, nil
	}

	from := strings.TrimSpace(os.Getenv("MAIL_FROM"))
	if from == "" {
		log.Printf("[mail][mailer] missing MAIL_FROM")
		return nil, ErrMissingMailFrom
	}
	log.Printf("[mail][mailer] SES client initialized from=%s", from)

	return &SESMailer{client: sesv2.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg interfaces.Message) error {
	if m != nil && m.mockMode {
		log.Printf("[mail][mailer] mock send to=%s subject=%q attachments=%d", msg.To, msg.Subject, len(msg.Attachments))
		return nil
	}

	var content *types.EmailContent
	if len(msg.Attachments) > 0 {
		raw, err := buildRawMessage(m.from, msg)
		if err != nil {
			log.Printf("[mail][mailer] raw message build failed to=%s err=%v", msg.To, err)
			return err
		}
		content = &types.EmailContent{Raw: &types.RawMessage{Data: raw}}
	} else {
		content = &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: awssdk.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: awssdk.String(msg.HTMLBody)},
				},
			},
		}
	}

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: awssdk.String(m.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content:          content,
	})
	if err != nil {
		log.Printf("[mail][mailer] send failed to=%s subject=%q err=%v", msg.To, msg.Subject, err)
		return err
	}
	log.Printf("[mail][mailer] send success to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

func isMailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
