package mail

import (
	"bytes"
	"strings"
	"testing"

	"homefix_api/internal/usecase/interfaces"
)

func TestBuildRawMessage(t *testing.T) {
	msg := interfaces.Message{
		To:       "ana@example.com",
		Subject:  "Your quotation is ready",
		HTMLBody: "<p>Hi Ana,</p>",
		Attachments: []interfaces.Attachment{
			{Filename: "quotation-P0000001.pdf", ContentType: "application/pdf", Content: bytes.Repeat([]byte("x"), 200)},
		},
	}

	raw, err := buildRawMessage("noreply@example.com", msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := string(raw)
	for _, want := range []string{
		"From: noreply@example.com",
		"To: ana@example.com",
		"Subject: Your quotation is ready",
		"multipart/mixed",
		"text/html; charset=UTF-8",
		"<p>Hi Ana,</p>",
		"application/pdf",
		`attachment; filename="quotation-P0000001.pdf"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("raw message missing %q:\n%s", want, s)
		}
	}

	// Encoded attachment lines must stay within the RFC 2045 limit.
	inBody := false
	for _, line := range strings.Split(s, "\r\n") {
		if strings.HasPrefix(line, "eHh4") {
			inBody = true
		}
		if inBody && len(line) > 78 {
			t.Fatalf("encoded line too long (%d): %q", len(line), line)
		}
	}
}

func TestBuildRawMessageNoAttachments(t *testing.T) {
	raw, err := buildRawMessage("noreply@example.com", interfaces.Message{
		To:       "ana@example.com",
		Subject:  "Hello",
		HTMLBody: "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), "<p>hi</p>") {
		t.Fatalf("body missing from raw message")
	}
}
