package notify

import (
	"strings"
	"testing"

	"homefix_api/internal/domain/lifecycle"
)

func TestRenderKnownEvents(t *testing.T) {
	d := Data{
		ClientName:         "Ana Cruz",
		ProjectID:          "P0000001",
		JobType:            "Repairs",
		InspectionDate:     "2026-09-01",
		StartDate:          "2026-09-05",
		EndDate:            "2026-09-12",
		CancellationReason: "client unavailable",
		FeedbackURL:        "https://example.com/feedback?ref=P0000001",
	}

	cases := []struct {
		ev       lifecycle.Event
		contains []string
	}{
		{lifecycle.EventInquiryReceived, []string{"Ana Cruz", "P0000001", "Repairs"}},
		{lifecycle.EventInspectionScheduled, []string{"2026-09-01", "P0000001"}},
		{lifecycle.EventQuotationReady, []string{"2026-09-05", "2026-09-12", "attached"}},
		{lifecycle.EventProjectCompleted, []string{"https://example.com/feedback?ref=P0000001"}},
		{lifecycle.EventProjectCancelled, []string{"client unavailable"}},
	}

	for _, tc := range cases {
		subject, html, err := Render(tc.ev, d)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", tc.ev, err)
		}
		if subject == "" {
			t.Fatalf("Render(%q) empty subject", tc.ev)
		}
		for _, want := range tc.contains {
			if !strings.Contains(html, want) {
				t.Fatalf("Render(%q) body missing %q:\n%s", tc.ev, want, html)
			}
		}
	}
}

func TestRenderUnknownEvent(t *testing.T) {
	if _, _, err := Render(lifecycle.Event("bogus"), Data{}); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestRenderEscapesClientInput(t *testing.T) {
	_, html, err := Render(lifecycle.EventProjectCancelled, Data{
		ClientName:         "<script>x</script>",
		ProjectID:          "P0000002",
		CancellationReason: "<b>reason</b>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>reason</b>") {
		t.Fatalf("client input not escaped:\n%s", html)
	}
}
