package lifecycle

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"inquiry to on process", StatusInquiry, StatusOnProcess, true},
		{"inquiry to cancelled", StatusInquiry, StatusCancelled, true},
		{"inquiry skips to in progress", StatusInquiry, StatusInProgress, false},
		{"on process to in progress", StatusOnProcess, StatusInProgress, true},
		{"on process to cancelled", StatusOnProcess, StatusCancelled, true},
		{"on process to completed", StatusOnProcess, StatusCompleted, false},
		{"in progress to completed", StatusInProgress, StatusCompleted, true},
		{"in progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusOnProcess, false},
		{"no backwards move", StatusInProgress, StatusOnProcess, false},
		{"unknown from", Status("bogus"), StatusOnProcess, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestArchivable(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		if !Archivable(s) {
			t.Fatalf("expected %q to be archivable", s)
		}
	}
	for _, s := range []Status{StatusInquiry, StatusOnProcess, StatusInProgress} {
		if Archivable(s) {
			t.Fatalf("expected %q to not be archivable", s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusCancelled) {
		t.Fatalf("expected completed and cancelled to be terminal")
	}
	if IsTerminal(StatusInquiry) || IsTerminal(Status("bogus")) {
		t.Fatalf("expected inquiry and unknown statuses to not be terminal")
	}
}

func TestEventFor(t *testing.T) {
	cases := map[Status]Event{
		StatusOnProcess:  EventInspectionScheduled,
		StatusInProgress: EventQuotationReady,
		StatusCompleted:  EventProjectCompleted,
		StatusCancelled:  EventProjectCancelled,
	}
	for status, want := range cases {
		ev, ok := EventFor(status)
		if !ok || ev != want {
			t.Fatalf("EventFor(%q) = %q, %v; want %q", status, ev, ok, want)
		}
	}
	if _, ok := EventFor(StatusInquiry); ok {
		t.Fatalf("expected no event on arrival at inquiry")
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusInquiry, StatusOnProcess, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !IsValid(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if IsValid(Status("archived")) {
		t.Fatalf("archived is a flag, not a status")
	}
}
