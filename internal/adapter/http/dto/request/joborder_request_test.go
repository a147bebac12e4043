package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseOptionalDate(t *testing.T) {
	got, err := parseOptionalDate("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}

	got, err = parseOptionalDate("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = parseOptionalDate("2025-03-14T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Hour() != 10 || got.Minute() != 30 {
		t.Fatalf("unexpected parsed time: %v", got)
	}

	if _, err = parseOptionalDate("14/03/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestJobOrderCreateRequest_ToInput(t *testing.T) {
	r := JobOrderCreateRequest{
		ClientFirstName: "Maria",
		ClientLastName:  "Silva",
		ClientAddress:   "12 Oak Street",
		ClientEmail:     "maria@example.com",
		InquiryDate:     "2025-03-14",
		JobType:         "renovation",
		JobServices:     []string{"painting", "drywall"},
		InquiryStatus:   "pending",
		CreatedBy:       "Client",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientFirstName != "Maria" || in.ClientLastName != "Silva" {
		t.Fatalf("unexpected client fields: %+v", in)
	}
	if in.InquiryDate == nil || in.InquiryDate.Year() != 2025 {
		t.Fatalf("unexpected inquiry date: %v", in.InquiryDate)
	}
	if len(in.JobServices) != 2 || in.CreatedBy != "Client" {
		t.Fatalf("unexpected mapped fields: %+v", in)
	}

	r.InquiryDate = "not-a-date"
	if _, err = r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestJobOrderUpdateRequest_ToInput(t *testing.T) {
	r := JobOrderUpdateRequest{
		JobStatus:             "in progress",
		UpdatedBy:             "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		JobStartDate:          "2025-04-01",
		JobEndDate:            "2025-04-30",
		JobCancellationReason: "",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.JobStatus != "in progress" {
		t.Fatalf("unexpected status: %q", in.JobStatus)
	}
	if in.StartDate == nil || in.EndDate == nil {
		t.Fatalf("expected start and end dates, got %+v", in)
	}
	if in.InspectionDate != nil || in.ExtendedDate != nil {
		t.Fatalf("expected blank dates to stay nil, got %+v", in)
	}

	r.JobExtendedDate = "soon"
	if _, err = r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
