package request

import (
	"errors"
	"strings"
	"time"

	"homefix_api/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date value")

// dateLayouts are the formats accepted from the admin console and the
// public intake form, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// JobOrderCreateRequest is the intake payload. It binds from multipart form
// fields (file-bearing endpoint) and from JSON (savenofile endpoint).
type JobOrderCreateRequest struct {
	ClientFirstName string   `form:"clientFirstName" json:"clientFirstName"`
	ClientLastName  string   `form:"clientLastName" json:"clientLastName"`
	ClientAddress   string   `form:"clientAddress" json:"clientAddress"`
	ClientEmail     string   `form:"clientEmail" json:"clientEmail"`
	ClientPhone     string   `form:"clientPhone" json:"clientPhone"`
	ClientMessage   string   `form:"clientMessage" json:"clientMessage"`
	InquiryDate     string   `form:"inquiryDate" json:"inquiryDate"`
	JobType         string   `form:"jobType" json:"jobType"`
	JobServices     []string `form:"jobServices" json:"jobServices"`
	InquiryStatus   string   `form:"inquiryStatus" json:"inquiryStatus"`
	CreatedBy       string   `form:"createdBy" json:"createdBy"`
}

func (r JobOrderCreateRequest) ToInput() (usecase.CreateJobOrderInput, error) {
	inquiryDate, err := parseOptionalDate(r.InquiryDate)
	if err != nil {
		return usecase.CreateJobOrderInput{}, err
	}
	return usecase.CreateJobOrderInput{
		ClientFirstName: r.ClientFirstName,
		ClientLastName:  r.ClientLastName,
		ClientAddress:   r.ClientAddress,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		ClientMessage:   r.ClientMessage,
		InquiryDate:     inquiryDate,
		JobType:         r.JobType,
		JobServices:     r.JobServices,
		InquiryStatus:   r.InquiryStatus,
		CreatedBy:       r.CreatedBy,
	}, nil
}

// JobOrderUpdateRequest is the general update payload. A jobStatus value
// different from the stored one makes this a lifecycle transition.
type JobOrderUpdateRequest struct {
	JobStatus string `form:"jobStatus" json:"jobStatus"`
	UpdatedBy string `form:"updatedBy" json:"updatedBy"`

	ClientFirstName string   `form:"clientFirstName" json:"clientFirstName"`
	ClientLastName  string   `form:"clientLastName" json:"clientLastName"`
	ClientAddress   string   `form:"clientAddress" json:"clientAddress"`
	ClientEmail     string   `form:"clientEmail" json:"clientEmail"`
	ClientPhone     string   `form:"clientPhone" json:"clientPhone"`
	ClientMessage   string   `form:"clientMessage" json:"clientMessage"`
	JobType         string   `form:"jobType" json:"jobType"`
	JobServices     []string `form:"jobServices" json:"jobServices"`

	JobInspectionDate string `form:"jobInspectionDate" json:"jobInspectionDate"`
	JobStartDate      string `form:"jobStartDate" json:"jobStartDate"`
	JobEndDate        string `form:"jobEndDate" json:"jobEndDate"`
	JobExtendedDate   string `form:"jobExtendedDate" json:"jobExtendedDate"`

	JobCancellationReason string `form:"jobCancellationReason" json:"jobCancellationReason"`
}

func (r JobOrderUpdateRequest) ToInput() (usecase.UpdateJobOrderInput, error) {
	in := usecase.UpdateJobOrderInput{
		JobStatus:          r.JobStatus,
		UpdatedBy:          r.UpdatedBy,
		ClientFirstName:    r.ClientFirstName,
		ClientLastName:     r.ClientLastName,
		ClientAddress:      r.ClientAddress,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		ClientMessage:      r.ClientMessage,
		JobType:            r.JobType,
		JobServices:        r.JobServices,
		CancellationReason: r.JobCancellationReason,
	}

	var err error
	if in.InspectionDate, err = parseOptionalDate(r.JobInspectionDate); err != nil {
		return usecase.UpdateJobOrderInput{}, err
	}
	if in.StartDate, err = parseOptionalDate(r.JobStartDate); err != nil {
		return usecase.UpdateJobOrderInput{}, err
	}
	if in.EndDate, err = parseOptionalDate(r.JobEndDate); err != nil {
		return usecase.UpdateJobOrderInput{}, err
	}
	if in.ExtendedDate, err = parseOptionalDate(r.JobExtendedDate); err != nil {
		return usecase.UpdateJobOrderInput{}, err
	}
	return in, nil
}

// JobOrderInquiryRequest updates the inquiry sub-state.
type JobOrderInquiryRequest struct {
	InquiryStatus string `json:"inquiryStatus"`
	UpdatedBy     string `json:"updatedBy"`
}

// JobOrderArchiveRequest archives a terminal job order.
type JobOrderArchiveRequest struct {
	UpdatedBy string `json:"updatedBy"`
}

// JobOrderNoteRequest sets/replaces the single note slot.
type JobOrderNoteRequest struct {
	NoteType string `json:"noteType"`
	JobNote  string `json:"jobNote"`
	Operator string `json:"operator"`
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}
