package entities

import "time"

// JobOrder is the central work-tracking record, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Domain notes:
//   - ProjectID is a human-readable identifier ("P" + 7-digit sequence),
//     assigned exactly once at creation from the shared counter.
//   - Operator references (CreatedBy/UpdatedBy/notes) are nil when the
//     actor was the client self-service intake flow.
//   - JobNote is a single slot: an update overwrites the previous note and
//     its author pointer. There is no note history.
type JobOrder struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectID"`

	ClientFirstName string `json:"clientFirstName"`
	ClientLastName  string `json:"clientLastName"`
	ClientAddress   string `json:"clientAddress"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	ClientMessage   string `json:"clientMessage"`

	InquiryDate time.Time `json:"inquiryDate"`

	JobType     string   `json:"jobType"`
	JobServices []string `json:"jobServices"`

	JobStatus            string `json:"jobStatus"`
	InquiryStatus        string `json:"inquiryStatus"`
	JobNotificationAlert string `json:"jobNotificationAlert"`
	JobNotificationRead  bool   `json:"jobNotificationRead"`

	JobInspectionDate *time.Time `json:"jobInspectionDate,omitempty"`
	JobStartDate      *time.Time `json:"jobStartDate,omitempty"`
	JobEndDate        *time.Time `json:"jobEndDate,omitempty"`
	JobExtendedDate   *time.Time `json:"jobExtendedDate,omitempty"`

	JobCompletedDate      *time.Time `json:"jobCompletedDate,omitempty"`
	JobCancelledDate      *time.Time `json:"jobCancelledDate,omitempty"`
	JobCancellationReason string     `json:"jobCancellationReason,omitempty"`
	JobPreviousStatus     string     `json:"jobPreviousStatus,omitempty"`

	JobQuotation          string `json:"jobQuotation,omitempty"`
	JobQuotationPublicKey string `json:"jobQuotationPublicKey,omitempty"`

	JobNote     string  `json:"jobNote,omitempty"`
	CreatedNote *string `json:"createdNote,omitempty"`
	UpdatedNote *string `json:"updatedNote,omitempty"`

	CreatedBy *string `json:"createdBy"`
	UpdatedBy *string `json:"updatedBy"`

	IsArchived bool       `json:"isArchived"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasQuotation reports whether the job order currently references a live
// quotation file in the upload gateway.
func (j JobOrder) HasQuotation() bool {
	return j.JobQuotation != "" && j.JobQuotationPublicKey != ""
}
