package response

import (
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase"
)

type JobOrderResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectID"`

	ClientFirstName string `json:"clientFirstName"`
	ClientLastName  string `json:"clientLastName"`
	ClientAddress   string `json:"clientAddress"`
	ClientEmail     string `json:"clientEmail,omitempty"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	ClientMessage   string `json:"clientMessage,omitempty"`

	InquiryDate time.Time `json:"inquiryDate"`

	JobType     string   `json:"jobType"`
	JobServices []string `json:"jobServices"`

	JobStatus            string `json:"jobStatus"`
	InquiryStatus        string `json:"inquiryStatus,omitempty"`
	JobNotificationAlert string `json:"jobNotificationAlert,omitempty"`
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

	CreatedBy     *string `json:"createdBy"`
	UpdatedBy     *string `json:"updatedBy"`
	CreatedByName string  `json:"createdByName,omitempty"`
	UpdatedByName string  `json:"updatedByName,omitempty"`

	IsArchived bool       `json:"isArchived"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromJobOrder(j entities.JobOrder) JobOrderResponse {
	return JobOrderResponse{
		ID:                    j.ID,
		ProjectID:             j.ProjectID,
		ClientFirstName:       j.ClientFirstName,
		ClientLastName:        j.ClientLastName,
		ClientAddress:         j.ClientAddress,
		ClientEmail:           j.ClientEmail,
		ClientPhone:           j.ClientPhone,
		ClientMessage:         j.ClientMessage,
		InquiryDate:           j.InquiryDate,
		JobType:               j.JobType,
		JobServices:           j.JobServices,
		JobStatus:             j.JobStatus,
		InquiryStatus:         j.InquiryStatus,
		JobNotificationAlert:  j.JobNotificationAlert,
		JobNotificationRead:   j.JobNotificationRead,
		JobInspectionDate:     j.JobInspectionDate,
		JobStartDate:          j.JobStartDate,
		JobEndDate:            j.JobEndDate,
		JobExtendedDate:       j.JobExtendedDate,
		JobCompletedDate:      j.JobCompletedDate,
		JobCancelledDate:      j.JobCancelledDate,
		JobCancellationReason: j.JobCancellationReason,
		JobPreviousStatus:     j.JobPreviousStatus,
		JobQuotation:          j.JobQuotation,
		JobQuotationPublicKey: j.JobQuotationPublicKey,
		JobNote:               j.JobNote,
		CreatedNote:           j.CreatedNote,
		UpdatedNote:           j.UpdatedNote,
		CreatedBy:             j.CreatedBy,
		UpdatedBy:             j.UpdatedBy,
		IsArchived:            j.IsArchived,
		ArchivedAt:            j.ArchivedAt,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

func FromJobOrderView(v usecase.JobOrderView) JobOrderResponse {
	res := FromJobOrder(v.JobOrder)
	res.CreatedByName = v.CreatedByName
	res.UpdatedByName = v.UpdatedByName
	return res
}

func FromJobOrderViews(views []usecase.JobOrderView) []JobOrderResponse {
	out := make([]JobOrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromJobOrderView(v))
	}
	return out
}
