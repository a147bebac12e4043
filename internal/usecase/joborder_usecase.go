package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/domain/lifecycle"
	"homefix_api/internal/domain/notify"
	"homefix_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobOrderNotFound       = errors.New("job order not found")
	ErrInvalidJobOrderID      = errors.New("invalid job order id")
	ErrInvalidOperatorRef     = errors.New("invalid operator reference")
	ErrInvalidStatus          = errors.New("invalid job status")
	ErrInvalidTransition      = errors.New("illegal status transition")
	ErrNotArchivable          = errors.New("only completed or cancelled job orders can be archived")
	ErrCancellationReason     = errors.New("cancellation reason is required")
	ErrInvalidInquiryStatus   = errors.New("invalid inquiry status")
	ErrInvalidNoteType        = errors.New("invalid note type")
	ErrQuotationFileRequired  = errors.New("quotation file is required")
	ErrUploadsNotConfigured   = errors.New("upload storage is not configured")
	ErrInquiryNotAcknowledged = errors.New("inquiry has not been acknowledged")
	ErrInspectionDateRequired = errors.New("inspection date is required")
	ErrScheduleDatesRequired  = errors.New("start and end dates are required")
)

// ValidationError reports a missing required field by name, so the client
// response can point at the offending field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// ClientActor is the sentinel the intake form sends when no operator was
// involved. It is normalized to a nil operator reference before persistence.
const ClientActor = "Client"

// Note-type tags accepted by SetNote.
const (
	NoteTypeCreated = "createdNote"
	NoteTypeUpdated = "updatedNote"
)

// CreateJobOrderInput is the intake payload for a new job order.
type CreateJobOrderInput struct {
	ClientFirstName string
	ClientLastName  string
	ClientAddress   string
	ClientEmail     string
	ClientPhone     string
	ClientMessage   string
	InquiryDate     *time.Time
	JobType         string
	JobServices     []string
	InquiryStatus   string
	CreatedBy       string

	QuotationFile     []byte
	QuotationFilename string
}

// UpdateJobOrderInput is the general update payload. When JobStatus names a
// different status than the stored one, the update is a lifecycle transition
// and the matching side effects fire; otherwise only the supplied fields are
// written.
type UpdateJobOrderInput struct {
	JobStatus string
	UpdatedBy string

	ClientFirstName string
	ClientLastName  string
	ClientAddress   string
	ClientEmail     string
	ClientPhone     string
	ClientMessage   string
	JobType         string
	JobServices     []string

	InspectionDate     *time.Time
	StartDate          *time.Time
	EndDate            *time.Time
	ExtendedDate       *time.Time
	CancellationReason string

	QuotationFile     []byte
	QuotationFilename string
}

// JobOrderView is a job order decorated with resolved operator display
// names for the admin list view.
type JobOrderView struct {
	entities.JobOrder
	CreatedByName string `json:"createdByName,omitempty"`
	UpdatedByName string `json:"updatedByName,omitempty"`
}

// IJobOrderUseCase exposes the job-order lifecycle operations.
//
// Side-effect ordering contract (per transition):
//  1. validate (no side effect before this passes)
//  2. allocate identifier / upload file (fatal on failure)
//  3. persist (fatal on failure)
//  4. notify (best-effort; a failure is logged and never rolls back the transition)
type IJobOrderUseCase interface {
	Create(ctx context.Context, in CreateJobOrderInput) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	List(ctx context.Context, filter interfaces.JobOrderFilter) ([]JobOrderView, error)
	Update(ctx context.Context, id string, in UpdateJobOrderInput) (entities.JobOrder, error)
	UpdateQuotation(ctx context.Context, id, updatedBy string, file []byte, filename string) (entities.JobOrder, error)
	UpdateInquiry(ctx context.Context, id, inquiryStatus, updatedBy string) (entities.JobOrder, error)
	Archive(ctx context.Context, id, updatedBy string) (entities.JobOrder, error)
	SetNote(ctx context.Context, id, noteType, operatorRef, note string) (entities.JobOrder, error)
	Delete(ctx context.Context, id string) error
}

type JobOrderUseCase struct {
	repo      interfaces.IJobOrderRepository
	counters  interfaces.ICounterRepository
	uploads   interfaces.IUploadGateway
	mailer    interfaces.IMailer
	directory interfaces.IOperatorDirectory
}

var _ IJobOrderUseCase = (*JobOrderUseCase)(nil)

func NewJobOrderUseCase(
	repo interfaces.IJobOrderRepository,
	counters interfaces.ICounterRepository,
	uploads interfaces.IUploadGateway,
	mailer interfaces.IMailer,
	directory interfaces.IOperatorDirectory,
) *JobOrderUseCase {
	return &JobOrderUseCase{repo: repo, counters: counters, uploads: uploads, mailer: mailer, directory: directory}
}

func (u *JobOrderUseCase) Create(ctx context.Context, in CreateJobOrderInput) (entities.JobOrder, error) {
	log.Printf("[joborder][usecase] create start first_name=%q job_type=%q", in.ClientFirstName, in.JobType)

	if err := validateRequiredFields(in); err != nil {
		log.Printf("[joborder][usecase] create rejected err=%v", err)
		return entities.JobOrder{}, err
	}

	createdBy, err := normalizeActor(in.CreatedBy)
	if err != nil {
		return entities.JobOrder{}, err
	}

	inquiryStatus := lifecycle.InquiryStatus(strings.TrimSpace(in.InquiryStatus))
	switch inquiryStatus {
	case lifecycle.InquiryStatusNone:
		inquiryStatus = lifecycle.InquiryStatusPending
	case lifecycle.InquiryStatusPending, lifecycle.InquiryStatusReceived:
	default:
		return entities.JobOrder{}, ErrInvalidInquiryStatus
	}

	// Checked before allocation so a misconfigured deployment burns no id.
	if len(in.QuotationFile) > 0 && u.uploads == nil {
		log.Printf("[joborder][usecase] create rejected err=%v", ErrUploadsNotConfigured)
		return entities.JobOrder{}, ErrUploadsNotConfigured
	}

	// No order without an identifier: allocation failure aborts creation.
	seq, err := u.counters.NextSequence(ctx, entities.CounterFieldProject)
	if err != nil {
		log.Printf("[joborder][usecase] project id allocation failed err=%v", err)
		return entities.JobOrder{}, err
	}
	projectID := entities.FormatProjectID(seq)

	now := time.Now().UTC()
	inquiryDate := now
	if in.InquiryDate != nil {
		inquiryDate = in.InquiryDate.UTC()
	}

	j := entities.JobOrder{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		ClientFirstName: strings.TrimSpace(in.ClientFirstName),
		ClientLastName:  strings.TrimSpace(in.ClientLastName),
		ClientAddress:   strings.TrimSpace(in.ClientAddress),
		ClientEmail:     strings.TrimSpace(in.ClientEmail),
		ClientPhone:     strings.TrimSpace(in.ClientPhone),
		ClientMessage:   in.ClientMessage,
		InquiryDate:     inquiryDate,
		JobType:         strings.TrimSpace(in.JobType),
		JobServices:     trimServices(in.JobServices),
		JobStatus:       string(lifecycle.StatusInquiry),
		InquiryStatus:   string(inquiryStatus),
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if len(in.QuotationFile) > 0 {
		res, err := u.uploads.UploadDocument(ctx, in.QuotationFile, in.QuotationFilename)
		if err != nil {
			log.Printf("[joborder][usecase] quotation upload failed project_id=%s err=%v", projectID, err)
			return entities.JobOrder{}, err
		}
		j.JobQuotation = res.URL
		j.JobQuotationPublicKey = res.PublicKey
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] create persist failed project_id=%s err=%v", projectID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] create success id=%s project_id=%s", created.ID, created.ProjectID)

	// Acknowledgement email fires only when the order was explicitly marked
	// received at creation (operator-entered intake).
	if inquiryStatus == lifecycle.InquiryStatusReceived {
		u.notifyEvent(ctx, created, lifecycle.EventInquiryReceived, nil)
	}
	return created, nil
}

func (u *JobOrderUseCase) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	return u.load(ctx, id)
}

func (u *JobOrderUseCase) List(ctx context.Context, filter interfaces.JobOrderFilter) ([]JobOrderView, error) {
	orders, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]JobOrderView, 0, len(orders))
	for _, j := range orders {
		v := JobOrderView{JobOrder: j}
		v.CreatedByName = u.resolveName(ctx, j.CreatedBy)
		v.UpdatedByName = u.resolveName(ctx, j.UpdatedBy)
		views = append(views, v)
	}
	return views, nil
}

func (u *JobOrderUseCase) Update(ctx context.Context, id string, in UpdateJobOrderInput) (entities.JobOrder, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	updatedBy, err := normalizeActor(in.UpdatedBy)
	if err != nil {
		return entities.JobOrder{}, err
	}

	applyClientFields(&j, in)

	target := lifecycle.Status(strings.TrimSpace(in.JobStatus))
	transitioning := target != "" && target != lifecycle.Status(j.JobStatus)

	var event lifecycle.Event
	var attachments []interfaces.Attachment
	now := time.Now().UTC()

	if transitioning {
		if !lifecycle.IsValid(target) {
			return entities.JobOrder{}, ErrInvalidStatus
		}
		from := lifecycle.Status(j.JobStatus)
		if !lifecycle.CanTransition(from, target) {
			log.Printf("[joborder][usecase] illegal transition id=%s from=%q to=%q", j.ID, from, target)
			return entities.JobOrder{}, ErrInvalidTransition
		}

		switch target {
		case lifecycle.StatusOnProcess:
			// Scheduling departs from an acknowledged inquiry; a pending
			// one never received its acknowledgement email.
			if lifecycle.InquiryStatus(j.InquiryStatus) != lifecycle.InquiryStatusReceived {
				return entities.JobOrder{}, ErrInquiryNotAcknowledged
			}
			if in.InspectionDate == nil {
				return entities.JobOrder{}, ErrInspectionDateRequired
			}
			d := in.InspectionDate.UTC()
			j.JobInspectionDate = &d
			j.InquiryStatus = string(lifecycle.InquiryStatusNone)

		case lifecycle.StatusInProgress:
			if in.StartDate == nil || in.EndDate == nil {
				return entities.JobOrder{}, ErrScheduleDatesRequired
			}
			if len(in.QuotationFile) == 0 {
				return entities.JobOrder{}, ErrQuotationFileRequired
			}
			if err := u.replaceQuotation(ctx, &j, in.QuotationFile, in.QuotationFilename); err != nil {
				return entities.JobOrder{}, err
			}
			start, end := in.StartDate.UTC(), in.EndDate.UTC()
			j.JobStartDate = &start
			j.JobEndDate = &end
			attachments = []interfaces.Attachment{{
				Filename:    attachmentName(in.QuotationFilename, j.ProjectID),
				ContentType: "application/pdf",
				Content:     in.QuotationFile,
			}}

		case lifecycle.StatusCompleted:
			j.JobCompletedDate = &now

		case lifecycle.StatusCancelled:
			if strings.TrimSpace(in.CancellationReason) == "" {
				return entities.JobOrder{}, ErrCancellationReason
			}
			j.JobPreviousStatus = j.JobStatus
			j.JobCancelledDate = &now
			j.JobCancellationReason = strings.TrimSpace(in.CancellationReason)
		}

		j.JobStatus = string(target)
		j.JobNotificationAlert = string(target)
		if ev, ok := lifecycle.EventFor(target); ok {
			event = ev
		}
	}

	if in.ExtendedDate != nil {
		d := in.ExtendedDate.UTC()
		j.JobExtendedDate = &d
	}

	j.UpdatedBy = updatedBy
	j.UpdatedAt = now

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] update persist failed id=%s err=%v", j.ID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] update success id=%s status=%s", saved.ID, saved.JobStatus)

	if event != "" {
		u.notifyEvent(ctx, saved, event, attachments)
	}
	return saved, nil
}

func (u *JobOrderUseCase) UpdateQuotation(ctx context.Context, id, updatedBy string, file []byte, filename string) (entities.JobOrder, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	actor, err := normalizeActor(updatedBy)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(file) == 0 {
		return entities.JobOrder{}, ErrQuotationFileRequired
	}

	if err := u.replaceQuotation(ctx, &j, file, filename); err != nil {
		return entities.JobOrder{}, err
	}

	j.UpdatedBy = actor
	j.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] quotation update persist failed id=%s err=%v", j.ID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] quotation update success id=%s", saved.ID)
	return saved, nil
}

func (u *JobOrderUseCase) UpdateInquiry(ctx context.Context, id, inquiryStatus, updatedBy string) (entities.JobOrder, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	actor, err := normalizeActor(updatedBy)
	if err != nil {
		return entities.JobOrder{}, err
	}

	status := lifecycle.InquiryStatus(strings.TrimSpace(inquiryStatus))
	if status != lifecycle.InquiryStatusPending && status != lifecycle.InquiryStatusReceived {
		return entities.JobOrder{}, ErrInvalidInquiryStatus
	}
	if lifecycle.Status(j.JobStatus) != lifecycle.StatusInquiry {
		return entities.JobOrder{}, ErrInvalidTransition
	}

	acknowledged := status == lifecycle.InquiryStatusReceived && j.InquiryStatus != string(lifecycle.InquiryStatusReceived)

	j.InquiryStatus = string(status)
	if acknowledged {
		j.JobNotificationRead = true
	}
	j.UpdatedBy = actor
	j.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] inquiry update persist failed id=%s err=%v", j.ID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] inquiry update success id=%s inquiry_status=%s", saved.ID, saved.InquiryStatus)

	if acknowledged {
		u.notifyEvent(ctx, saved, lifecycle.EventInquiryReceived, nil)
	}
	return saved, nil
}

func (u *JobOrderUseCase) Archive(ctx context.Context, id, updatedBy string) (entities.JobOrder, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	actor, err := normalizeActor(updatedBy)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if !lifecycle.Archivable(lifecycle.Status(j.JobStatus)) {
		log.Printf("[joborder][usecase] archive rejected id=%s status=%s", j.ID, j.JobStatus)
		return entities.JobOrder{}, ErrNotArchivable
	}

	now := time.Now().UTC()
	j.IsArchived = true
	j.ArchivedAt = &now
	j.UpdatedBy = actor
	j.UpdatedAt = now

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] archive persist failed id=%s err=%v", j.ID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] archive success id=%s", saved.ID)
	return saved, nil
}

func (u *JobOrderUseCase) SetNote(ctx context.Context, id, noteType, operatorRef, note string) (entities.JobOrder, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}

	if noteType != NoteTypeCreated && noteType != NoteTypeUpdated {
		return entities.JobOrder{}, ErrInvalidNoteType
	}
	operatorRef = strings.TrimSpace(operatorRef)
	if _, err := uuid.Parse(operatorRef); err != nil {
		return entities.JobOrder{}, ErrInvalidOperatorRef
	}

	// Single-slot semantics: the new note and author replace the old ones.
	j.JobNote = note
	switch noteType {
	case NoteTypeCreated:
		j.CreatedNote = &operatorRef
		j.UpdatedNote = nil
	case NoteTypeUpdated:
		j.UpdatedNote = &operatorRef
	}
	j.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, j)
	if err != nil {
		log.Printf("[joborder][usecase] note persist failed id=%s err=%v", j.ID, err)
		return entities.JobOrder{}, err
	}
	log.Printf("[joborder][usecase] note update success id=%s note_type=%s", saved.ID, noteType)
	return saved, nil
}

func (u *JobOrderUseCase) Delete(ctx context.Context, id string) error {
	j, err := u.load(ctx, id)
	if err != nil {
		return err
	}

	if j.HasQuotation() && u.uploads != nil {
		if err := u.uploads.DeleteByKey(ctx, j.JobQuotationPublicKey); err != nil {
			log.Printf("[joborder][usecase] quotation cleanup failed id=%s key=%s err=%v", j.ID, j.JobQuotationPublicKey, err)
		}
	}
	if err := u.repo.Delete(ctx, j.ID); err != nil {
		log.Printf("[joborder][usecase] delete failed id=%s err=%v", j.ID, err)
		return err
	}
	log.Printf("[joborder][usecase] delete success id=%s", j.ID)
	return nil
}

func (u *JobOrderUseCase) load(ctx context.Context, id string) (entities.JobOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobOrder{}, ErrInvalidJobOrderID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if j.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return j, nil
}

// replaceQuotation deletes the previous quotation file (best-effort) and
// uploads the new one. Upload failure is fatal: quotation-bearing
// transitions genuinely depend on the file.
func (u *JobOrderUseCase) replaceQuotation(ctx context.Context, j *entities.JobOrder, file []byte, filename string) error {
	if u.uploads == nil {
		return ErrUploadsNotConfigured
	}
	if j.HasQuotation() {
		if err := u.uploads.DeleteByKey(ctx, j.JobQuotationPublicKey); err != nil {
			log.Printf("[joborder][usecase] previous quotation delete failed id=%s key=%s err=%v", j.ID, j.JobQuotationPublicKey, err)
		}
	}
	res, err := u.uploads.UploadDocument(ctx, file, filename)
	if err != nil {
		log.Printf("[joborder][usecase] quotation upload failed id=%s err=%v", j.ID, err)
		return err
	}
	j.JobQuotation = res.URL
	j.JobQuotationPublicKey = res.PublicKey
	return nil
}

// notifyEvent sends the lifecycle email for the event. It is strictly
// best-effort: the transition has already been persisted, so every failure
// here is logged and swallowed. When an attachment delivery fails, the send
// is retried once without the attachment before giving up.
func (u *JobOrderUseCase) notifyEvent(ctx context.Context, j entities.JobOrder, ev lifecycle.Event, attachments []interfaces.Attachment) {
	if u.mailer == nil {
		return
	}
	if strings.TrimSpace(j.ClientEmail) == "" {
		log.Printf("[joborder][notify] skipped event=%s id=%s reason=no-client-email", ev, j.ID)
		return
	}

	subject, body, err := notify.Render(ev, notifyData(j))
	if err != nil {
		log.Printf("[joborder][notify] render failed event=%s id=%s err=%v", ev, j.ID, err)
		return
	}

	msg := interfaces.Message{To: j.ClientEmail, Subject: subject, HTMLBody: body, Attachments: attachments}
	if err := u.mailer.Send(ctx, msg); err != nil {
		if len(attachments) > 0 {
			log.Printf("[joborder][notify] send with attachment failed event=%s id=%s err=%v; retrying without attachment", ev, j.ID, err)
			msg.Attachments = nil
			if err2 := u.mailer.Send(ctx, msg); err2 == nil {
				log.Printf("[joborder][notify] sent without attachment event=%s id=%s", ev, j.ID)
				return
			}
		}
		log.Printf("[joborder][notify] send failed event=%s id=%s err=%v", ev, j.ID, err)
		return
	}
	log.Printf("[joborder][notify] sent event=%s id=%s to=%s", ev, j.ID, j.ClientEmail)
}

func notifyData(j entities.JobOrder) notify.Data {
	d := notify.Data{
		ClientName:         strings.TrimSpace(j.ClientFirstName + " " + j.ClientLastName),
		ProjectID:          j.ProjectID,
		JobType:            j.JobType,
		CancellationReason: j.JobCancellationReason,
	}
	if j.JobInspectionDate != nil {
		d.InspectionDate = j.JobInspectionDate.Format("January 2, 2006")
	}
	if j.JobStartDate != nil {
		d.StartDate = j.JobStartDate.Format("January 2, 2006")
	}
	if j.JobEndDate != nil {
		d.EndDate = j.JobEndDate.Format("January 2, 2006")
	}
	if base := strings.TrimSpace(os.Getenv("FEEDBACK_FORM_URL")); base != "" {
		d.FeedbackURL = fmt.Sprintf("%s?ref=%s", strings.TrimRight(base, "/"), j.ProjectID)
	}
	return d
}

func (u *JobOrderUseCase) resolveName(ctx context.Context, operatorID *string) string {
	if u.directory == nil || operatorID == nil || *operatorID == "" {
		return ""
	}
	name, err := u.directory.DisplayName(ctx, *operatorID)
	if err != nil {
		log.Printf("[joborder][usecase] operator lookup failed operator_id=%s err=%v", *operatorID, err)
		return ""
	}
	return name
}

// normalizeActor maps the intake "Client" sentinel (and blank values) to a
// nil operator reference; anything else must be a well-formed reference id.
func normalizeActor(ref string) (*string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || ref == ClientActor {
		return nil, nil
	}
	if _, err := uuid.Parse(ref); err != nil {
		return nil, ErrInvalidOperatorRef
	}
	return &ref, nil
}

func validateRequiredFields(in CreateJobOrderInput) error {
	if strings.TrimSpace(in.ClientFirstName) == "" {
		return &ValidationError{Field: "clientFirstName"}
	}
	if strings.TrimSpace(in.ClientLastName) == "" {
		return &ValidationError{Field: "clientLastName"}
	}
	if strings.TrimSpace(in.ClientAddress) == "" {
		return &ValidationError{Field: "clientAddress"}
	}
	if strings.TrimSpace(in.JobType) == "" {
		return &ValidationError{Field: "jobType"}
	}
	if len(trimServices(in.JobServices)) == 0 {
		return &ValidationError{Field: "jobServices"}
	}
	return nil
}

func trimServices(services []string) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func applyClientFields(j *entities.JobOrder, in UpdateJobOrderInput) {
	if v := strings.TrimSpace(in.ClientFirstName); v != "" {
		j.ClientFirstName = v
	}
	if v := strings.TrimSpace(in.ClientLastName); v != "" {
		j.ClientLastName = v
	}
	if v := strings.TrimSpace(in.ClientAddress); v != "" {
		j.ClientAddress = v
	}
	if v := strings.TrimSpace(in.ClientEmail); v != "" {
		j.ClientEmail = v
	}
	if v := strings.TrimSpace(in.ClientPhone); v != "" {
		j.ClientPhone = v
	}
	if in.ClientMessage != "" {
		j.ClientMessage = in.ClientMessage
	}
	if v := strings.TrimSpace(in.JobType); v != "" {
		j.JobType = v
	}
	if services := trimServices(in.JobServices); len(services) > 0 {
		j.JobServices = services
	}
}

func attachmentName(filename, projectID string) string {
	if v := strings.TrimSpace(filename); v != "" {
		return v
	}
	return fmt.Sprintf("quotation-%s.pdf", projectID)
}
