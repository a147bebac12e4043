package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/domain/lifecycle"
	"homefix_api/internal/usecase/interfaces"
)

var (
	ErrTestimonialNotFound  = errors.New("testimonial not found")
	ErrTestimonialExists    = errors.New("already submitted feedback")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrJobOrderNotCompleted = errors.New("job order is not completed")
	ErrInvalidTestimonialSt = errors.New("invalid testimonial status")
)

// SubmitTestimonialInput is the client-facing feedback payload.
type SubmitTestimonialInput struct {
	JobID   string
	Rating  int
	Message string
}

// ITestimonialUseCase exposes post-completion feedback operations.
type ITestimonialUseCase interface {
	Submit(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error)
	List(ctx context.Context) ([]entities.Testimonial, error)
	UpdateStatus(ctx context.Context, jobID string, status string) (entities.Testimonial, error)
	MarkRead(ctx context.Context, jobID string) (entities.Testimonial, error)
}

type TestimonialUseCase struct {
	repo     interfaces.ITestimonialRepository
	jobOrder interfaces.IJobOrderRepository
}

var _ ITestimonialUseCase = (*TestimonialUseCase)(nil)

func NewTestimonialUseCase(repo interfaces.ITestimonialRepository, jobOrder interfaces.IJobOrderRepository) *TestimonialUseCase {
	return &TestimonialUseCase{repo: repo, jobOrder: jobOrder}
}

func (u *TestimonialUseCase) Submit(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return entities.Testimonial{}, ErrInvalidJobOrderID
	}
	if in.Rating < 1 || in.Rating > 5 {
		return entities.Testimonial{}, ErrInvalidRating
	}

	j, err := u.jobOrder.GetByID(ctx, jobID)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if j.ID == "" {
		return entities.Testimonial{}, ErrJobOrderNotFound
	}
	if lifecycle.Status(j.JobStatus) != lifecycle.StatusCompleted {
		return entities.Testimonial{}, ErrJobOrderNotCompleted
	}

	// One testimonial per job order, enforced twice: here for a friendly
	// error, and by the conditional put for the concurrent case.
	if existing, err := u.repo.GetByJobID(ctx, jobID); err != nil {
		return entities.Testimonial{}, err
	} else if existing.JobID != "" {
		return entities.Testimonial{}, ErrTestimonialExists
	}

	now := time.Now().UTC()
	t := entities.Testimonial{
		JobID:      jobID,
		ClientName: strings.TrimSpace(j.ClientFirstName + " " + j.ClientLastName),
		Rating:     in.Rating,
		Message:    strings.TrimSpace(in.Message),
		Status:     entities.TestimonialStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[testimonial][usecase] create failed job_id=%s err=%v", jobID, err)
		return entities.Testimonial{}, err
	}
	// Zero value means the conditional put lost a duplicate race.
	if created.JobID == "" {
		return entities.Testimonial{}, ErrTestimonialExists
	}
	log.Printf("[testimonial][usecase] create success job_id=%s rating=%d", created.JobID, created.Rating)
	return created, nil
}

func (u *TestimonialUseCase) List(ctx context.Context) ([]entities.Testimonial, error) {
	return u.repo.List(ctx)
}

func (u *TestimonialUseCase) UpdateStatus(ctx context.Context, jobID string, status string) (entities.Testimonial, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Testimonial{}, ErrInvalidJobOrderID
	}

	st := entities.TestimonialStatus(strings.TrimSpace(status))
	if st != entities.TestimonialStatusDraft && st != entities.TestimonialStatusPublished {
		return entities.Testimonial{}, ErrInvalidTestimonialSt
	}

	updated, err := u.repo.UpdateStatus(ctx, jobID, st)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if updated.JobID == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	log.Printf("[testimonial][usecase] status update success job_id=%s status=%s", updated.JobID, updated.Status)
	return updated, nil
}

func (u *TestimonialUseCase) MarkRead(ctx context.Context, jobID string) (entities.Testimonial, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Testimonial{}, ErrInvalidJobOrderID
	}

	updated, err := u.repo.MarkRead(ctx, jobID)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if updated.JobID == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	return updated, nil
}
