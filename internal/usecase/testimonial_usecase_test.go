package usecase

import (
	"context"
	"errors"
	"testing"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/domain/lifecycle"
	mock_interfaces "homefix_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTestimonialUseCase_Submit(t *testing.T) {
	t.Run("blank job id", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "  ", Rating: 5})
		if !errors.Is(err, ErrInvalidJobOrderID) {
			t.Fatalf("expected ErrInvalidJobOrderID, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil)
		for _, rating := range []int{0, 6, -1} {
			_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "job-1", Rating: rating})
			if !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("job order must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewTestimonialUseCase(nil, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.JobOrder{}, nil)

		_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrJobOrderNotFound) {
			t.Fatalf("expected ErrJobOrderNotFound, got %v", err)
		}
	})

	t.Run("job order must be completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewTestimonialUseCase(nil, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(storedJobOrder(lifecycle.StatusInProgress), nil)

		_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrJobOrderNotCompleted) {
			t.Fatalf("expected ErrJobOrderNotCompleted, got %v", err)
		}
	})

	t.Run("duplicate submission rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewTestimonialUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(storedJobOrder(lifecycle.StatusCompleted), nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").
			Return(entities.Testimonial{JobID: "job-1"}, nil)

		_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrTestimonialExists) {
			t.Fatalf("expected ErrTestimonialExists, got %v", err)
		}
		if err.Error() != "already submitted feedback" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("losing the duplicate race still reports already submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewTestimonialUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(storedJobOrder(lifecycle.StatusCompleted), nil)
		// Pre-check sees nothing, then the conditional put loses to a
		// concurrent submit and comes back zero.
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Testimonial{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Testimonial{}, nil)

		_, err := uc.Submit(context.Background(), SubmitTestimonialInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrTestimonialExists) {
			t.Fatalf("expected ErrTestimonialExists, got %v", err)
		}
	})

	t.Run("submit success derives the client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		uc := NewTestimonialUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(storedJobOrder(lifecycle.StatusCompleted), nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Testimonial{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Testimonial) (entities.Testimonial, error) {
				return tm, nil
			})

		created, err := uc.Submit(context.Background(), SubmitTestimonialInput{
			JobID:   "job-1",
			Rating:  5,
			Message: "  great work  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ClientName != "Maria Silva" {
			t.Fatalf("expected derived client name, got %q", created.ClientName)
		}
		if created.Message != "great work" {
			t.Fatalf("message not trimmed: %q", created.Message)
		}
		if created.Status != entities.TestimonialStatusDraft {
			t.Fatalf("new testimonials must start as drafts, got %s", created.Status)
		}
	})
}

func TestTestimonialUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "job-1", "archived")
		if !errors.Is(err, ErrInvalidTestimonialSt) {
			t.Fatalf("expected ErrInvalidTestimonialSt, got %v", err)
		}
	})

	t.Run("publish success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.TestimonialStatusPublished).
			Return(entities.Testimonial{JobID: "job-1", Status: entities.TestimonialStatusPublished}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "job-1", string(entities.TestimonialStatusPublished))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.TestimonialStatusPublished {
			t.Fatalf("expected published, got %s", updated.Status)
		}
	})

	t.Run("missing testimonial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "job-9", entities.TestimonialStatusDraft).
			Return(entities.Testimonial{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "job-9", string(entities.TestimonialStatusDraft))
		if !errors.Is(err, ErrTestimonialNotFound) {
			t.Fatalf("expected ErrTestimonialNotFound, got %v", err)
		}
	})
}

func TestTestimonialUseCase_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
	uc := NewTestimonialUseCase(repo, nil)

	repo.EXPECT().MarkRead(gomock.Any(), "job-1").
		Return(entities.Testimonial{JobID: "job-1", IsRead: true}, nil)

	updated, err := uc.MarkRead(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsRead {
		t.Fatal("expected read flag")
	}
}
