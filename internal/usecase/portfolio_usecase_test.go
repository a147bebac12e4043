package usecase

import (
	"context"
	"errors"
	"testing"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase/interfaces"
	mock_interfaces "homefix_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPortfolioUseCase_Create(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		uc := NewPortfolioUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePortfolioInput{ImageFile: []byte("img")})
		if !errors.Is(err, ErrPortfolioTitleEmpty) {
			t.Fatalf("expected ErrPortfolioTitleEmpty, got %v", err)
		}
	})

	t.Run("image required", func(t *testing.T) {
		uc := NewPortfolioUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePortfolioInput{Title: "Kitchen remodel"})
		if !errors.Is(err, ErrPortfolioImageReq) {
			t.Fatalf("expected ErrPortfolioImageReq, got %v", err)
		}
	})

	t.Run("missing upload gateway is rejected", func(t *testing.T) {
		uc := NewPortfolioUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePortfolioInput{
			Title:     "Kitchen remodel",
			ImageFile: []byte("img"),
		})
		if !errors.Is(err, ErrUploadsNotConfigured) {
			t.Fatalf("expected ErrUploadsNotConfigured, got %v", err)
		}
	})

	t.Run("upload failure aborts before any insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadGateway(ctrl)
		uc := NewPortfolioUseCase(repo, uploads)

		uploads.EXPECT().UploadImage(gomock.Any(), []byte("img"), "before.jpg").
			Return(interfaces.UploadResult{}, errors.New("s3 down"))

		_, err := uc.Create(context.Background(), CreatePortfolioInput{
			Title:         "Kitchen remodel",
			ImageFile:     []byte("img"),
			ImageFilename: "before.jpg",
		})
		if err == nil || err.Error() != "s3 down" {
			t.Fatalf("expected s3 down error, got %v", err)
		}
	})

	t.Run("insert failure cleans up the uploaded image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadGateway(ctrl)
		uc := NewPortfolioUseCase(repo, uploads)

		uploads.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.UploadResult{URL: "https://files/a.jpg", PublicKey: "img-key"}, nil)
		repo.EXPECT().CreateWithSequence(gomock.Any(), gomock.Any()).
			Return(entities.Portfolio{}, errors.New("transaction cancelled"))
		uploads.EXPECT().DeleteByKey(gomock.Any(), "img-key").Return(nil)

		_, err := uc.Create(context.Background(), CreatePortfolioInput{
			Title:     "Kitchen remodel",
			ImageFile: []byte("img"),
		})
		if err == nil || err.Error() != "transaction cancelled" {
			t.Fatalf("expected transaction error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadGateway(ctrl)
		uc := NewPortfolioUseCase(repo, uploads)

		uploads.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.UploadResult{URL: "https://files/a.jpg", PublicKey: "img-key"}, nil)
		repo.EXPECT().CreateWithSequence(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Portfolio) (entities.Portfolio, error) {
				p.PortfolioID = "PF0000003"
				return p, nil
			})

		created, err := uc.Create(context.Background(), CreatePortfolioInput{
			Title:       "  Kitchen remodel  ",
			Description: "before and after",
			ImageFile:   []byte("img"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Kitchen remodel" {
			t.Fatalf("title not trimmed: %q", created.Title)
		}
		if created.PortfolioID != "PF0000003" {
			t.Fatalf("expected allocated portfolio id, got %q", created.PortfolioID)
		}
		if created.ImageURL != "https://files/a.jpg" {
			t.Fatalf("image url not recorded: %q", created.ImageURL)
		}
	})
}

func TestPortfolioUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		uc := NewPortfolioUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Portfolio{}, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrPortfolioNotFound) {
			t.Fatalf("expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("image cleanup failure does not block delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPortfolioRepository(ctrl)
		uploads := mock_interfaces.NewMockIUploadGateway(ctrl)
		uc := NewPortfolioUseCase(repo, uploads)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Portfolio{ID: "p-1", ImagePublicKey: "img-key"}, nil)
		uploads.EXPECT().DeleteByKey(gomock.Any(), "img-key").Return(errors.New("gone"))
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", "desc")
		if !errors.Is(err, ErrServiceNameEmpty) {
			t.Fatalf("expected ErrServiceNameEmpty, got %v", err)
		}
	})

	t.Run("allocation failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		counters := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewServiceUseCase(repo, counters)

		counters.EXPECT().NextSequence(gomock.Any(), entities.CounterFieldService).
			Return(int64(0), errors.New("throttled"))

		_, err := uc.Create(context.Background(), "Roofing", "")
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("create success formats the service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		counters := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewServiceUseCase(repo, counters)

		counters.EXPECT().NextSequence(gomock.Any(), entities.CounterFieldService).Return(int64(12), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				return s, nil
			})

		created, err := uc.Create(context.Background(), "Roofing", "shingle and flat roofs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ServiceID != "S0000012" {
			t.Fatalf("expected S0000012, got %s", created.ServiceID)
		}
	})
}
