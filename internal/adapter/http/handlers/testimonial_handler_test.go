package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homefix_api/internal/adapter/http/handlers/mocks"
	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTestimonialHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		r := gin.New()
		r.POST("/v1/testimonials", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.Testimonial{}, usecase.ErrTestimonialExists)

		r := gin.New()
		r.POST("/v1/testimonials", h.Submit)

		payload := `{"jobID":"job-1","rating":5,"message":"great"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "already submitted feedback" {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("incomplete job maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.Testimonial{}, usecase.ErrJobOrderNotCompleted)

		r := gin.New()
		r.POST("/v1/testimonials", h.Submit)

		payload := `{"jobID":"job-1","rating":5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.SubmitTestimonialInput) (entities.Testimonial, error) {
				if in.JobID != "job-1" || in.Rating != 5 {
					t.Fatalf("payload not bound: %+v", in)
				}
				return entities.Testimonial{JobID: "job-1", Rating: 5, Status: entities.TestimonialStatusDraft}, nil
			})

		r := gin.New()
		r.POST("/v1/testimonials", h.Submit)

		payload := `{"jobID":"job-1","rating":5,"message":"great"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestTestimonialHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestimonialUseCase(ctrl)
	h := NewTestimonialHandler(uc)

	uc.EXPECT().UpdateStatus(gomock.Any(), "job-1", "Published").
		Return(entities.Testimonial{JobID: "job-1", Status: entities.TestimonialStatusPublished}, nil)

	r := gin.New()
	r.PATCH("/v1/testimonials/:id/status", h.UpdateStatus)

	req := httptest.NewRequest(http.MethodPatch, "/v1/testimonials/job-1/status", strings.NewReader(`{"status":"Published"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTestimonialHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestimonialUseCase(ctrl)
	h := NewTestimonialHandler(uc)

	uc.EXPECT().MarkRead(gomock.Any(), "job-9").
		Return(entities.Testimonial{}, usecase.ErrTestimonialNotFound)

	r := gin.New()
	r.PATCH("/v1/testimonials/:id/read", h.MarkRead)

	req := httptest.NewRequest(http.MethodPatch, "/v1/testimonials/job-9/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
