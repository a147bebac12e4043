package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
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

func TestPortfolioHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("multipart fields and image forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortfolioUseCase(ctrl)
		h := NewPortfolioHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreatePortfolioInput) (entities.Portfolio, error) {
				if in.Title != "Kitchen remodel" {
					t.Fatalf("title not bound: %q", in.Title)
				}
				if string(in.ImageFile) != "jpeg-bytes" || in.ImageFilename != "after.jpg" {
					t.Fatalf("image not forwarded: %q %q", in.ImageFile, in.ImageFilename)
				}
				return entities.Portfolio{ID: "p-1", PortfolioID: "PF0000001", Title: in.Title}, nil
			})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("title", "Kitchen remodel")
		_ = mw.WriteField("description", "before and after")
		fw, _ := mw.CreateFormFile("image", "after.jpg")
		_, _ = fw.Write([]byte("jpeg-bytes"))
		_ = mw.Close()

		r := gin.New()
		r.POST("/v1/portfolio", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/portfolio", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing image maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortfolioUseCase(ctrl)
		h := NewPortfolioHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Portfolio{}, usecase.ErrPortfolioImageReq)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("title", "Kitchen remodel")
		_ = mw.Close()

		r := gin.New()
		r.POST("/v1/portfolio", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/portfolio", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPortfolioUseCase(ctrl)
	h := NewPortfolioHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrPortfolioNotFound)

	r := gin.New()
	r.DELETE("/v1/portfolio/:id", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/v1/portfolio/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestServiceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", strings.NewReader(`{"description":"no name"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "Roofing", "shingle and flat roofs").
			Return(entities.Service{ID: "s-1", ServiceID: "S0000001", Name: "Roofing"}, nil)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		payload := `{"name":"Roofing","description":"shingle and flat roofs"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestServiceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s-1", Name: "Roofing"}}, nil)

	r := gin.New()
	r.GET("/v1/services", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
}
