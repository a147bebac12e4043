package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"homefix_api/internal/adapter/http/handlers/mocks"
	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase"
	"homefix_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestJobOrderHandler_CreateNoFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/savenofile", h.CreateNoFile)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/savenofile", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing field surfaces the field name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.JobOrder{}, &usecase.ValidationError{Field: "clientAddress"})

		r := gin.New()
		r.POST("/v1/job-orders/savenofile", h.CreateNoFile)

		payload := `{"clientFirstName":"Maria","jobType":"renovation"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/savenofile", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false {
			t.Fatalf("expected success=false, got %v", body["success"])
		}
		if body["message"] != "clientAddress is required" {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateJobOrderInput) (entities.JobOrder, error) {
				if in.ClientFirstName != "Maria" || in.JobType != "renovation" {
					t.Fatalf("payload not bound: %+v", in)
				}
				return entities.JobOrder{ID: "job-1", ProjectID: "P0000001", JobStatus: "inquiry"}, nil
			})

		r := gin.New()
		r.POST("/v1/job-orders/savenofile", h.CreateNoFile)

		payload := `{"clientFirstName":"Maria","clientLastName":"Silva","clientAddress":"12 Oak Street","jobType":"renovation","jobServices":["painting"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/savenofile", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Fatalf("expected success envelope, got %v", body)
		}
	})

	t.Run("invalid inquiry date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/savenofile", h.CreateNoFile)

		payload := `{"clientFirstName":"Maria","inquiryDate":"yesterday"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/savenofile", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobOrderHandler_Create_Multipart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in usecase.CreateJobOrderInput) (entities.JobOrder, error) {
			if string(in.QuotationFile) != "pdf-bytes" {
				t.Fatalf("file not forwarded: %q", in.QuotationFile)
			}
			if in.QuotationFilename != "quote.pdf" {
				t.Fatalf("filename not forwarded: %q", in.QuotationFilename)
			}
			return entities.JobOrder{ID: "job-1"}, nil
		})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("clientFirstName", "Maria")
	_ = mw.WriteField("clientLastName", "Silva")
	_ = mw.WriteField("clientAddress", "12 Oak Street")
	_ = mw.WriteField("jobType", "renovation")
	_ = mw.WriteField("jobServices", "painting")
	fw, _ := mw.CreateFormFile("jobQuotation", "quote.pdf")
	_, _ = fw.Write([]byte("pdf-bytes"))
	_ = mw.Close()

	r := gin.New()
	r.POST("/v1/job-orders", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/v1/job-orders", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJobOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter interfaces.JobOrderFilter) ([]usecase.JobOrderView, error) {
				if filter.Status != "completed" {
					t.Fatalf("status filter not forwarded: %q", filter.Status)
				}
				if filter.Archived == nil || *filter.Archived {
					t.Fatalf("archived filter not forwarded: %v", filter.Archived)
				}
				return []usecase.JobOrderView{}, nil
			})

		r := gin.New()
		r.GET("/v1/job-orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders?status=completed&archived=false", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad archived value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders?archived=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.JobOrder{}, usecase.ErrJobOrderNotFound)

	r := gin.New()
	r.GET("/v1/job-orders/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/v1/job-orders/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestJobOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.JobOrder{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/job-orders/:id", h.Update)

		payload := `{"jobStatus":"completed"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != usecase.ErrInvalidTransition.Error() {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("internal error maps to 500 with generic message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.JobOrder{}, errors.New("dynamo exploded"))

		r := gin.New()
		r.PATCH("/v1/job-orders/:id", h.Update)

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] == "dynamo exploded" {
			t.Fatal("internal cause must not leak to the client")
		}
	})
}

func TestJobOrderHandler_UpdateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	uc.EXPECT().UpdateQuotation(gomock.Any(), "job-1", "", gomock.Nil(), "").
		Return(entities.JobOrder{}, usecase.ErrQuotationFileRequired)

	r := gin.New()
	r.PATCH("/v1/job-orders/:id/updateQuotation", h.UpdateQuotation)

	form := url.Values{}
	req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1/updateQuotation", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestJobOrderHandler_Update_StorageUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	uc.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).
		Return(entities.JobOrder{}, usecase.ErrUploadsNotConfigured)

	r := gin.New()
	r.PATCH("/v1/job-orders/:id", h.Update)

	req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1", strings.NewReader(`{"jobStatus":"in progress"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false || body["message"] == "" {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestJobOrderHandler_Archive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Archive(gomock.Any(), "job-1", "").
			Return(entities.JobOrder{ID: "job-1", IsArchived: true}, nil)

		r := gin.New()
		r.PATCH("/v1/job-orders/:id/archive", h.Archive)

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1/archive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("active order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		uc.EXPECT().Archive(gomock.Any(), "job-1", "").
			Return(entities.JobOrder{}, usecase.ErrNotArchivable)

		r := gin.New()
		r.PATCH("/v1/job-orders/:id/archive", h.Archive)

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/job-1/archive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobOrderHandler_SetNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	operator := "7ba7b811-9dad-11d1-80b4-00c04fd430c8"
	uc.EXPECT().SetNote(gomock.Any(), "job-1", usecase.NoteTypeUpdated, operator, "tiles arrived").
		Return(entities.JobOrder{ID: "job-1", JobNote: "tiles arrived"}, nil)

	r := gin.New()
	r.PATCH("/v1/job-orders/note/:id", h.SetNote)

	payload := `{"noteType":"updatedNote","jobNote":"tiles arrived","operator":"` + operator + `"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/job-orders/note/job-1", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestJobOrderHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobOrderUseCase(ctrl)
	h := NewJobOrderHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "job-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/job-orders/:id", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/v1/job-orders/job-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	if !ok || data["deleted"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}
