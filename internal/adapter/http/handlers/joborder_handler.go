package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "homefix_api/internal/adapter/http/dto/request"
	response "homefix_api/internal/adapter/http/dto/response"
	"homefix_api/internal/usecase"
	"homefix_api/internal/usecase/interfaces"
	"homefix_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobOrderPayload = pkg.NewDomainErrorSimple("INVALID_JOB_ORDER_INPUT", "Invalid job order payload", http.StatusBadRequest)

// JobOrderHandler handles HTTP requests for the job-order lifecycle.

type JobOrderHandler struct {
	usecase usecase.IJobOrderUseCase
}

func NewJobOrderHandler(uc usecase.IJobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{usecase: uc}
}

// Create handles the file-bearing intake endpoint (multipart form with an
// optional quotation document).
func (h *JobOrderHandler) Create(c *gin.Context) {
	var payload request.JobOrderCreateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	file, filename, err := readFormFile(c, "jobQuotation")
	if err != nil {
		log.Printf("[joborder][handler] quotation file read failed err=%v", err)
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}
	in.QuotationFile = file
	in.QuotationFilename = filename

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromJobOrder(created)))
}

// CreateNoFile handles the JSON intake endpoint used by the public site.
func (h *JobOrderHandler) CreateNoFile(c *gin.Context) {
	var payload request.JobOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromJobOrder(created)))
}

func (h *JobOrderHandler) GetByID(c *gin.Context) {
	jobOrder, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(jobOrder)))
}

// List returns all job orders with operator references resolved to display
// names. Supports ?status= and ?archived= query filters.
func (h *JobOrderHandler) List(c *gin.Context) {
	filter := interfaces.JobOrderFilter{Status: c.Query("status")}
	if v := c.Query("archived"); v != "" {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
			return
		}
		filter.Archived = &archived
	}

	views, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrderViews(views)))
}

// Update is the general update endpoint. A jobStatus in the payload that
// differs from the stored one drives a lifecycle transition with its side
// effects (quotation upload, date stamping, notification email).
func (h *JobOrderHandler) Update(c *gin.Context) {
	var payload request.JobOrderUpdateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	file, filename, err := readFormFile(c, "jobQuotation")
	if err != nil {
		log.Printf("[joborder][handler] quotation file read failed err=%v", err)
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}
	in.QuotationFile = file
	in.QuotationFilename = filename

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(updated)))
}

// UpdateQuotation replaces the quotation file only.
func (h *JobOrderHandler) UpdateQuotation(c *gin.Context) {
	file, filename, err := readFormFile(c, "jobQuotation")
	if err != nil {
		log.Printf("[joborder][handler] quotation file read failed err=%v", err)
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateQuotation(c.Request.Context(), c.Param("id"), c.PostForm("updatedBy"), file, filename)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(updated)))
}

// UpdateInquiry updates the inquiry sub-state (pending/received).
func (h *JobOrderHandler) UpdateInquiry(c *gin.Context) {
	var payload request.JobOrderInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateInquiry(c.Request.Context(), c.Param("id"), payload.InquiryStatus, payload.UpdatedBy)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(updated)))
}

// Archive flags a terminal job order as archived.
func (h *JobOrderHandler) Archive(c *gin.Context) {
	// Body is optional; archiving only needs the acting operator when given.
	var payload request.JobOrderArchiveRequest
	_ = c.ShouldBindJSON(&payload)

	updated, err := h.usecase.Archive(c.Request.Context(), c.Param("id"), payload.UpdatedBy)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(updated)))
}

// SetNote sets/replaces the single free-text note.
func (h *JobOrderHandler) SetNote(c *gin.Context) {
	var payload request.JobOrderNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetNote(c.Request.Context(), c.Param("id"), payload.NoteType, payload.Operator, payload.JobNote)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromJobOrder(updated)))
}

// Delete hard-deletes a job order and cleans up its quotation file.
func (h *JobOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}

func mapJobOrderError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", vErr.Error(), http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID),
		errors.Is(err, usecase.ErrInvalidOperatorRef),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidInquiryStatus),
		errors.Is(err, usecase.ErrInvalidNoteType),
		errors.Is(err, usecase.ErrCancellationReason),
		errors.Is(err, usecase.ErrQuotationFileRequired),
		errors.Is(err, usecase.ErrInspectionDateRequired),
		errors.Is(err, usecase.ErrScheduleDatesRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrNotArchivable),
		errors.Is(err, usecase.ErrInquiryNotAcknowledged):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploadsNotConfigured):
		return pkg.NewDomainErrorSimple("UPLOADS_NOT_CONFIGURED", err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
