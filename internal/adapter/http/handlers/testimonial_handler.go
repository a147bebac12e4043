package handlers

import (
	"errors"
	"net/http"

	request "homefix_api/internal/adapter/http/dto/request"
	response "homefix_api/internal/adapter/http/dto/response"
	"homefix_api/internal/usecase"
	"homefix_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTestimonialPayload = pkg.NewDomainErrorSimple("INVALID_TESTIMONIAL_INPUT", "Invalid testimonial payload", http.StatusBadRequest)

// TestimonialHandler handles HTTP requests for post-completion feedback.

type TestimonialHandler struct {
	usecase usecase.ITestimonialUseCase
}

func NewTestimonialHandler(uc usecase.ITestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{usecase: uc}
}

// Submit handles the client-facing feedback form.
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var payload request.TestimonialSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitTestimonialInput{
		JobID:   payload.JobID,
		Rating:  payload.Rating,
		Message: payload.Message,
	})
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromTestimonial(created)))
}

func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromTestimonials(testimonials)))
}

// UpdateStatus toggles a testimonial between Draft and Published.
func (h *TestimonialHandler) UpdateStatus(c *gin.Context) {
	var payload request.TestimonialStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromTestimonial(updated)))
}

// MarkRead acknowledges a testimonial's notification.
func (h *TestimonialHandler) MarkRead(c *gin.Context) {
	updated, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromTestimonial(updated)))
}

func mapTestimonialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrInvalidTestimonialSt),
		errors.Is(err, usecase.ErrJobOrderNotCompleted):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTestimonialExists):
		return pkg.NewDomainErrorSimple("TESTIMONIAL_ALREADY_EXISTS", "already submitted feedback", http.StatusConflict)
	case errors.Is(err, usecase.ErrTestimonialNotFound):
		return pkg.NewDomainErrorSimple("TESTIMONIAL_NOT_FOUND", "Testimonial not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
