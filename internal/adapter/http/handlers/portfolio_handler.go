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

var errInvalidPortfolioPayload = pkg.NewDomainErrorSimple("INVALID_PORTFOLIO_INPUT", "Invalid portfolio payload", http.StatusBadRequest)

// PortfolioHandler handles HTTP requests for the showcase portfolio.

type PortfolioHandler struct {
	usecase usecase.IPortfolioUseCase
}

func NewPortfolioHandler(uc usecase.IPortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{usecase: uc}
}

// Create reads the multipart form fields plus the showcase image.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var payload request.PortfolioCreateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidPortfolioPayload.HTTPStatus, errInvalidPortfolioPayload.ToHTTPError())
		return
	}

	image, filename, err := readFormFile(c, "image")
	if err != nil {
		c.JSON(errInvalidPortfolioPayload.HTTPStatus, errInvalidPortfolioPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePortfolioInput{
		Title:         payload.Title,
		Description:   payload.Description,
		ImageFile:     image,
		ImageFilename: filename,
	})
	if err != nil {
		appErr := mapPortfolioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromPortfolio(created)))
}

func (h *PortfolioHandler) List(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPortfolioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPortfolios(entries)))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPortfolioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}

func mapPortfolioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPortfolioTitleEmpty),
		errors.Is(err, usecase.ErrPortfolioImageReq),
		errors.Is(err, usecase.ErrInvalidPortfolioID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploadsNotConfigured):
		return pkg.NewDomainErrorSimple("UPLOADS_NOT_CONFIGURED", err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPortfolioNotFound):
		return pkg.NewDomainErrorSimple("PORTFOLIO_NOT_FOUND", "Portfolio entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
