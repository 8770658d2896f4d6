package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "approvals/internal/errors"
	"approvals/internal/logger"
	"approvals/internal/middleware"
	"approvals/internal/models"
	"approvals/internal/pagination"
)

// totalCountHeader carries the unpaged row count of list responses.
const totalCountHeader = "X-Total-Count"

// getPrincipal returns the principal set by the auth middleware.
// Returns ErrUnauthorized if not present.
func getPrincipal(c *gin.Context) (*models.Principal, error) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return principal, nil
}

// bindPage parses the page and page_size query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return page, nil
}

// respondWithPage writes the page items as a bare JSON array and the total
// in X-Total-Count.
func respondWithPage[T any](c *gin.Context, page pagination.Page[T]) {
	c.Header(totalCountHeader, strconv.FormatInt(page.Total, 10))
	c.JSON(http.StatusOK, page.Items)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
