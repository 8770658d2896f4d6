package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "approvals/internal/errors"
	"approvals/internal/services"
)

// AdminHandler serves the admin review queue and decisions.
type AdminHandler struct {
	requestService services.RequestServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(requestService services.RequestServicer) *AdminHandler {
	return &AdminHandler{requestService: requestService}
}

// ApproveRequestRequest is the optional body of an approval
type ApproveRequestRequest struct {
	Reason string `json:"reason" binding:"max=500" example:"Room is free"`
}

// RejectRequestRequest is the body of a rejection
type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required,notblank,min=5,max=500" example:"Insufficient justification"`
}

// ListOpenRequests handles the admin review queue
// @Summary     List open requests
// @Description List all PENDING or ESCALATED requests, newest first. The total is returned in X-Total-Count.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {array}  models.Request "Open requests"
// @Header      200 {integer} X-Total-Count "Total open requests"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Router      /admin/requests [get]
func (h *AdminHandler) ListOpenRequests(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.requestService.ListOpen(c.Request.Context(), principal, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithPage(c, result)
}

// ApproveRequest handles an admin approval
// @Summary     Approve a request
// @Description Approve a PENDING or ESCALATED request. The reason is optional.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true  "Request ID"
// @Param       request body ApproveRequestRequest  false "Approval reason"
// @Success     200 {object} models.Request "Approved request"
// @Failure     400 {object} ErrorResponse "Request is not open"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Request not found"
// @Router      /admin/requests/{id}/approve [put]
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ApproveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.requestService.Approve(c.Request.Context(), principal, c.Param("id"), req.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RejectRequest handles an admin rejection
// @Summary     Reject a request
// @Description Reject a PENDING or ESCALATED request with a reason of at least 5 characters.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Request ID"
// @Param       request body RejectRequestRequest true "Rejection reason"
// @Success     200 {object} models.Request "Rejected request"
// @Failure     400 {object} ErrorResponse "Invalid reason or request is not open"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Request not found"
// @Router      /admin/requests/{id}/reject [put]
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.requestService.Reject(c.Request.Context(), principal, c.Param("id"), req.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
