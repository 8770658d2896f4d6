package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "approvals/internal/errors"
	"approvals/internal/models"
	"approvals/internal/services"
)

// RequestHandler serves the requester-facing request endpoints.
type RequestHandler struct {
	requestService services.RequestServicer
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requestService services.RequestServicer) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequestRequest represents the request payload for submitting a request
type CreateRequestRequest struct {
	Title       string             `json:"title" binding:"required,notblank,min=3,max=200" example:"Book room 4B"`
	Description string             `json:"description" binding:"required,notblank,min=10" example:"Team meeting Thursday afternoon"`
	RequestType models.RequestType `json:"request_type" binding:"required,request_type" example:"room_booking"`
}

// CreateRequest handles a new submission
// @Summary     Submit a request
// @Description Classify and store a request. Low risk requests are approved immediately; others are escalated for admin review.
// @Tags        requests
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRequestRequest true "Request details"
// @Success     201 {object} models.Request "Request created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, err := h.requestService.Create(c.Request.Context(), principal, services.CreateRequestInput{
		Title:       req.Title,
		Description: req.Description,
		RequestType: req.RequestType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListRequests handles listing the caller's own requests
// @Summary     List own requests
// @Description List requests submitted by the authenticated user, newest first. The total is returned in X-Total-Count.
// @Tags        requests
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {array}  models.Request "Requests"
// @Header      200 {integer} X-Total-Count "Total matching requests"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
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

	result, err := h.requestService.ListOwn(c.Request.Context(), principal, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithPage(c, result)
}

// GetRequest handles fetching a single request
// @Summary     Get a request
// @Description Get one request. Only its requester or an admin may read it.
// @Tags        requests
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Request ID"
// @Success     200 {object} models.Request "Request"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the requester"
// @Failure     404 {object} ErrorResponse "Request not found"
// @Router      /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, err := h.requestService.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}
