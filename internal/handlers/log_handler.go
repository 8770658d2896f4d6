package handlers

import (
	"github.com/gin-gonic/gin"

	"approvals/internal/policy"
	"approvals/internal/services"
)

// LogHandler serves the audit trail.
type LogHandler struct {
	auditService services.AuditServicer
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(auditService services.AuditServicer) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// ListLogs handles reading the audit trail
// @Summary     List audit entries
// @Description Admins see every entry; other users see entries for their own requests. Newest first, total in X-Total-Count.
// @Tags        logs
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {array}  models.AuditLog "Audit entries"
// @Header      200 {integer} X-Total-Count "Total visible entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scope, err := policy.AuditLogScope(principal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.auditService.List(c.Request.Context(), scope, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithPage(c, result)
}
