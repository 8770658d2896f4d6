package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "approvals/internal/errors"
	"approvals/internal/lifecycle"
	"approvals/internal/logger"
	"approvals/internal/metrics"
	"approvals/internal/models"
	"approvals/internal/pagination"
	"approvals/internal/policy"
	"approvals/internal/risk"
	"approvals/internal/uuid"
)

const (
	minTitleLength       = 3
	maxTitleLength       = 200
	minDescriptionLength = 10
)

// requestService handles the request lifecycle.
type requestService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewRequestService creates a new RequestServicer.
func NewRequestService(db *gorm.DB, audit AuditServicer) RequestServicer {
	return &requestService{db: db, audit: audit}
}

// Create classifies and stores a submission, then records SUBMITTED and the
// classification-driven action. Both audit writes finish before Create
// returns, but neither can fail it.
func (s *requestService) Create(ctx context.Context, principal *models.Principal, input CreateRequestInput) (*models.Request, error) {
	if err := policy.Authorize(principal, policy.CreateRequest, nil); err != nil {
		return nil, err
	}
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	classification := risk.Classify(input.Title, input.Description)
	outcome := lifecycle.Submit(classification)

	now := time.Now().UTC()
	req := &models.Request{
		Base:           models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:          input.Title,
		Description:    input.Description,
		RequestType:    input.RequestType,
		RequesterID:    principal.ID,
		RequesterEmail: principal.Email,
		Status:         outcome.Status,
		RiskLevel:      classification.Level,
		RiskScore:      classification.Score,
		RiskFactors:    classification.Factors,
		DecidedBy:      outcome.DecidedBy,
		DecisionReason: outcome.DecisionReason,
	}

	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(string(req.RiskLevel), string(req.Status)).Inc()

	s.audit.Record(ctx, AuditEntry{
		RequestID:       req.ID,
		Action:          models.ActionSubmitted,
		PerformedBy:     principal.Email,
		PerformedByRole: principal.Role,
		Details:         map[string]any{"request_type": string(req.RequestType)},
	})
	s.audit.Record(ctx, AuditEntry{
		RequestID:       req.ID,
		Action:          outcome.Action,
		PerformedBy:     principal.Email,
		PerformedByRole: principal.Role,
		Details: map[string]any{
			"risk_level":   string(classification.Level),
			"risk_score":   classification.Score,
			"risk_factors": classification.Factors,
		},
	})

	return req, nil
}

// ListOwn returns the principal's own requests, newest first.
func (s *requestService) ListOwn(ctx context.Context, principal *models.Principal, page pagination.PageRequest) (pagination.Page[models.Request], error) {
	if err := policy.Authorize(principal, policy.ListOwnRequests, nil); err != nil {
		return pagination.Page[models.Request]{}, err
	}
	return s.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("requester_id = ?", principal.ID)
	})
}

// Get returns one request if the principal owns it or is an admin.
func (s *requestService) Get(ctx context.Context, principal *models.Principal, requestID string) (*models.Request, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	req, err := s.fetch(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(principal, policy.GetRequest, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListOpen returns every PENDING or ESCALATED request, newest first.
func (s *requestService) ListOpen(ctx context.Context, principal *models.Principal, page pagination.PageRequest) (pagination.Page[models.Request], error) {
	if err := policy.Authorize(principal, policy.ListOpenRequests, nil); err != nil {
		return pagination.Page[models.Request]{}, err
	}
	return s.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("status IN ?", models.OpenStatuses)
	})
}

// Approve moves an open request to APPROVED. A blank reason is replaced by
// the default approval message.
func (s *requestService) Approve(ctx context.Context, principal *models.Principal, requestID, reason string) (*models.Request, error) {
	if err := policy.Authorize(principal, policy.ApproveRequest, nil); err != nil {
		return nil, err
	}
	return s.decide(ctx, principal, requestID, lifecycle.Approve(principal.Email, reason))
}

// Reject moves an open request to REJECTED with a mandatory reason.
func (s *requestService) Reject(ctx context.Context, principal *models.Principal, requestID, reason string) (*models.Request, error) {
	if err := policy.Authorize(principal, policy.RejectRequest, nil); err != nil {
		return nil, err
	}
	return s.decide(ctx, principal, requestID, lifecycle.Reject(principal.Email, reason))
}

// decide applies an admin decision. The update is conditional on the row
// still being open, so of two concurrent decisions only one can win; the
// loser gets ErrInvalidTransition as if it had read the terminal state.
func (s *requestService) decide(ctx context.Context, principal *models.Principal, requestID string, d lifecycle.Decision) (*models.Request, error) {
	req, err := s.fetch(ctx, requestID)
	if err != nil {
		return nil, err
	}

	outcome, err := lifecycle.Decide(req.Status, d)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if now.Before(req.UpdatedAt) {
		now = req.UpdatedAt
	}

	result := s.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ? AND status IN ?", req.ID, models.OpenStatuses).
		Updates(map[string]any{
			"status":          outcome.Status,
			"decided_by":      outcome.DecidedBy,
			"decision_reason": outcome.DecisionReason,
			"updated_at":      now,
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		metrics.DecisionConflictsTotal.Inc()
		logger.Named("requests").Warnw("decision lost to concurrent update",
			"request_id", req.ID,
			"admin", principal.Email,
		)
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransition, "Request was decided concurrently")
	}

	previous := req.Status
	req.Status = outcome.Status
	req.DecidedBy = outcome.DecidedBy
	req.DecisionReason = outcome.DecisionReason
	req.UpdatedAt = now

	metrics.DecisionsTotal.WithLabelValues(string(outcome.Status)).Inc()

	var givenReason any
	if strings.TrimSpace(d.Reason) != "" {
		givenReason = d.Reason
	}
	s.audit.Record(ctx, AuditEntry{
		RequestID:       req.ID,
		Action:          outcome.Action,
		PerformedBy:     principal.Email,
		PerformedByRole: principal.Role,
		Details: map[string]any{
			"reason":          givenReason,
			"previous_status": string(previous),
		},
	})

	return req, nil
}

// fetch loads a request by id. Ids that are not UUIDs cannot exist and are
// reported as not found without touching the store.
func (s *requestService) fetch(ctx context.Context, requestID string) (*models.Request, error) {
	if !uuid.IsValid(requestID) {
		return nil, apperrors.ErrRequestNotFound
	}

	var req models.Request
	if err := s.db.WithContext(ctx).Where("id = ?", requestID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &req, nil
}

func (s *requestService) list(ctx context.Context, page pagination.PageRequest, filter func(*gorm.DB) *gorm.DB) (pagination.Page[models.Request], error) {
	query := filter(s.db.WithContext(ctx).Model(&models.Request{})).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[models.Request]{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var requests []models.Request
	if err := query.Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&requests).Error; err != nil {
		return pagination.Page[models.Request]{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	return pagination.NewPage(requests, total), nil
}

func validateSubmission(input CreateRequestInput) error {
	title := strings.TrimSpace(input.Title)
	switch n := utf8.RuneCountInString(title); {
	case n < minTitleLength:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "title must be at least 3 characters")
	case n > maxTitleLength:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "title must be at most 200 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Description)) < minDescriptionLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at least 10 characters")
	}
	if !input.RequestType.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported request type")
	}
	return nil
}
