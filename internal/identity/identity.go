// Package identity turns bearer credentials into principals. Tokens are
// minted by an external identity provider and signed with a shared HS256
// secret; this package only verifies them and resolves the subject's role.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	apperrors "approvals/internal/errors"
	"approvals/internal/logger"
	"approvals/internal/metrics"
	"approvals/internal/models"
	"approvals/internal/uuid"
)

// Verifier resolves a bearer credential to a principal.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*models.Principal, error)
}

// Claims are the token claims this service reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Provider verifies HS256 tokens and looks up roles in the profiles table.
type Provider struct {
	db     *gorm.DB
	secret []byte
	issuer string
}

// NewProvider creates a Provider. An empty issuer accepts any iss claim.
func NewProvider(db *gorm.DB, secret, issuer string) *Provider {
	return &Provider{db: db, secret: []byte(secret), issuer: issuer}
}

var _ Verifier = (*Provider)(nil)

// Verify validates credential and assembles the principal. A subject with no
// profile row is an ordinary user.
func (p *Provider) Verify(ctx context.Context, credential string) (*models.Principal, error) {
	claims, err := p.parse(credential)
	if err != nil {
		metrics.IdentityFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}

	principal := &models.Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  models.RoleUser,
	}

	var profile models.Profile
	err = p.db.WithContext(ctx).Where("id = ?", claims.Subject).Take(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return principal, nil
	case err != nil:
		metrics.IdentityFailuresTotal.WithLabelValues("profile_lookup").Inc()
		logger.Named("identity").Errorw("profile lookup failed",
			"error", err,
			"subject", claims.Subject,
		)
		return nil, apperrors.Wrap(apperrors.ErrIdentityUnavailable, err)
	}

	if profile.Role != "" {
		principal.Role = profile.Role
	}
	principal.FullName = profile.FullName
	if principal.Email == "" {
		principal.Email = profile.Email
	}
	return principal, nil
}

func (p *Provider) parse(credential string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if !uuid.IsValid(claims.Subject) {
		return nil, errors.New("token subject is not a UUID")
	}
	return claims, nil
}

// Issue signs a token for subject. It exists for development tooling and
// tests; production tokens come from the external provider.
func Issue(secret, issuer, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
