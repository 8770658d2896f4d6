package models

// Role is the authorization role of a principal.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the extended identity record that carries a subject's role.
// Rows are provisioned outside this service; it only reads them.
type Profile struct {
	Base
	Email    string  `gorm:"not null" json:"email"`
	FullName *string `json:"full_name"`
	Role     Role    `gorm:"size:16;not null;default:'user'" json:"role"`
}

// Principal is an authenticated actor, assembled once per request by the
// identity provider.
type Principal struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Role     Role    `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
