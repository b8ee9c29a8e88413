package family

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is a member's role within a plan.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleChild  Role = "child"
	RoleGuest  Role = "guest"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleMember, RoleChild, RoleGuest:
		return true
	}

	return false
}

// WalletOp is a shared-wallet mutation direction.
type WalletOp string

const (
	WalletAdd      WalletOp = "add"
	WalletSubtract WalletOp = "subtract"
)

// Plan is a family's shared coordination unit. Plans are soft-deleted via
// Active and never removed.
type Plan struct {
	ID             uuid.UUID
	Name           string
	PrimaryHolder  string
	BillingAccount string
	MaxMembers     int
	Tier           string
	SharedBalance  decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Member is a user's role-scoped membership in a plan. At most one active
// membership exists per (plan, user) pair.
type Member struct {
	ID          uuid.UUID
	PlanID      uuid.UUID
	UserID      string
	Role        Role
	DisplayName string
	Active      bool
	JoinedAt    time.Time
}
