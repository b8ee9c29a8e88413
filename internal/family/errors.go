package family

import "errors"

var (
	ErrPlanNotFound   = errors.New("family plan not found")
	ErrMemberNotFound = errors.New("family member not found")

	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidOperation = errors.New("operation must be add or subtract")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidInput     = errors.New("missing required field")

	ErrInsufficientFunds       = errors.New("insufficient shared wallet balance")
	ErrInsufficientPermissions = errors.New("caller may not perform this action")

	// ErrLastAdministrator guards the invariant that every active plan
	// keeps at least one active admin.
	ErrLastAdministrator = errors.New("cannot remove the last administrator")

	ErrNotAMember     = errors.New("target user is not an active member")
	ErrAlreadyAMember = errors.New("user is already an active member")
	ErrPlanFull       = errors.New("plan has reached its member limit")

	// ErrBalanceConflict means the balance changed under a concurrent
	// update and the bounded retries were exhausted.
	ErrBalanceConflict = errors.New("wallet balance changed concurrently")
)
