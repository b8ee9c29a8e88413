package family

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxMembers = 6
	defaultTier       = "standard"

	// walletRetryAttempts bounds the compare-and-swap loop on the shared
	// balance before giving up with ErrBalanceConflict.
	walletRetryAttempts = 3
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=family
type Repository interface {
	CreatePlan(ctx context.Context, plan *Plan, creator *Member) error
	GetPlan(ctx context.Context, planID uuid.UUID) (*Plan, error)
	GetActiveMember(ctx context.Context, planID uuid.UUID, userID string) (*Member, error)
	ListActiveMembers(ctx context.Context, planID uuid.UUID) ([]Member, error)

	// CompareAndSwapBalance sets the shared balance to newBalance only if
	// it still equals oldBalance, returning ErrBalanceConflict otherwise.
	CompareAndSwapBalance(ctx context.Context, planID uuid.UUID, oldBalance, newBalance decimal.Decimal) error

	// BeginMemberChange opens a transaction holding a row lock on the
	// plan, serializing member mutations against each other.
	BeginMemberChange(ctx context.Context, planID uuid.UUID) (MemberTx, error)
}

// MemberTx is a member-mutation transaction. The plan row is locked for
// its duration, so admin counts read inside it cannot go stale.
type MemberTx interface {
	Plan() *Plan
	GetMember(ctx context.Context, memberID uuid.UUID) (*Member, error)
	GetActiveMemberByUser(ctx context.Context, userID string) (*Member, error)
	CountActiveMembers(ctx context.Context) (int, error)
	CountActiveAdmins(ctx context.Context) (int, error)
	AddMember(ctx context.Context, member *Member) error
	DeactivateMember(ctx context.Context, memberID uuid.UUID) error
	SetMemberRole(ctx context.Context, memberID uuid.UUID, role Role) error
	SetPrimaryHolder(ctx context.Context, userID string) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreatePlanParams struct {
	Name       string
	Tier       string
	MaxMembers int
}

// CreatePlan creates a plan owned by userID, who becomes primary holder,
// billing account and the first active admin member.
func (s *Service) CreatePlan(ctx context.Context, userID string, params CreatePlanParams) (*Plan, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrInvalidInput)
	}

	tier := params.Tier
	if tier == "" {
		tier = defaultTier
	}

	maxMembers := params.MaxMembers
	if maxMembers <= 0 {
		maxMembers = defaultMaxMembers
	}

	plan := &Plan{
		Name:           name,
		PrimaryHolder:  userID,
		BillingAccount: userID,
		MaxMembers:     maxMembers,
		Tier:           tier,
		SharedBalance:  decimal.Zero,
		Active:         true,
	}

	creator := &Member{
		UserID: userID,
		Role:   RoleAdmin,
		Active: true,
	}

	if err := s.repo.CreatePlan(ctx, plan, creator); err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	return plan, nil
}

// GetPlan returns the plan and its active members. Any active member (or
// either holder) may read it.
func (s *Service) GetPlan(ctx context.Context, callerID string, planID uuid.UUID) (*Plan, []Member, error) {
	ok, err := s.Authorize(ctx, planID, callerID, RoleAdmin, RoleMember, RoleChild, RoleGuest)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, ErrInsufficientPermissions
	}

	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.ListActiveMembers(ctx, planID)
	if err != nil {
		return nil, nil, err
	}

	return plan, members, nil
}

// Authorize is the single predicate gating privileged plan actions. The
// primary holder and billing account always pass regardless of
// requiredRoles; anyone else needs an active membership whose role is in
// the required set. Unknown plans and unauthenticated callers never pass.
//
// Every privileged family operation must go through this check before
// mutating anything; there is deliberately no other authorization path.
func (s *Service) Authorize(ctx context.Context, planID uuid.UUID, userID string, requiredRoles ...Role) (bool, error) {
	if userID == "" {
		return false, nil
	}

	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return false, nil
		}

		return false, err
	}

	if !plan.Active {
		return false, nil
	}

	if plan.PrimaryHolder == userID || plan.BillingAccount == userID {
		return true, nil
	}

	member, err := s.repo.GetActiveMember(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return false, nil
		}

		return false, err
	}

	for _, role := range requiredRoles {
		if member.Role == role {
			return true, nil
		}
	}

	return false, nil
}

// UpdateSharedWallet adds or subtracts a positive amount from the plan's
// shared balance and returns the new balance. The balance never goes
// negative: a subtraction that would is rejected before any write.
//
// The read-modify-write is protected by a compare-and-swap on the
// previously read balance, retried a bounded number of times, so two
// concurrent debits cannot both observe the same starting balance and
// overdraw the wallet.
//
// The ledger trusts its caller: it performs no authorization itself. Any
// caller reachable from an end user must call Authorize first (the HTTP
// wallet handler does); internal flows such as top-up completion are
// trusted callers.
func (s *Service) UpdateSharedWallet(ctx context.Context, planID uuid.UUID, amount decimal.Decimal, op WalletOp) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	if op != WalletAdd && op != WalletSubtract {
		return decimal.Zero, ErrInvalidOperation
	}

	for attempt := 0; attempt < walletRetryAttempts; attempt++ {
		plan, err := s.repo.GetPlan(ctx, planID)
		if err != nil {
			return decimal.Zero, err
		}

		var newBalance decimal.Decimal
		if op == WalletAdd {
			newBalance = plan.SharedBalance.Add(amount)
		} else {
			newBalance = plan.SharedBalance.Sub(amount)
		}

		if newBalance.IsNegative() {
			return decimal.Zero, ErrInsufficientFunds
		}

		err = s.repo.CompareAndSwapBalance(ctx, planID, plan.SharedBalance, newBalance)
		if err != nil {
			if errors.Is(err, ErrBalanceConflict) {
				continue
			}

			return decimal.Zero, err
		}

		return newBalance, nil
	}

	return decimal.Zero, ErrBalanceConflict
}

type AddMemberParams struct {
	UserID      string
	DisplayName string
	Role        Role
}

// AddMember adds an active member to the plan. Admin-gated.
func (s *Service) AddMember(ctx context.Context, callerID string, planID uuid.UUID, params AddMemberParams) (*Member, error) {
	if params.UserID == "" {
		return nil, fmt.Errorf("%w: user_id", ErrInvalidInput)
	}

	if !ValidRole(params.Role) {
		return nil, ErrInvalidRole
	}

	ok, err := s.Authorize(ctx, planID, callerID, RoleAdmin)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrInsufficientPermissions
	}

	tx, err := s.repo.BeginMemberChange(ctx, planID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.GetActiveMemberByUser(ctx, params.UserID); err == nil {
		return nil, ErrAlreadyAMember
	} else if !errors.Is(err, ErrMemberNotFound) {
		return nil, err
	}

	count, err := tx.CountActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	if count >= tx.Plan().MaxMembers {
		return nil, ErrPlanFull
	}

	member := &Member{
		PlanID:      planID,
		UserID:      params.UserID,
		Role:        params.Role,
		DisplayName: params.DisplayName,
		Active:      true,
	}

	if err := tx.AddMember(ctx, member); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit member add: %w", err)
	}

	return member, nil
}

// RemoveMember soft-deletes a member. Admin-gated. Removing the last
// remaining active admin is refused; the count and the deactivation run
// under the same plan row lock, so two concurrent removals cannot strip
// a plan of its final admin.
func (s *Service) RemoveMember(ctx context.Context, callerID string, planID, memberID uuid.UUID) error {
	ok, err := s.Authorize(ctx, planID, callerID, RoleAdmin)
	if err != nil {
		return err
	}

	if !ok {
		return ErrInsufficientPermissions
	}

	tx, err := s.repo.BeginMemberChange(ctx, planID)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	member, err := tx.GetMember(ctx, memberID)
	if err != nil {
		return err
	}

	if !member.Active || member.PlanID != planID {
		return ErrMemberNotFound
	}

	if member.Role == RoleAdmin {
		admins, err := tx.CountActiveAdmins(ctx)
		if err != nil {
			return err
		}

		if admins <= 1 {
			return ErrLastAdministrator
		}
	}

	if err := tx.DeactivateMember(ctx, memberID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit member removal: %w", err)
	}

	return nil
}

// TransferOwnership reassigns the primary holder to an existing active
// member, promoting them to admin if needed. Admin-gated.
func (s *Service) TransferOwnership(ctx context.Context, callerID string, planID uuid.UUID, targetUserID string) error {
	if targetUserID == "" {
		return fmt.Errorf("%w: user_id", ErrInvalidInput)
	}

	ok, err := s.Authorize(ctx, planID, callerID, RoleAdmin)
	if err != nil {
		return err
	}

	if !ok {
		return ErrInsufficientPermissions
	}

	tx, err := s.repo.BeginMemberChange(ctx, planID)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	target, err := tx.GetActiveMemberByUser(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return ErrNotAMember
		}

		return err
	}

	if err := tx.SetPrimaryHolder(ctx, targetUserID); err != nil {
		return err
	}

	if target.Role != RoleAdmin {
		if err := tx.SetMemberRole(ctx, target.ID, RoleAdmin); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ownership transfer: %w", err)
	}

	return nil
}
