package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pantrypay/internal/database"
	"pantrypay/internal/family"
)

type Store struct {
	db    *sql.DB
	hooks []database.Hook
}

func New(db *sql.DB, hooks ...database.Hook) *Store {
	return &Store{db: db, hooks: hooks}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPlanColumns = `
	id, name, primary_holder, billing_account, max_members, tier,
	shared_balance, active, created_at, updated_at
`

func scanPlan(s scanner) (*family.Plan, error) {
	var p family.Plan

	if err := s.Scan(
		&p.ID, &p.Name, &p.PrimaryHolder, &p.BillingAccount, &p.MaxMembers, &p.Tier,
		&p.SharedBalance, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

const selectMemberColumns = `
	id, plan_id, user_id, role, display_name, active, joined_at
`

func scanMember(s scanner) (*family.Member, error) {
	var m family.Member

	var roleStr string

	if err := s.Scan(
		&m.ID, &m.PlanID, &m.UserID, &roleStr, &m.DisplayName, &m.Active, &m.JoinedAt,
	); err != nil {
		return nil, err
	}

	m.Role = family.Role(roleStr)

	return &m, nil
}

// CreatePlan inserts the plan and its creator membership atomically.
func (s *Store) CreatePlan(ctx context.Context, plan *family.Plan, creator *family.Member) error {
	return database.Observe(ctx, s.hooks, "family_plans.create", func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning plan tx: %w", err)
		}
		defer tx.Rollback()

		err = tx.QueryRowContext(ctx, `
			INSERT INTO family_plans (name, primary_holder, billing_account, max_members, tier, shared_balance, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`,
			plan.Name, plan.PrimaryHolder, plan.BillingAccount,
			plan.MaxMembers, plan.Tier, plan.SharedBalance, plan.Active,
		).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating plan: %w", err)
		}

		creator.PlanID = plan.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO family_members (plan_id, user_id, role, display_name, active, joined_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			RETURNING id, joined_at
		`,
			creator.PlanID, creator.UserID, creator.Role, creator.DisplayName, creator.Active,
		).Scan(&creator.ID, &creator.JoinedAt)
		if err != nil {
			return fmt.Errorf("creating plan creator member: %w", err)
		}

		return tx.Commit()
	})
}

func (s *Store) GetPlan(ctx context.Context, planID uuid.UUID) (*family.Plan, error) {
	var plan *family.Plan

	err := database.Observe(ctx, s.hooks, "family_plans.get", func(ctx context.Context) error {
		query := `SELECT ` + selectPlanColumns + ` FROM family_plans WHERE id = $1`

		var err error

		plan, err = scanPlan(s.db.QueryRowContext(ctx, query, planID))
		if err != nil {
			if err == sql.ErrNoRows {
				return family.ErrPlanNotFound
			}

			return fmt.Errorf("getting plan: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *Store) GetActiveMember(ctx context.Context, planID uuid.UUID, userID string) (*family.Member, error) {
	var member *family.Member

	err := database.Observe(ctx, s.hooks, "family_members.get_active", func(ctx context.Context) error {
		query := `SELECT ` + selectMemberColumns + `
			FROM family_members
			WHERE plan_id = $1 AND user_id = $2 AND active`

		var err error

		member, err = scanMember(s.db.QueryRowContext(ctx, query, planID, userID))
		if err != nil {
			if err == sql.ErrNoRows {
				return family.ErrMemberNotFound
			}

			return fmt.Errorf("getting member: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *Store) ListActiveMembers(ctx context.Context, planID uuid.UUID) ([]family.Member, error) {
	var members []family.Member

	err := database.Observe(ctx, s.hooks, "family_members.list", func(ctx context.Context) error {
		query := `SELECT ` + selectMemberColumns + `
			FROM family_members
			WHERE plan_id = $1 AND active
			ORDER BY joined_at`

		rows, err := s.db.QueryContext(ctx, query, planID)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			m, err := scanMember(rows)
			if err != nil {
				return fmt.Errorf("scanning member: %w", err)
			}

			members = append(members, *m)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

// CompareAndSwapBalance is the optimistic write behind the wallet ledger:
// it only lands if the balance is still what the service read.
func (s *Store) CompareAndSwapBalance(ctx context.Context, planID uuid.UUID, oldBalance, newBalance decimal.Decimal) error {
	return database.Observe(ctx, s.hooks, "family_plans.cas_balance", func(ctx context.Context) error {
		query := `
			UPDATE family_plans
			SET shared_balance = $3, updated_at = NOW()
			WHERE id = $1 AND active AND shared_balance = $2
		`

		res, err := s.db.ExecContext(ctx, query, planID, oldBalance, newBalance)
		if err != nil {
			return fmt.Errorf("updating balance: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking balance update: %w", err)
		}

		if affected == 0 {
			return family.ErrBalanceConflict
		}

		return nil
	})
}

type memberTx struct {
	tx   *sql.Tx
	plan *family.Plan
}

// BeginMemberChange locks the plan row for the duration of the
// transaction, serializing member mutations per plan so the admin count
// read inside cannot race a concurrent removal.
func (s *Store) BeginMemberChange(ctx context.Context, planID uuid.UUID) (family.MemberTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning member tx: %w", err)
	}

	query := `SELECT ` + selectPlanColumns + ` FROM family_plans WHERE id = $1 FOR UPDATE`

	plan, err := scanPlan(tx.QueryRowContext(ctx, query, planID))
	if err != nil {
		tx.Rollback()

		if err == sql.ErrNoRows {
			return nil, family.ErrPlanNotFound
		}

		return nil, fmt.Errorf("locking plan: %w", err)
	}

	return &memberTx{tx: tx, plan: plan}, nil
}

func (m *memberTx) Plan() *family.Plan { return m.plan }
func (m *memberTx) Commit() error      { return m.tx.Commit() }
func (m *memberTx) Rollback() error    { return m.tx.Rollback() }

func (m *memberTx) GetMember(ctx context.Context, memberID uuid.UUID) (*family.Member, error) {
	query := `SELECT ` + selectMemberColumns + ` FROM family_members WHERE id = $1`

	member, err := scanMember(m.tx.QueryRowContext(ctx, query, memberID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, family.ErrMemberNotFound
		}

		return nil, fmt.Errorf("getting member: %w", err)
	}

	return member, nil
}

func (m *memberTx) GetActiveMemberByUser(ctx context.Context, userID string) (*family.Member, error) {
	query := `SELECT ` + selectMemberColumns + `
		FROM family_members
		WHERE plan_id = $1 AND user_id = $2 AND active`

	member, err := scanMember(m.tx.QueryRowContext(ctx, query, m.plan.ID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, family.ErrMemberNotFound
		}

		return nil, fmt.Errorf("getting member: %w", err)
	}

	return member, nil
}

func (m *memberTx) CountActiveMembers(ctx context.Context) (int, error) {
	var count int

	err := m.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM family_members WHERE plan_id = $1 AND active`,
		m.plan.ID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting members: %w", err)
	}

	return count, nil
}

func (m *memberTx) CountActiveAdmins(ctx context.Context) (int, error) {
	var count int

	err := m.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM family_members WHERE plan_id = $1 AND active AND role = $2`,
		m.plan.ID, family.RoleAdmin,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}

	return count, nil
}

func (m *memberTx) AddMember(ctx context.Context, member *family.Member) error {
	err := m.tx.QueryRowContext(ctx, `
		INSERT INTO family_members (plan_id, user_id, role, display_name, active, joined_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, joined_at
	`,
		member.PlanID, member.UserID, member.Role, member.DisplayName, member.Active,
	).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}

	return nil
}

func (m *memberTx) DeactivateMember(ctx context.Context, memberID uuid.UUID) error {
	res, err := m.tx.ExecContext(ctx,
		`UPDATE family_members SET active = FALSE WHERE id = $1 AND active`,
		memberID,
	)
	if err != nil {
		return fmt.Errorf("deactivating member: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking member deactivation: %w", err)
	}

	if affected == 0 {
		return family.ErrMemberNotFound
	}

	return nil
}

func (m *memberTx) SetMemberRole(ctx context.Context, memberID uuid.UUID, role family.Role) error {
	res, err := m.tx.ExecContext(ctx,
		`UPDATE family_members SET role = $2 WHERE id = $1 AND active`,
		memberID, role,
	)
	if err != nil {
		return fmt.Errorf("setting member role: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking role update: %w", err)
	}

	if affected == 0 {
		return family.ErrMemberNotFound
	}

	return nil
}

func (m *memberTx) SetPrimaryHolder(ctx context.Context, userID string) error {
	if _, err := m.tx.ExecContext(ctx,
		`UPDATE family_plans SET primary_holder = $2, updated_at = NOW() WHERE id = $1`,
		m.plan.ID, userID,
	); err != nil {
		return fmt.Errorf("setting primary holder: %w", err)
	}

	m.plan.PrimaryHolder = userID

	return nil
}
