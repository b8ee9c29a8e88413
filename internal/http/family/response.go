package family

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pantrypay/internal/family"
)

type planResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	PrimaryHolder  string           `json:"primary_holder"`
	BillingAccount string           `json:"billing_account"`
	MaxMembers     int              `json:"max_members"`
	Tier           string           `json:"tier"`
	SharedBalance  decimal.Decimal  `json:"shared_balance"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
	Members        []memberResponse `json:"members,omitempty"`
}

type memberResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"user_id"`
	Role        family.Role `json:"role"`
	DisplayName string      `json:"display_name,omitempty"`
	JoinedAt    time.Time   `json:"joined_at"`
}

func toPlanResponse(plan *family.Plan, members []family.Member) planResponse {
	resp := planResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		PrimaryHolder:  plan.PrimaryHolder,
		BillingAccount: plan.BillingAccount,
		MaxMembers:     plan.MaxMembers,
		Tier:           plan.Tier,
		SharedBalance:  plan.SharedBalance,
		Active:         plan.Active,
		CreatedAt:      plan.CreatedAt,
	}

	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(&m))
	}

	return resp
}

func toMemberResponse(m *family.Member) memberResponse {
	return memberResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Role:        m.Role,
		DisplayName: m.DisplayName,
		JoinedAt:    m.JoinedAt,
	}
}
