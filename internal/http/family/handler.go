package family

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pantrypay/internal/auth"
	"pantrypay/internal/family"
)

type Handler struct {
	svc *family.Service
}

func NewHandler(svc *family.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{planID}", h.get)
	r.Post("/{planID}/members", h.addMember)
	r.Delete("/{planID}/members/{memberID}", h.removeMember)
	r.Post("/{planID}/transfer", h.transfer)
	r.Post("/{planID}/wallet", h.updateWallet)
}

type createPlanRequest struct {
	Name       string `json:"name"`
	Tier       string `json:"tier,omitempty"`
	MaxMembers int    `json:"max_members,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.svc.CreatePlan(r.Context(), auth.UserID(r.Context()), family.CreatePlanParams{
		Name:       req.Name,
		Tier:       req.Tier,
		MaxMembers: req.MaxMembers,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPlanResponse(plan, nil)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	plan, members, err := h.svc.GetPlan(r.Context(), auth.UserID(r.Context()), planID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPlanResponse(plan, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addMemberRequest struct {
	UserID      string      `json:"user_id"`
	DisplayName string      `json:"display_name,omitempty"`
	Role        family.Role `json:"role"`
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	member, err := h.svc.AddMember(r.Context(), auth.UserID(r.Context()), planID, family.AddMemberParams{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toMemberResponse(member)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), auth.UserID(r.Context()), planID, memberID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type transferRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.TransferOwnership(r.Context(), auth.UserID(r.Context()), planID, req.UserID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type walletRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Operation family.WalletOp `json:"operation"`
}

type walletResponse struct {
	Success    bool            `json:"success"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// updateWallet is the member-facing wallet entry point and therefore the
// call site responsible for gating: the ledger itself trusts its caller.
func (h *Handler) updateWallet(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Children and guests cannot move funds.
	ok, err := h.svc.Authorize(r.Context(), planID, auth.UserID(r.Context()),
		family.RoleAdmin, family.RoleMember)
	if err != nil {
		writeError(w, err)
		return
	}

	if !ok {
		writeError(w, family.ErrInsufficientPermissions)
		return
	}

	balance, err := h.svc.UpdateSharedWallet(r.Context(), planID, req.Amount, req.Operation)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(walletResponse{Success: true, NewBalance: balance}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, family.ErrInvalidAmount),
		errors.Is(err, family.ErrInvalidOperation),
		errors.Is(err, family.ErrInvalidRole),
		errors.Is(err, family.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, family.ErrInsufficientPermissions):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, family.ErrPlanNotFound),
		errors.Is(err, family.ErrMemberNotFound),
		errors.Is(err, family.ErrNotAMember):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, family.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, family.ErrLastAdministrator),
		errors.Is(err, family.ErrAlreadyAMember),
		errors.Is(err, family.ErrPlanFull),
		errors.Is(err, family.ErrBalanceConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("family request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
