package balance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/balance"
)

type Handler struct {
	svc *balance.Service
}

func NewHandler(svc *balance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/backfill", h.backfill)
	r.Post("/anchors", h.addAnchor)
	r.Get("/snapshots", h.snapshots)
}

type backfillRequest struct {
	AccountID     uuid.UUID `json:"account_id"`
	Days          int       `json:"days,omitempty"`
	DryRun        bool      `json:"dry_run,omitempty"`
	RequireAnchor bool      `json:"require_anchor,omitempty"`
}

type backfillResponse struct {
	AccountID      uuid.UUID          `json:"account_id"`
	Created        int                `json:"created"`
	SkippedAnchors int                `json:"skipped_anchors"`
	WindowStart    string             `json:"window_start,omitempty"`
	WindowEnd      string             `json:"window_end,omitempty"`
	DryRun         bool               `json:"dry_run,omitempty"`
	Snapshots      []snapshotResponse `json:"snapshots,omitempty"`
}

func (h *Handler) backfill(w http.ResponseWriter, r *http.Request) {
	var req backfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.AccountID == uuid.Nil {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Backfill(r.Context(), req.AccountID, balance.Options{
		Days:          req.Days,
		DryRun:        req.DryRun,
		RequireAnchor: req.RequireAnchor,
	})
	if err != nil {
		if errors.Is(err, balance.ErrNoAnchor) {
			http.Error(w, "account has no anchor snapshot", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := backfillResponse{
		AccountID:      result.AccountID,
		Created:        result.Created,
		SkippedAnchors: result.SkippedAnchors,
		DryRun:         result.DryRun,
	}

	if !result.WindowStart.IsZero() {
		resp.WindowStart = result.WindowStart.Format(time.DateOnly)
		resp.WindowEnd = result.WindowEnd.Format(time.DateOnly)
	}

	if result.DryRun {
		resp.Snapshots = toSnapshotList(result.Snapshots)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addAnchorRequest struct {
	AccountID uuid.UUID       `json:"account_id"`
	Date      string          `json:"date"`
	Balance   decimal.Decimal `json:"balance"`
}

func (h *Handler) addAnchor(w http.ResponseWriter, r *http.Request) {
	var req addAnchorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	snap, err := h.svc.AddAnchor(r.Context(), req.AccountID, date, req.Balance)
	if err != nil {
		if errors.Is(err, balance.ErrDuplicateAnchor) {
			http.Error(w, "identical anchor already exists", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSnapshot(snap)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) snapshots(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	snaps, err := h.svc.Snapshots(r.Context(), accountID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSnapshotList(snaps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type snapshotResponse struct {
	Date     string          `json:"date"`
	Balance  decimal.Decimal `json:"balance"`
	IsAnchor bool            `json:"is_anchor"`
}

func toSnapshot(s *balance.Snapshot) snapshotResponse {
	return snapshotResponse{
		Date:     s.Date.Format(time.DateOnly),
		Balance:  s.Balance,
		IsAnchor: s.IsAnchor,
	}
}

func toSnapshotList(snaps []*balance.Snapshot) []snapshotResponse {
	resp := make([]snapshotResponse, len(snaps))
	for i, s := range snaps {
		resp[i] = toSnapshot(s)
	}

	return resp
}
