package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"signage-ads/internal/core/port"
)

type moderationView struct {
	campaignView
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
}

// handlePending lists campaigns awaiting moderation.
func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	h.writeModerationList(w, r, h.campaigns.Pending)
}

// handleApproved lists campaigns that passed moderation.
func (h *Handler) handleApproved(w http.ResponseWriter, r *http.Request) {
	h.writeModerationList(w, r, h.campaigns.Approved)
}

func (h *Handler) writeModerationList(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]port.ModerationRow, error)) {
	rows, err := fetch(r.Context())
	if err != nil {
		h.logger.Error("moderation list failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	views := make([]moderationView, 0, len(rows))
	for i := range rows {
		views = append(views, moderationView{
			campaignView: toCampaignView(&rows[i].Campaign),
			CompanyName:  rows[i].CompanyName,
			Email:        rows[i].Email,
		})
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleApprove approves a pending campaign.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.campaigns.Approve, "approve_failed")
}

// handleDeny denies a pending campaign.
func (h *Handler) handleDeny(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.campaigns.Deny, "deny_failed")
}

func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error, code string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", err)
		return
	}
	err = op(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found_or_not_pending", err)
	case err != nil:
		h.logger.Error("moderation failed", slog.Int64("id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, code, err)
	default:
		h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

type setTargetsBody struct {
	DisplayIDs []int `json:"display_ids"`
}

// handleSetTargets replaces a campaign's display targeting. An empty list
// makes the campaign global.
func (h *Handler) handleSetTargets(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var body setTargetsBody
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	err = h.campaigns.SetTargets(r.Context(), id, body.DisplayIDs)
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", err)
	case err != nil:
		h.logger.Error("set targets failed", slog.Int64("id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "targets_failed", err)
	default:
		h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// handleGetTargets returns the campaign's display-target set.
func (h *Handler) handleGetTargets(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", err)
		return
	}
	targets, err := h.campaigns.Targets(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", err)
	case err != nil:
		h.logger.Error("list targets failed", slog.Int64("id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "targets_failed", err)
	default:
		if targets == nil {
			targets = []int{}
		}
		h.writeJSON(w, http.StatusOK, setTargetsBody{DisplayIDs: targets})
	}
}

type sendOverrideBody struct {
	CampaignID int64 `json:"campaign_id"`
	DisplayID  int   `json:"display_id"`
	Minutes    int   `json:"minutes"`
}

type sendOverrideResp struct {
	OK         bool      `json:"ok"`
	DisplayID  int       `json:"display_id"`
	CampaignID int64     `json:"campaign_id"`
	ValidUntil time.Time `json:"valid_until"`
}

// handleSendOverride issues a manual override pushing a campaign to the
// head of one display's feed for a bounded time.
func (h *Handler) handleSendOverride(w http.ResponseWriter, r *http.Request) {
	var body sendOverrideBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if body.CampaignID <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	validUntil, err := h.feed.IssueOverride(r.Context(), body.DisplayID, body.CampaignID, body.Minutes)
	if err != nil {
		h.logger.Error("override issuance failed",
			slog.Int64("campaign", body.CampaignID), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "manual_send_failed", err)
		return
	}
	h.writeJSON(w, http.StatusOK, sendOverrideResp{
		OK:         true,
		DisplayID:  body.DisplayID,
		CampaignID: body.CampaignID,
		ValidUntil: validUntil,
	})
}
