package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
)

type createCampaignBody struct {
	Title         string `json:"title"`
	FileURL       string `json:"file_url"`
	ScheduledFrom string `json:"scheduled_from"`
	ScheduledTo   string `json:"scheduled_to"`
}

type campaignView struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	FileURL       string     `json:"file_url"`
	Status        string     `json:"status"`
	ScheduledFrom *time.Time `json:"scheduled_from"`
	ScheduledTo   *time.Time `json:"scheduled_to"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toCampaignView(c *domain.Campaign) campaignView {
	return campaignView{
		ID:            c.ID,
		Title:         c.Title,
		FileURL:       c.FileURL,
		Status:        string(c.Status),
		ScheduledFrom: c.ScheduledFrom,
		ScheduledTo:   c.ScheduledTo,
		CreatedAt:     c.CreatedAt,
	}
}

// handleCreateCampaign registers a new pending campaign. The creative was
// already uploaded to the storage collaborator; the body carries its URL.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if strings.TrimSpace(body.Title) == "" || body.FileURL == "" {
		h.writeError(w, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	req := port.CreateCampaignReq{
		UserID:  sessionUserID(r),
		Title:   body.Title,
		FileURL: body.FileURL,
	}
	var err error
	if req.ScheduledFrom, err = parseOptionalTime(body.ScheduledFrom); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_scheduled_from", err)
		return
	}
	if req.ScheduledTo, err = parseOptionalTime(body.ScheduledTo); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_scheduled_to", err)
		return
	}
	c, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create campaign failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "upload_failed", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(c))
}

// handleListCampaigns returns the caller's non-deleted campaigns.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.ListMine(r.Context(), sessionUserID(r))
	if err != nil {
		h.logger.Error("list campaigns failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	views := make([]campaignView, 0, len(list))
	for i := range list {
		views = append(views, toCampaignView(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleDeleteCampaign soft-deletes the caller's campaign and triggers the
// recovery email.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", err)
		return
	}
	err = h.campaigns.SoftDelete(r.Context(), sessionUserID(r), id, requestBaseURL(r))
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, port.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "forbidden", err)
	case err != nil:
		h.logger.Error("delete campaign failed", slog.Int64("id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "delete_failed", err)
	default:
		h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// handleRecover restores a soft-deleted campaign by token. No session is
// required: the emailed token is the capability.
func (h *Handler) handleRecover(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	err := h.campaigns.Recover(r.Context(), token)
	switch {
	case errors.Is(err, port.ErrTokenInvalid):
		h.writeError(w, http.StatusBadRequest, "invalid_token", err)
	case errors.Is(err, port.ErrTokenExpired):
		h.writeError(w, http.StatusBadRequest, "recovery_expired", err)
	case err != nil:
		h.logger.Error("recover failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "recover_failed", err)
	default:
		h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// requestBaseURL reconstructs the externally visible origin for links put
// into email, honouring the proxy's forwarded protocol.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
