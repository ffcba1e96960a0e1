package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"signage-ads/internal/core/port"
)

// handleFeed serves the player feed. Query parameters `display` and
// `limit` are parsed leniently: anything malformed becomes zero and is
// clamped by the resolver, so a misconfigured player still gets a
// playlist. Failures surface as the stable code "feed_failed"; players
// retry on their own polling schedule.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	display, _ := strconv.Atoi(q.Get("display"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	resp, err := h.feed.ResolveFeed(r.Context(), port.FeedReq{DisplayID: display, Limit: limit})
	if err != nil {
		h.logger.Error("feed resolution failed",
			slog.Int("display", display), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "feed_failed", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
