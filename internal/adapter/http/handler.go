package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"signage-ads/internal/config/configs"
	"signage-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it holds the feed and campaign usecases, a logger for structured
// logging and the auth settings for session verification. Routes are
// registered on a chi.Router.
type Handler struct {
	feed      port.FeedUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	auth      configs.Auth

	// exposeErrors controls whether error payloads carry a human-readable
	// detail string next to the stable machine code. Off by default; the
	// detail may leak internals.
	exposeErrors bool

	router chi.Router
}

// NewHandler creates a handler with all routes configured. Player feed and
// token recovery are public; campaign management requires a business
// session and moderation an admin session.
func NewHandler(feed port.FeedUseCase, campaigns port.CampaignUseCase, logger *slog.Logger, auth configs.Auth, exposeErrors bool) *Handler {
	h := &Handler{
		feed:         feed,
		campaigns:    campaigns,
		logger:       logger,
		auth:         auth,
		exposeErrors: exposeErrors,
	}
	r := chi.NewRouter()

	r.Get("/api/player/feed", h.handleFeed)

	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/recover", h.handleRecover)
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(roleBusiness))
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Post("/{id}/delete", h.handleDeleteCampaign)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.requireRole(roleAdmin))
		r.Get("/pending", h.handlePending)
		r.Get("/approved", h.handleApproved)
		r.Post("/{id}/approve", h.handleApprove)
		r.Post("/{id}/deny", h.handleDeny)
		r.Get("/{id}/targets", h.handleGetTargets)
		r.Put("/{id}/targets", h.handleSetTargets)
		r.Post("/send", h.handleSendOverride)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// errorBody is the failure envelope: a stable machine-readable code plus
// an optional detail string behind the diagnostic flag.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code string, err error) {
	body := errorBody{Error: code}
	if h.exposeErrors && err != nil {
		body.Detail = err.Error()
	}
	h.writeJSON(w, status, body)
}
