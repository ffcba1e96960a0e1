package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"signage-ads/internal/adapter/usecase"
	"signage-ads/internal/config/configs"
	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
	"signage-ads/internal/core/port/mocks"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testSecret = "test-secret"

func newTestHandler(t *testing.T, feedRepo *mocks.MockFeedRepository, exposeErrors bool) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	campaignRepo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	feedSvc := usecase.NewFeedUseCase(feedRepo, logger, 3, func() time.Time { return testClock })
	campaignSvc := usecase.NewCampaignUseCase(campaignRepo, mailer, logger, func() time.Time { return testClock })

	return NewHandler(feedSvc, campaignSvc, logger, configs.Auth{Secret: testSecret}, exposeErrors)
}

func sessionFor(t *testing.T, role string, userID string) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return &http.Cookie{Name: sessionCookie, Value: signed}
}

// TestFeedEndpoint checks the wire contract of the player feed: playlist
// shape, server time and lenient parameter handling.
func TestFeedEndpoint(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)

	repo.EXPECT().
		GetLiveOverride(mock.Anything, 2, testClock).
		Return(nil, nil)
	repo.EXPECT().
		GetVisibleCampaigns(mock.Anything, 2, testClock, 50).
		Return([]domain.Campaign{{
			ID:      1,
			Title:   "Grand opening",
			FileURL: "https://cdn.example.com/opening.png",
			Status:  domain.StatusApproved,
		}}, nil)

	h := newTestHandler(t, repo, false)

	req := httptest.NewRequest(http.MethodGet, "/api/player/feed?display=2&limit=50", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Display    int                   `json:"display"`
		Playlist   []domain.PlaylistItem `json:"playlist"`
		ServerTime time.Time             `json:"serverTime"`
		Degraded   bool                  `json:"degraded"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Display != 2 {
		t.Fatalf("display = %d, want 2", resp.Display)
	}
	if len(resp.Playlist) != 1 || resp.Playlist[0].Type != domain.MediaImage {
		t.Fatalf("unexpected playlist: %+v", resp.Playlist)
	}
	if resp.Playlist[0].Duration == nil || *resp.Playlist[0].Duration != 10 {
		t.Fatalf("image duration missing: %+v", resp.Playlist[0])
	}
	if !resp.ServerTime.Equal(testClock) {
		t.Fatalf("serverTime = %v, want %v", resp.ServerTime, testClock)
	}
}

// TestFeedEndpointMalformedParams ensures junk query parameters clamp
// instead of failing; players must never be blocked by a bad query string.
func TestFeedEndpointMalformedParams(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)

	repo.EXPECT().
		GetLiveOverride(mock.Anything, 1, testClock).
		Return(nil, nil)
	repo.EXPECT().
		GetVisibleCampaigns(mock.Anything, 1, testClock, usecase.DefaultFeedLimit).
		Return(nil, nil)

	h := newTestHandler(t, repo, false)

	req := httptest.NewRequest(http.MethodGet, "/api/player/feed?display=banana&limit=banana", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// TestFeedEndpointFailure ensures the stable error code is returned and
// detail stays hidden unless diagnostics are enabled.
func TestFeedEndpointFailure(t *testing.T) {
	run := func(t *testing.T, expose bool) errorBody {
		repo := mocks.NewMockFeedRepository(t)
		repo.EXPECT().
			GetLiveOverride(mock.Anything, 1, testClock).
			Return(nil, errors.New("pg down"))
		repo.EXPECT().
			GetEligibleCampaigns(mock.Anything, testClock, usecase.DefaultFeedLimit).
			Return(nil, errors.New("pg still down"))

		h := newTestHandler(t, repo, expose)

		req := httptest.NewRequest(http.MethodGet, "/api/player/feed?display=1", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		var body errorBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if body.Error != "feed_failed" {
			t.Fatalf("error code = %q, want feed_failed", body.Error)
		}
		return body
	}

	t.Run("detail hidden by default", func(t *testing.T) {
		if body := run(t, false); body.Detail != "" {
			t.Fatalf("detail leaked: %q", body.Detail)
		}
	})
	t.Run("detail behind diagnostic flag", func(t *testing.T) {
		if body := run(t, true); !strings.Contains(body.Detail, "pg") {
			t.Fatalf("expected detail, got %q", body.Detail)
		}
	})
}

// TestFeedEndpointDegraded ensures the degraded flag reaches the wire.
func TestFeedEndpointDegraded(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)
	repo.EXPECT().
		GetLiveOverride(mock.Anything, 1, testClock).
		Return(nil, errors.New("pg down"))
	repo.EXPECT().
		GetEligibleCampaigns(mock.Anything, testClock, usecase.DefaultFeedLimit).
		Return([]domain.Campaign{{ID: 1, Status: domain.StatusApproved, FileURL: "a.png"}}, nil)

	h := newTestHandler(t, repo, false)

	req := httptest.NewRequest(http.MethodGet, "/api/player/feed?display=1", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Degraded bool `json:"degraded"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Degraded {
		t.Fatalf("degraded flag missing from response")
	}
}

// TestAdminSendOverride covers the happy path of manual override issuance
// through the admin endpoint.
func TestAdminSendOverride(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)
	repo.EXPECT().
		CreateOverride(mock.Anything, mock.AnythingOfType("*domain.Override")).
		Return(nil)

	h := newTestHandler(t, repo, false)

	body := strings.NewReader(`{"campaign_id": 5, "display_id": 1, "minutes": 10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/send", body)
	req.AddCookie(sessionFor(t, roleAdmin, "1"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp sendOverrideResp
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.ValidUntil.Equal(testClock.Add(10 * time.Minute)) {
		t.Fatalf("valid_until = %v, want clock+10m", resp.ValidUntil)
	}
}

// TestCreateCampaignBlankTitle ensures a whitespace-only title is rejected
// as a client error before the write path runs.
func TestCreateCampaignBlankTitle(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)
	h := newTestHandler(t, repo, false)

	body := strings.NewReader(`{"title": "   ", "file_url": "https://cdn.example.com/a.png"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", body)
	req.AddCookie(sessionFor(t, roleBusiness, "2"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	var errBody errorBody
	if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Error != "missing_fields" {
		t.Fatalf("error code = %q, want missing_fields", errBody.Error)
	}
}

// TestAdminAuth ensures admin routes reject missing sessions and
// non-admin roles.
func TestAdminAuth(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)
	h := newTestHandler(t, repo, false)

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/pending", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/pending", nil)
		req.AddCookie(sessionFor(t, roleBusiness, "2"))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/pending", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "not-a-jwt"})
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

// TestRecoverEndpointCodes maps recovery outcomes to their stable codes.
func TestRecoverEndpointCodes(t *testing.T) {
	repo := mocks.NewMockFeedRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	campaignRepo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	deletedAt := testClock.Add(-10 * 24 * time.Hour)
	campaignRepo.EXPECT().
		FindByRecoverToken(mock.Anything, "stale").
		Return(&domain.Campaign{ID: 3, Status: domain.StatusDeleted, DeletedAt: &deletedAt}, nil)

	feedSvc := usecase.NewFeedUseCase(repo, logger, 3, func() time.Time { return testClock })
	campaignSvc := usecase.NewCampaignUseCase(campaignRepo, mailer, logger, func() time.Time { return testClock })
	h := NewHandler(feedSvc, campaignSvc, logger, configs.Auth{Secret: testSecret}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/recover?token=stale", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error != "recovery_expired" {
		t.Fatalf("error code = %q, want recovery_expired", body.Error)
	}
}

var _ port.FeedUseCase = (*usecase.FeedUseCase)(nil)
var _ port.CampaignUseCase = (*usecase.CampaignUseCase)(nil)
