package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
	"signage-ads/internal/core/port/mocks"
)

// TestSoftDeleteSendsRecoveryEmail ensures a soft delete mints a token and
// mails the owner a recovery link carrying it.
func TestSoftDeleteSendsRecoveryEmail(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	campaign := &domain.Campaign{ID: 10, UserID: 2, Title: "Lunch special", Status: domain.StatusApproved}
	repo.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(campaign, nil)

	var mintedToken string
	repo.EXPECT().
		SoftDelete(mock.Anything, int64(2), int64(10), mock.AnythingOfType("string"), testClock).
		Run(func(ctx context.Context, userID, campaignID int64, token string, at time.Time) {
			mintedToken = token
		}).
		Return(nil)
	repo.EXPECT().OwnerEmail(mock.Anything, int64(10)).Return("acme@example.com", nil)

	mailer.EXPECT().
		SendCampaignDeleted(mock.Anything, "acme@example.com", "Lunch special", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, title, link string) {
			if !strings.Contains(link, "/api/campaigns/recover?token=") {
				t.Errorf("recovery link malformed: %s", link)
			}
			if !strings.Contains(link, mintedToken) {
				t.Errorf("recovery link does not carry the minted token: %s", link)
			}
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)

	if err := svc.SoftDelete(context.Background(), 2, 10, "https://ads.example.com"); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
	if mintedToken == "" {
		t.Fatalf("no recovery token minted")
	}
}

// TestSoftDeleteForbidden ensures users cannot delete campaigns they do
// not own.
func TestSoftDeleteForbidden(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().GetCampaign(mock.Anything, int64(10)).
		Return(&domain.Campaign{ID: 10, UserID: 7, Status: domain.StatusApproved}, nil)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)

	err := svc.SoftDelete(context.Background(), 2, 10, "https://ads.example.com")
	if !errors.Is(err, port.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// TestSoftDeleteSurvivesMailFailure ensures a lost deletion notice does not
// roll back the already-committed delete.
func TestSoftDeleteSurvivesMailFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().GetCampaign(mock.Anything, int64(10)).
		Return(&domain.Campaign{ID: 10, UserID: 2, Title: "t", Status: domain.StatusApproved}, nil)
	repo.EXPECT().
		SoftDelete(mock.Anything, int64(2), int64(10), mock.AnythingOfType("string"), testClock).
		Return(nil)
	repo.EXPECT().OwnerEmail(mock.Anything, int64(10)).Return("acme@example.com", nil)
	mailer.EXPECT().
		SendCampaignDeleted(mock.Anything, "acme@example.com", "t", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)

	if err := svc.SoftDelete(context.Background(), 2, 10, "https://ads.example.com"); err != nil {
		t.Fatalf("SoftDelete should not fail on mail error, got %v", err)
	}
}

// TestRecover covers the recovery token outcomes: success inside the
// window, expiry after 7 days and unknown tokens.
func TestRecover(t *testing.T) {
	deletedAt := func(ago time.Duration) *time.Time {
		t := testClock.Add(-ago)
		return &t
	}

	t.Run("within window", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		mailer := mocks.NewMockMailer(t)

		repo.EXPECT().FindByRecoverToken(mock.Anything, "tok").
			Return(&domain.Campaign{ID: 3, Status: domain.StatusDeleted, DeletedAt: deletedAt(24 * time.Hour)}, nil)
		repo.EXPECT().RestoreCampaign(mock.Anything, int64(3)).Return(nil)

		svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
		if err := svc.Recover(context.Background(), "tok"); err != nil {
			t.Fatalf("Recover error: %v", err)
		}
	})

	t.Run("window expired", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		mailer := mocks.NewMockMailer(t)

		repo.EXPECT().FindByRecoverToken(mock.Anything, "tok").
			Return(&domain.Campaign{ID: 3, Status: domain.StatusDeleted, DeletedAt: deletedAt(8 * 24 * time.Hour)}, nil)

		svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
		if err := svc.Recover(context.Background(), "tok"); !errors.Is(err, port.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		mailer := mocks.NewMockMailer(t)

		repo.EXPECT().FindByRecoverToken(mock.Anything, "nope").Return(nil, nil)

		svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
		if err := svc.Recover(context.Background(), "nope"); !errors.Is(err, port.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		mailer := mocks.NewMockMailer(t)

		svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
		if err := svc.Recover(context.Background(), ""); !errors.Is(err, port.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

// TestApproveOnlyPending ensures moderation transitions are conditional on
// the pending status.
func TestApproveOnlyPending(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().
		UpdateStatus(mock.Anything, int64(4), domain.StatusPending, domain.StatusApproved).
		Return(port.ErrNotFound)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
	if err := svc.Approve(context.Background(), 4); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestPurgeExpired ensures housekeeping cuts off exactly one recovery
// window behind the clock.
func TestPurgeExpired(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().
		PurgeDeleted(mock.Anything, testClock.Add(-domain.RecoveryWindow)).
		Return(int64(2), nil)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
	n, err := svc.PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("PurgeExpired error: %v", err)
	}
	if n != 2 {
		t.Fatalf("purged = %d, want 2", n)
	}
}

// TestTargetsUnknownCampaign ensures target reads 404 on missing campaigns
// instead of returning an empty (global) set.
func TestTargetsUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(nil, port.ErrNotFound)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)
	if _, err := svc.Targets(context.Background(), 99); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestCreateCampaignPending ensures new campaigns start in pending with a
// trimmed title and the clock's timestamp.
func TestCreateCampaignPending(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	mailer := mocks.NewMockMailer(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.ID = 42
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo, mailer, testLogger(), fixedNow)

	c, err := svc.Create(context.Background(), port.CreateCampaignReq{
		UserID:  2,
		Title:   "  Spring sale  ",
		FileURL: "https://cdn.example.com/spring.png",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != 42 {
		t.Fatalf("id not filled from repo: %d", c.ID)
	}
	if c.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", c.Status)
	}
	if c.Title != "Spring sale" {
		t.Fatalf("title not trimmed: %q", c.Title)
	}
}
