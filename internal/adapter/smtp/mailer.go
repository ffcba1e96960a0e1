package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"signage-ads/internal/config/configs"
)

// Mailer sends deletion notices over SMTP. With no host configured it
// degrades to logging the notice, which keeps the soft-delete flow usable
// in development.
type Mailer struct {
	cfg    configs.SMTP
	logger *slog.Logger
}

// NewMailer returns a mailer bound to the given transport settings.
func NewMailer(cfg configs.SMTP, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// SendCampaignDeleted emails the owner that their campaign was deleted,
// including the recovery link. The link is a capability valid for 7 days.
func (m *Mailer) SendCampaignDeleted(ctx context.Context, to, campaignTitle, recoverLink string) error {
	if m.cfg.Host == "" {
		m.logger.Info("mail transport not configured, logging deletion notice",
			slog.String("to", to), slog.String("campaign", campaignTitle),
			slog.String("recover_link", recoverLink))
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}
	subject := fmt.Sprintf("Campaign %q was deleted", campaignTitle)
	body := fmt.Sprintf(
		"Your campaign %q was deleted.\r\n\r\n"+
			"If this was a mistake you can recover it within 7 days:\r\n%s\r\n",
		campaignTitle, recoverLink)

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
