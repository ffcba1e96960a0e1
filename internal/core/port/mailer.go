package port

import "context"

// Mailer is the outbound port for notification email. Delivery is owned by
// an external collaborator; the core only hands over the message inputs.
type Mailer interface {
	// SendCampaignDeleted notifies the owner that their campaign was
	// soft-deleted and includes the recovery link.
	SendCampaignDeleted(ctx context.Context, to, campaignTitle, recoverLink string) error
}
