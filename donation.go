package donate

import (
	"context"
	"time"
)

// Donation is a consented review payload ready to be handed to a collector.
type Donation struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	SessionID   string    `json:"sessionId"`
	Platform    string    `json:"platform"`
	Payload     string    `json:"payload"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DonationKey returns the key a donation is filed under.
func DonationKey(sessionID, platform string) string {
	return sessionID + "-" + platform
}

// Validate returns an error if the donation contains invalid fields.
func (d *Donation) Validate() error {
	if d.SessionID == "" {
		return Errorf(EINVALID, "donation session ID required")
	}
	if d.Key == "" {
		return Errorf(EINVALID, "donation key required")
	}
	if d.Payload == "" {
		return Errorf(EINVALID, "donation payload required")
	}
	return nil
}

// DonationWriter persists donations.
type DonationWriter interface {
	CreateDonation(ctx context.Context, d *Donation) error
}

// DonationService represents a service for managing stored donations.
type DonationService interface {
	// CreateDonation stores a new donation and assigns its ID and hash.
	CreateDonation(ctx context.Context, d *Donation) error

	// FindDonationByID retrieves a donation by ID.
	// Returns ENOTFOUND if the donation does not exist.
	FindDonationByID(ctx context.Context, id string) (*Donation, error)

	// FindDonations retrieves donations matching the filter, newest first.
	FindDonations(ctx context.Context, filter DonationFilter) ([]*Donation, error)

	// DeleteDonation permanently removes a donation.
	// Returns ENOTFOUND if the donation does not exist.
	DeleteDonation(ctx context.Context, id string) error
}

// DonationFilter represents a filter used by FindDonations.
type DonationFilter struct {
	ID        *string
	SessionID *string
	Platform  *string

	Offset int
	Limit  int
}
