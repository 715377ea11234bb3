package mock

import (
	"context"

	"github.com/fwojciec/donate"
)

var _ donate.DonationService = (*DonationService)(nil)

// DonationService is a mock implementation of donate.DonationService.
type DonationService struct {
	CreateDonationFn   func(ctx context.Context, d *donate.Donation) error
	FindDonationByIDFn func(ctx context.Context, id string) (*donate.Donation, error)
	FindDonationsFn    func(ctx context.Context, filter donate.DonationFilter) ([]*donate.Donation, error)
	DeleteDonationFn   func(ctx context.Context, id string) error
}

func (s *DonationService) CreateDonation(ctx context.Context, d *donate.Donation) error {
	return s.CreateDonationFn(ctx, d)
}

func (s *DonationService) FindDonationByID(ctx context.Context, id string) (*donate.Donation, error) {
	return s.FindDonationByIDFn(ctx, id)
}

func (s *DonationService) FindDonations(ctx context.Context, filter donate.DonationFilter) ([]*donate.Donation, error) {
	return s.FindDonationsFn(ctx, filter)
}

func (s *DonationService) DeleteDonation(ctx context.Context, id string) error {
	return s.DeleteDonationFn(ctx, id)
}

var _ donate.DonationWriter = (*DonationWriter)(nil)

// DonationWriter is a mock implementation of donate.DonationWriter.
type DonationWriter struct {
	CreateDonationFn func(ctx context.Context, d *donate.Donation) error
}

func (w *DonationWriter) CreateDonation(ctx context.Context, d *donate.Donation) error {
	return w.CreateDonationFn(ctx, d)
}
