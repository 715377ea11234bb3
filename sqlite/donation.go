package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/donate"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ donate.DonationService = (*DonationService)(nil)
	_ donate.DonationWriter  = (*DonationService)(nil)
)

// DonationService implements donate.DonationService using SQLite.
type DonationService struct {
	db  *DB
	now func() time.Time
}

// NewDonationService creates a new DonationService.
func NewDonationService(db *DB) *DonationService {
	return &DonationService{db: db, now: time.Now}
}

// CreateDonation stores a donation, assigning its ID, content hash and
// creation time.
func (s *DonationService) CreateDonation(ctx context.Context, d *donate.Donation) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.ID = uuid.New().String()
	d.ContentHash = hashPayload(d.Payload)
	d.CreatedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donations (id, key, session_id, platform, payload, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.Key, d.SessionID, d.Platform, d.Payload, d.ContentHash, d.CreatedAt.Format(timeLayout))

	return err
}

// FindDonationByID retrieves a donation by ID.
func (s *DonationService) FindDonationByID(ctx context.Context, id string) (*donate.Donation, error) {
	d, err := scanDonation(s.db.QueryRowContext(ctx, `
		SELECT id, key, session_id, platform, payload, content_hash, created_at
		FROM donations
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, donate.Errorf(donate.ENOTFOUND, "donation not found")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// FindDonations retrieves donations matching the filter, newest first.
func (s *DonationService) FindDonations(ctx context.Context, filter donate.DonationFilter) ([]*donate.Donation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, key, session_id, platform, payload, content_hash, created_at FROM donations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SessionID != nil {
		query.WriteString(" AND session_id = ?")
		args = append(args, *filter.SessionID)
	}
	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, *filter.Platform)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := make([]*donate.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, rows.Err()
}

// DeleteDonation permanently removes a donation.
func (s *DonationService) DeleteDonation(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM donations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return donate.Errorf(donate.ENOTFOUND, "donation not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDonation(row scanner) (*donate.Donation, error) {
	var d donate.Donation
	var createdAt string

	if err := row.Scan(&d.ID, &d.Key, &d.SessionID, &d.Platform, &d.Payload, &d.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	d.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &d, nil
}
