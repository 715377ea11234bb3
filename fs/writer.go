// Package fs writes donations as JSON files.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/donate"
)

// Ensure Writer implements donate.DonationWriter at compile time.
var _ donate.DonationWriter = (*Writer)(nil)

// KeyToPath converts a donation key to a file name.
// Example: 8f2c-tiktok → 8f2c-tiktok.json
// Returns EINVALID for keys that do not name a single file.
func KeyToPath(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", donate.Errorf(donate.EINVALID, "invalid donation key %q", key)
	}
	return key + ".json", nil
}

// file is the on-disk layout of a donation. Payloads holding JSON are
// embedded as is; anything else is stored as a JSON string.
type file struct {
	Key         string          `json:"key"`
	SessionID   string          `json:"sessionId"`
	Platform    string          `json:"platform,omitempty"`
	ContentHash string          `json:"contentHash,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	Payload     json.RawMessage `json:"payload"`
}

// FormatDonation encodes a donation as an indented JSON document.
func FormatDonation(d *donate.Donation) ([]byte, error) {
	payload := json.RawMessage(d.Payload)
	if !json.Valid(payload) {
		quoted, err := json.Marshal(d.Payload)
		if err != nil {
			return nil, err
		}
		payload = quoted
	}
	return json.MarshalIndent(file{
		Key:         d.Key,
		SessionID:   d.SessionID,
		Platform:    d.Platform,
		ContentHash: d.ContentHash,
		CreatedAt:   d.CreatedAt,
		Payload:     payload,
	}, "", "  ")
}

// Writer writes donations to a directory, one file per key. A later
// donation under the same key replaces the earlier file.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDonation writes the donation to baseDir/<key>.json. The file is
// written to a temporary name first and renamed into place, so readers
// never observe a partial donation.
func (w *Writer) CreateDonation(ctx context.Context, d *donate.Donation) error {
	if err := d.Validate(); err != nil {
		return err
	}

	relPath, err := KeyToPath(d.Key)
	if err != nil {
		return err
	}

	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	content, err := FormatDonation(d)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.baseDir, "."+relPath+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(w.baseDir, relPath))
}
