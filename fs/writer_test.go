package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "session and platform",
			key:  "8f2c-tiktok",
			want: "8f2c-tiktok.json",
		},
		{
			name: "surrounding space is trimmed",
			key:  " s1-instagram ",
			want: "s1-instagram.json",
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: true,
		},
		{
			name:    "path separator",
			key:     "../s1-tiktok",
			wantErr: true,
		},
		{
			name:    "backslash",
			key:     `s1\tiktok`,
			wantErr: true,
		},
		{
			name:    "parent directory",
			key:     "..",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.KeyToPath(tt.key)
			if tt.wantErr {
				assert.Equal(t, donate.EINVALID, donate.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDonation(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("embeds JSON payloads", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatDonation(&donate.Donation{
			Key:       "s1-tiktok",
			SessionID: "s1",
			Platform:  "tiktok",
			Payload:   `{"tables":[]}`,
			CreatedAt: created,
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"key": "s1-tiktok",
			"sessionId": "s1",
			"platform": "tiktok",
			"createdAt": "2024-03-01T12:00:00Z",
			"payload": {"tables": []}
		}`, string(got))
	})

	t.Run("quotes other payloads", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatDonation(&donate.Donation{
			Key:       "s1-tiktok",
			SessionID: "s1",
			Payload:   "not json",
			CreatedAt: created,
		})

		require.NoError(t, err)
		var decoded struct {
			Payload string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(got, &decoded))
		assert.Equal(t, "not json", decoded.Payload)
	})
}

func TestWriter_CreateDonation(t *testing.T) {
	t.Parallel()

	t.Run("writes donation file named after key", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir)

		err := w.CreateDonation(context.Background(), &donate.Donation{
			Key:       "s1-tiktok",
			SessionID: "s1",
			Platform:  "tiktok",
			Payload:   `{"tables":[]}`,
		})
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "s1-tiktok.json"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `"sessionId": "s1"`)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temporary files are left behind")
	})

	t.Run("replaces earlier donation with the same key", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.CreateDonation(ctx, &donate.Donation{Key: "s1-tiktok", SessionID: "s1", Payload: `{"v":1}`}))
		require.NoError(t, w.CreateDonation(ctx, &donate.Donation{Key: "s1-tiktok", SessionID: "s1", Payload: `{"v":2}`}))

		content, err := os.ReadFile(filepath.Join(dir, "s1-tiktok.json"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `"v": 2`)
	})

	t.Run("returns error for invalid donation", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.CreateDonation(context.Background(), &donate.Donation{Key: "s1-tiktok"})

		assert.Equal(t, donate.EINVALID, donate.ErrorCode(err))
	})

	t.Run("returns error for unsafe key", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.CreateDonation(context.Background(), &donate.Donation{Key: "../escape", SessionID: "s1", Payload: "{}"})

		assert.Equal(t, donate.EINVALID, donate.ErrorCode(err))
	})
}
