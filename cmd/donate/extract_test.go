package main_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fwojciec/donate"
	main "github.com/fwojciec/donate/cmd/donate"
	"github.com/fwojciec/donate/config"
	"github.com/fwojciec/donate/zip/ziptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints review tables", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps("")

		cmd := &main.ExtractCmd{Path: tiktokZip(t)}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Your liked videos")
		assert.Contains(t, out, "https://www.tiktokv.com/share/video/1/")
		assert.Contains(t, out, "cats")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints json review", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")

		cmd := &main.ExtractCmd{Path: tiktokZip(t), Output: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var review donate.Review
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &review))
		require.Len(t, review.Tables, 17)
		assert.Equal(t, "zip_contents_0", review.Tables[0].ID)
		likes := review.Tables[10].Table
		require.Len(t, likes.Rows, 1)
		assert.Equal(t, "2023-05-01 10:00:00", likes.Rows[0][1].String())
	})

	t.Run("prints markdown in the requested language", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		deps.Config.Locale = "nl-BE"

		cmd := &main.ExtractCmd{Path: tiktokZip(t), Output: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Door jou gelikete video's")
	})

	t.Run("uses configured titles", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		deps.Config.Titles = map[string]donate.Translatable{"tiktok.searches": {"en": "Things you looked for"}}

		cmd := &main.ExtractCmd{Path: tiktokZip(t), Output: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Things you looked for")
	})

	t.Run("forced format skips detection", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		path := ziptest.WriteFile(t, ziptest.File{Name: "export/data.json", Body: tiktokExport})

		cmd := &main.ExtractCmd{Path: path, Output: "json"}
		cmd.Format = "tiktok"
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "cats")
	})

	t.Run("reads unrecognized archives with the fallback plan", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		path := ziptest.WriteFile(t, ziptest.File{Name: "photos/cat.jpg", Body: "jpeg"})

		cmd := &main.ExtractCmd{Path: path, Output: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Your viewed ads")
	})

	t.Run("rejects unrecognized archives when the fallback is disabled", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps("")
		deps.Config.Fallback = config.FallbackNone
		path := ziptest.WriteFile(t, ziptest.File{Name: "photos/cat.jpg", Body: "jpeg"})

		cmd := &main.ExtractCmd{Path: path}
		err := cmd.Run(deps)

		assert.Equal(t, donate.EINVALID, donate.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps("")

		cmd := &main.ExtractCmd{Path: filepath.Join(t.TempDir(), "missing.zip")}
		err := cmd.Run(deps)

		assert.Equal(t, donate.ENOTFOUND, donate.ErrorCode(err))
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps("")

		cmd := &main.ExtractCmd{Path: tiktokZip(t), Output: "csv"}
		err := cmd.Run(deps)

		assert.Equal(t, donate.EINVALID, donate.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown output")
	})
}
