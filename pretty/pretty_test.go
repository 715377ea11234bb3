package pretty_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReview(t *testing.T) *donate.Review {
	t.Helper()

	likes := donate.NewTable("tiktok.likes", "type", "timestamp", "link")
	likes.Append(donate.Text("like"), donate.Text("2023-05-01 10:00:00"), donate.Null())
	empty := donate.NewTable("tiktok.shares", "type", "timestamp")

	review, err := donate.Assemble(
		[]*donate.Table{likes, empty},
		[]donate.Translatable{
			{"en": "Your liked videos", "nl": "Door jou gelikete video's"},
			{"en": "Your shares"},
		},
	)
	require.NoError(t, err)
	review.Description = donate.Translatable{"en": "Please review.", "nl": "Bekijk de gegevens."}
	review.Question = donate.Translatable{"en": "Share?"}
	return review
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders every table with title and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pretty.NewRenderer().Render(&buf, testReview(t), "en")

		require.NoError(t, err)
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Please review.\n"))
		assert.Contains(t, out, "Your liked videos")
		assert.Contains(t, out, "2023-05-01 10:00:00")
		assert.Contains(t, out, "zip_contents_0, 1 row")
		assert.Contains(t, out, "Your shares")
		assert.Contains(t, out, pretty.NoData)
		assert.Contains(t, out, "zip_contents_1, 0 rows")
		assert.True(t, strings.HasSuffix(out, "Share?\n"))
	})

	t.Run("uses the requested language", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pretty.NewRenderer().Render(&buf, testReview(t), "nl")

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Bekijk de gegevens.")
		assert.Contains(t, out, "Door jou gelikete video's")
		assert.Contains(t, out, "Your shares", "falls back to English")
	})
}

func TestRenderDonations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := pretty.RenderDonations(&buf, []*donate.Donation{
		{
			ID:          "d1",
			Key:         "s1-tiktok",
			Platform:    "tiktok",
			Payload:     "{}",
			ContentHash: "0123456789abcdef",
			CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "s1-tiktok")
	assert.Contains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2024-03-01 12:00:00")
}
