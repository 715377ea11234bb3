package extract_test

import (
	"testing"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/extract"
	"github.com/fwojciec/donate/html"
	"github.com/fwojciec/donate/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPlans() []*extract.Plan {
	return []*extract.Plan{
		extract.InstagramHTMLPlan(html.NewParser()),
		extract.InstagramJSONPlan(),
		extract.TikTokPlan(),
	}
}

func TestPlans(t *testing.T) {
	t.Parallel()

	for _, plan := range allPlans() {
		t.Run(string(plan.Format), func(t *testing.T) {
			t.Parallel()

			names := make(map[string]bool)
			for _, step := range plan.Steps {
				name := step.Extractor.Name()
				assert.False(t, names[name], "duplicate extractor %s", name)
				names[name] = true

				assert.NotEmpty(t, step.Title.Get("en"), name)
				assert.NotEmpty(t, step.Title.Get("nl"), name)

				columns := step.Extractor.Columns()
				require.NotEmpty(t, columns, name)
				assert.Equal(t, "type", columns[0], name)
			}
			assert.Len(t, plan.Titles(), len(plan.Steps))
		})
	}
}

func TestInstagramHTMLPlan_TitleOrder(t *testing.T) {
	t.Parallel()

	titles := extract.InstagramHTMLPlan(html.NewParser()).Titles()

	require.Len(t, titles, 22)
	assert.Equal(t, "Your viewed ads", titles[0].Get("en"))
	assert.Equal(t, "Your followers", titles[8].Get("en"))
	assert.Equal(t, "Your links sent via DM", titles[20].Get("en"))
	assert.Equal(t, "Your saved posts", titles[21].Get("en"))
}

func TestPlan_WithTitles(t *testing.T) {
	t.Parallel()

	plan := extract.TikTokPlan()

	got := plan.WithTitles(map[string]donate.Translatable{
		"tiktok.favorites": {"en": "Favourites"},
	})

	assert.Equal(t, "Favourites", got.Steps[0].Title.Get("en"))
	assert.Equal(t, "Jouw favorieten", got.Steps[0].Title.Get("nl"))
	assert.Equal(t, "Your favorites", plan.Steps[0].Title.Get("en"), "original plan is unchanged")
	assert.Equal(t, plan.Steps[1].Title, got.Steps[1].Title)
}

func TestPlan_Wrap(t *testing.T) {
	t.Parallel()

	plan := extract.InstagramJSONPlan()

	got := plan.Wrap(func(e donate.Extractor) donate.Extractor {
		return &mock.Extractor{
			NameFn:    func() string { return "wrapped." + e.Name() },
			ColumnsFn: e.Columns,
			ExtractFn: e.Extract,
		}
	})

	require.Len(t, got.Steps, len(plan.Steps))
	assert.Equal(t, "wrapped.instagram.json.account_setting", got.Steps[0].Extractor.Name())
	assert.Equal(t, plan.Steps[0].Title, got.Steps[0].Title)
}
