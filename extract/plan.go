package extract

import (
	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/instagram"
	"github.com/fwojciec/donate/tiktok"
)

// Step is one extractor of a plan with the title shown above its table.
type Step struct {
	Extractor donate.Extractor
	Title     donate.Translatable
}

// Plan is the ordered list of extractors run for one export format. The
// order of the steps is the order of the tables in the review.
type Plan struct {
	Format donate.Format
	Steps  []Step
}

// Titles returns the step titles in order.
func (p *Plan) Titles() []donate.Translatable {
	titles := make([]donate.Translatable, 0, len(p.Steps))
	for _, s := range p.Steps {
		titles = append(titles, s.Title)
	}
	return titles
}

// WithTitles returns a copy of the plan with the titles of the named
// extractors replaced. Languages missing from an override keep their
// original text.
func (p *Plan) WithTitles(overrides map[string]donate.Translatable) *Plan {
	out := &Plan{Format: p.Format, Steps: make([]Step, len(p.Steps))}
	for i, s := range p.Steps {
		out.Steps[i] = s
		o, ok := overrides[s.Extractor.Name()]
		if !ok {
			continue
		}
		title := make(donate.Translatable, len(s.Title)+len(o))
		for lang, text := range s.Title {
			title[lang] = text
		}
		for lang, text := range o {
			title[lang] = text
		}
		out.Steps[i].Title = title
	}
	return out
}

// Wrap returns a copy of the plan with every extractor passed through fn.
func (p *Plan) Wrap(fn func(donate.Extractor) donate.Extractor) *Plan {
	out := &Plan{Format: p.Format, Steps: make([]Step, len(p.Steps))}
	for i, s := range p.Steps {
		out.Steps[i] = Step{Extractor: fn(s.Extractor), Title: s.Title}
	}
	return out
}

func title(en, nl string) donate.Translatable {
	return donate.Translatable{"en": en, "nl": nl}
}

// InstagramHTMLPlan returns the plan for Instagram HTML exports, scraping
// pages with parser.
func InstagramHTMLPlan(parser donate.HTMLParser) *Plan {
	return &Plan{
		Format: donate.FormatInstagramHTML,
		Steps: []Step{
			{instagram.NewAdsViewed(parser), title("Your viewed ads", "Door jou bekeken advertenties")},
			{instagram.NewPostsViewed(parser), title("Your viewed posts", "Door jou bekeken posts")},
			{instagram.NewAdsClicked(parser), title("Your clicked ads", "Door jou aangeklikte advertenties")},
			{instagram.NewSuggestedAccountsViewed(parser), title("Your viewed suggested accounts", "Door jou bekeken voorgestelde accounts")},
			{instagram.NewVideosWatched(parser), title("Your watched videos", "Door jou bekeken video's")},
			{instagram.NewAdvertisers(parser), title("Advertisers using your info", "Adverteerders die jouw gegevens gebruiken")},
			{instagram.NewAdsSetting(parser), title("Your ad setting", "Jouw advertentie-instelling")},
			{instagram.NewOffMetaActivity(parser), title("Your off-Meta activity", "Jouw activiteit buiten Meta")},
			{instagram.NewFollowers(parser), title("Your followers", "Jouw volgers")},
			{instagram.NewFollowing(parser), title("Accounts you follow", "Accounts die je volgt")},
			{instagram.NewAccountSearches(parser), title("Your account searches", "Door jou gezochte accounts")},
			{instagram.NewPhraseSearches(parser), title("Your phrase searches", "Door jou gezochte woorden")},
			{instagram.NewDevices(parser), title("Your devices", "Jouw apparaten")},
			{instagram.NewAccountLocation(parser), title("Your location", "Jouw locatie")},
			{instagram.NewTopics(parser), title("Your Instagram topics", "Jouw Instagram-onderwerpen")},
			{instagram.NewLogins(parser), title("Your logins", "Jouw aanmeldingen")},
			{instagram.NewPostComments(parser), title("Your post comments", "Jouw reacties op posts")},
			{instagram.NewReelComments(parser), title("Your reel comments", "Jouw reacties op reels")},
			{instagram.NewLikes(parser), title("Your liked posts", "Door jou gelikete posts")},
			{instagram.NewAccountSetting(parser), title("Your account settings", "Jouw accountinstellingen")},
			{instagram.NewDMLinks(parser), title("Your links sent via DM", "Jouw via DM verstuurde links")},
			{instagram.NewSavedPosts(parser), title("Your saved posts", "Jouw opgeslagen posts")},
		},
	}
}

// InstagramJSONPlan returns the plan for Instagram JSON exports.
func InstagramJSONPlan() *Plan {
	return &Plan{
		Format: donate.FormatInstagramJSON,
		Steps: []Step{
			{instagram.NewAccountSettingJSON(), title("Your account settings", "Jouw accountinstellingen")},
			{instagram.NewLikesJSON(), title("Your liked posts and comments", "Door jou gelikete posts en reacties")},
			{instagram.NewFollowingJSON(), title("Accounts you follow", "Accounts die je volgt")},
			{instagram.NewFollowersJSON(), title("Your followers", "Jouw volgers")},
			{instagram.NewTopicsJSON(), title("Your Instagram topics", "Jouw Instagram-onderwerpen")},
			{instagram.NewSavedPostsJSON(), title("Your saved posts", "Jouw opgeslagen posts")},
		},
	}
}

// TikTokPlan returns the plan for TikTok exports.
func TikTokPlan() *Plan {
	return &Plan{
		Format: donate.FormatTikTok,
		Steps: []Step{
			{tiktok.NewFavorites(), title("Your favorites", "Jouw favorieten")},
			{tiktok.NewFollowers(), title("Your followers", "Jouw volgers")},
			{tiktok.NewFollowing(), title("Accounts you follow", "Accounts die je volgt")},
			{tiktok.NewHashtags(), title("Hashtags you used", "Door jou gebruikte hashtags")},
			{tiktok.NewLogins(), title("Your logins", "Jouw aanmeldingen")},
			{tiktok.NewLocation(), title("Your most recent location", "Jouw meest recente locatie")},
			{tiktok.NewBlocklist(), title("Accounts you blocked", "Door jou geblokkeerde accounts")},
			{tiktok.NewSettings(), title("Your app settings", "Jouw app-instellingen")},
			{tiktok.NewVideos(), title("Your posted videos", "Door jou geplaatste video's")},
			{tiktok.NewWatchHistory(), title("Your watch history", "Jouw kijkgeschiedenis")},
			{tiktok.NewLikes(), title("Your liked videos", "Door jou gelikete video's")},
			{tiktok.NewShares(), title("Your shares", "Door jou gedeelde inhoud")},
			{tiktok.NewSearches(), title("Your searches", "Jouw zoekopdrachten")},
			{tiktok.NewAds(), title("Your ad interests and off-TikTok activity", "Jouw advertentie-interesses en activiteit buiten TikTok")},
			{tiktok.NewComments(), title("Your comments", "Jouw reacties")},
			{tiktok.NewWatchLive(), title("Live streams you watched", "Door jou bekeken livestreams")},
			{tiktok.NewWatchLiveComments(), title("Your live stream comments", "Jouw reacties bij livestreams")},
		},
	}
}
