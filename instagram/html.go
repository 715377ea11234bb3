package instagram

import (
	"bytes"
	"errors"
	"strings"

	"github.com/fwojciec/donate"
)

// Ensure HTMLExtractor implements donate.Extractor at compile time.
var _ donate.Extractor = (*HTMLExtractor)(nil)

// inboxDir holds one directory per direct-message conversation.
const inboxDir = "your_instagram_activity/messages/inbox/"

// HTMLExtractor extracts one record kind from an Instagram HTML export.
type HTMLExtractor struct {
	extractor
	parser donate.HTMLParser

	// dir, when set, selects every .html entry below it instead of targets.
	dir  string
	kind string

	scrape func(doc donate.Node, path, kind string, t *donate.Table)
}

// Extract parses every target page and scrapes its records.
func (e *HTMLExtractor) Extract(a donate.Archive) (*donate.Table, error) {
	t := donate.NewTable(e.name, e.columns...)
	if e.dir != "" {
		return t, e.extractDir(a, t)
	}
	err := e.each(a, func(path, kind string, data []byte) error {
		return e.scrapePage(path, kind, data, t)
	})
	return t, err
}

func (e *HTMLExtractor) extractDir(a donate.Archive, t *donate.Table) error {
	paths := donate.EntriesUnder(a, e.dir, ".html")
	if len(paths) == 0 {
		return donate.Errorf(donate.ENOTFOUND, "no HTML pages below %q", e.dir)
	}
	var errs []error
	for _, path := range paths {
		data, err := donate.ReadFile(a, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := e.scrapePage(path, e.kind, data, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *HTMLExtractor) scrapePage(path, kind string, data []byte, t *donate.Table) error {
	doc, err := e.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	e.scrape(doc, path, kind, t)
	return nil
}

func newHTML(parser donate.HTMLParser, name string, columns []string, targets []target, scrape func(donate.Node, string, string, *donate.Table)) *HTMLExtractor {
	return &HTMLExtractor{
		extractor: extractor{name: name, columns: columns, targets: targets},
		parser:    parser,
		scrape:    scrape,
	}
}

// scrapeViewed reads pages listing one record per block with a timestamp
// cell and an author in a nested div.
func scrapeViewed(doc donate.Node, _, kind string, t *donate.Table) {
	for _, block := range doc.Find("div", blockClasses...) {
		t.Append(donate.Text(kind), blockTime(block), nestedDivString(block))
	}
}

// NewAdsViewed extracts the ads the participant saw.
func NewAdsViewed(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.ads_viewed",
		[]string{"type", "timestamp", "from_user"},
		[]target{{suffix: "ads_information/ads_and_topics/ads_viewed.html", kind: "ad_seen"}},
		scrapeViewed)
}

// NewPostsViewed extracts the posts the participant saw.
func NewPostsViewed(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.posts_viewed",
		[]string{"type", "timestamp", "from_user"},
		[]target{{suffix: "ads_information/ads_and_topics/posts_viewed.html", kind: "post_seen"}},
		scrapeViewed)
}

// NewVideosWatched extracts the videos the participant watched.
func NewVideosWatched(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.videos_watched",
		[]string{"type", "timestamp", "from_user"},
		[]target{{suffix: "ads_information/ads_and_topics/videos_watched.html", kind: "video_watched"}},
		scrapeViewed)
}

// NewSuggestedAccountsViewed extracts the suggested accounts shown to the
// participant.
func NewSuggestedAccountsViewed(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.suggested_accounts_viewed",
		[]string{"type", "timestamp", "user_name"},
		[]target{{suffix: "ads_information/ads_and_topics/suggested_accounts_viewed.html", kind: "suggested_acc_viewed"}},
		scrapeViewed)
}

// NewAdsClicked extracts the ads the participant clicked. On this page the
// timestamp sits in the nested div and the first div holds the advertiser.
func NewAdsClicked(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.ads_clicked",
		[]string{"type", "timestamp", "from_user"},
		[]target{{suffix: "ads_information/ads_and_topics/ads_clicked.html", kind: "ad_clicked"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, block := range doc.Find("div", blockClasses...) {
				ts := nestedDivString(block)
				if !ts.IsNull() {
					ts = donate.Text(strings.ReplaceAll(ts.String(), narrowNoBreakSpace, ""))
				}
				t.Append(donate.Text(kind), ts, divString(block))
			}
		})
}

// NewAdvertisers extracts advertisers that used the participant's activity.
func NewAdvertisers(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.advertisers",
		[]string{"type", "user"},
		[]target{{suffix: "ads_information/instagram_ads_and_businesses/advertisers_using_your_activity_or_information.html", kind: "advertiser_using_info"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, row := range doc.Find("tr", "_1isx") {
				t.Append(donate.Text(kind), text(first(row.Find("td"))))
			}
		})
}

// NewAdsSetting extracts the ad-free subscription status. The page always
// yields one row once it is present.
func NewAdsSetting(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.ads_setting",
		[]string{"type", "status"},
		[]target{{suffix: "ads_information/instagram_ads_and_businesses/subscription_for_no_ads.html", kind: "subscription_no_ads"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			status := donate.Null()
			if cell := first(doc.Find("td", "_2piu", "_a6_r")); cell != nil {
				status = nonBlank(cell.OwnText())
			}
			t.Append(donate.Text(kind), status)
		})
}

// NewOffMetaActivity extracts apps and websites that reported activity.
func NewOffMetaActivity(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.off_meta_activity",
		[]string{"type", "platform"},
		[]target{{suffix: "apps_and_websites_off_of_instagram/apps_and_websites/your_activity_off_meta_technologies.html", kind: "off_meta_activity"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, div := range doc.Find("div", offMetaClasses...) {
				t.Append(donate.Text(kind), text(div))
			}
		})
}

// scrapeConnections reads follower and following pages: every link names
// an account, and the div following the link's container holds the date.
func scrapeConnections(doc donate.Node, _, kind string, t *donate.Table) {
	for _, a := range doc.Find("a") {
		t.Append(donate.Text(kind), timestamp(nextDiv(ancestorDiv(a))), text(a), href(a))
	}
}

// NewFollowers extracts the participant's followers.
func NewFollowers(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.followers",
		[]string{"type", "timestamp", "user_name", "link"},
		[]target{{suffix: "connections/followers_and_following/followers_1.html", kind: "follower"}},
		scrapeConnections)
}

// NewFollowing extracts the accounts the participant follows.
func NewFollowing(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.following",
		[]string{"type", "timestamp", "user_name", "link"},
		[]target{{suffix: "connections/followers_and_following/following.html", kind: "following"}},
		scrapeConnections)
}

// scrapeSection reads pages with one section per record holding a labelled
// value and a timestamp cell.
func scrapeSection(doc donate.Node, _, kind string, t *donate.Table) {
	for _, section := range doc.Find("div", sectionClasses...) {
		t.Append(donate.Text(kind), blockTime(section), labelValue(first(section.Find("td", labelClasses...))))
	}
}

// NewAccountSearches extracts account searches.
func NewAccountSearches(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.account_searches",
		[]string{"type", "timestamp", "user_name"},
		[]target{{suffix: "logged_information/recent_searches/account_searches.html", kind: "account_searched"}},
		scrapeSection)
}

// NewPhraseSearches extracts word and phrase searches.
func NewPhraseSearches(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.phrase_searches",
		[]string{"type", "timestamp", "phrase"},
		[]target{{suffix: "logged_information/recent_searches/word_or_phrase_searches.html", kind: "phrase_searched"}},
		scrapeSection)
}

// NewDevices extracts devices used to log in, with their last login time.
func NewDevices(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.devices",
		[]string{"type", "last_login", "device"},
		[]target{{suffix: "personal_information/device_information/devices.html", kind: "device_detected"}},
		scrapeSection)
}

// NewAccountLocation extracts the country the account is based in.
func NewAccountLocation(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.account_location",
		[]string{"type", "value"},
		[]target{{suffix: "personal_information/information_about_you/account_based_in.html", kind: "account_based_in"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			if cell := first(doc.Find("td", labelClasses...)); cell != nil {
				t.Append(donate.Text(kind), labelValue(cell))
			}
		})
}

// NewTopics extracts the topics Instagram assigned to the participant.
func NewTopics(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.topics",
		[]string{"type", "name"},
		[]target{{suffix: "preferences/your_topics/your_topics.html", kind: "assigned_topic"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, block := range doc.Find("div", blockClasses...) {
				t.Append(donate.Text(kind), divString(block))
			}
		})
}

// loginViaIndex is the position of the user agent among the text nodes of
// a login record's label cells. Four labelled fields precede it.
const loginViaIndex = 8

// NewLogins extracts login events.
func NewLogins(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.logins",
		[]string{"type", "timestamp", "via"},
		[]target{{suffix: "security_and_login_information/login_and_account_creation/login_activity.html", kind: "login"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, section := range doc.Find("div", sectionClasses...) {
				t.Append(donate.Text(kind), blockTime(section), stringAt(labelStrings(section), loginViaIndex))
			}
		})
}

// scrapeComments reads comment pages: the first label value is the comment
// text and the second names the owner of the commented media.
func scrapeComments(doc donate.Node, _, kind string, t *donate.Table) {
	for _, section := range doc.Find("div", sectionClasses...) {
		values := labelValues(section)
		t.Append(donate.Text(kind), blockTime(section), valueAt(values, 0), valueAt(values, 1))
	}
}

// NewPostComments extracts comments on posts.
func NewPostComments(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.post_comments",
		[]string{"type", "timestamp", "text", "media_owner"},
		[]target{{suffix: "your_instagram_activity/comments/post_comments_1.html", kind: "post_comment"}},
		scrapeComments)
}

// NewReelComments extracts comments on reels.
func NewReelComments(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.reel_comments",
		[]string{"type", "timestamp", "text", "media_owner"},
		[]target{{suffix: "your_instagram_activity/comments/reels_comments.html", kind: "reel_comment"}},
		scrapeComments)
}

// NewLikes extracts liked posts and liked comments. The account name of
// the i-th record is the i-th title div of the page; the time is the text
// of the third div of the record.
func NewLikes(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.likes",
		[]string{"type", "timestamp", "user_name", "link"},
		[]target{
			{suffix: "your_instagram_activity/likes/liked_posts.html", kind: "liked_post"},
			{suffix: "your_instagram_activity/likes/liked_comments.html", kind: "liked_comment"},
		},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			titles := doc.Find("div", titleClasses...)
			for i, section := range doc.Find("div", sectionClasses...) {
				t.Append(donate.Text(kind),
					timestamp(nth(section.Find("div"), 2)),
					text(nth(titles, i)),
					href(first(section.Find("a"))))
			}
		})
}

// privateAccountLabel is the label of the account privacy cell.
const privateAccountLabel = "Private Account"

// NewAccountSetting reports whether the account is private.
func NewAccountSetting(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.account_setting",
		[]string{"type", "value"},
		[]target{{suffix: "personal_information/personal_information/personal_information.html", kind: "account_private"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			for _, cell := range doc.Find("td", labelClasses...) {
				if strings.TrimSpace(cell.OwnText()) == privateAccountLabel {
					t.Append(donate.Text(kind), labelValue(cell))
					return
				}
			}
		})
}

// NewDMLinks extracts links shared in direct messages. Every conversation
// page below the inbox is read. A message is marked "other" when its
// sender is the conversation partner named in the page header and "self"
// otherwise.
func NewDMLinks(parser donate.HTMLParser) *HTMLExtractor {
	e := newHTML(parser, "instagram.dm_links",
		[]string{"type", "timestamp", "link", "sender", "conversation_partner"},
		nil,
		func(doc donate.Node, path, kind string, t *donate.Table) {
			partner := donate.Null()
			if header := first(doc.Find("div", "_a705")); header != nil {
				partner = firstString(first(header.Find("div", "_a70e")))
			}
			conversation := donate.Text(ConversationPartner(path))

			for _, message := range doc.Find("div", blockClasses...) {
				sender := senderRole(firstString(first(message.Find("div", titleClasses...))), partner)
				ts := firstTimestamp(first(message.Find("div", messageTime...)))
				for _, a := range message.Find("a") {
					t.Append(donate.Text(kind), ts, href(a), sender, conversation)
				}
			}
		})
	e.dir = inboxDir
	e.kind = "link_shared_in_dm"
	return e
}

// senderRole maps a message author to "other" or "self". It is null when
// either name is unknown.
func senderRole(sender, partner donate.Value) donate.Value {
	if sender.IsNull() || partner.IsNull() {
		return donate.Null()
	}
	if sender.String() == partner.String() {
		return donate.Text("other")
	}
	return donate.Text("self")
}

// ConversationPartner returns the conversation directory of a message page
// below the inbox, such as "anna_1234" for
// ".../messages/inbox/anna_1234/message_1.html".
func ConversationPartner(path string) string {
	rest := path
	if i := strings.Index(path, inboxDir); i >= 0 {
		rest = path[i+len(inboxDir):]
	}
	if dir, _, ok := strings.Cut(rest, "/"); ok {
		return dir
	}
	return strings.TrimSuffix(rest, ".html")
}

// NewSavedPosts extracts saved posts. Titles, dates and links are listed
// in parallel and matched by position.
func NewSavedPosts(parser donate.HTMLParser) *HTMLExtractor {
	return newHTML(parser, "instagram.saved_posts",
		[]string{"type", "timestamp", "user_name", "link"},
		[]target{{suffix: "your_instagram_activity/saved/saved_posts.html", kind: "saved_post"}},
		func(doc donate.Node, _, kind string, t *donate.Table) {
			titles := doc.Find("div", titleClasses...)
			dates := doc.Find("td", timeClasses...)
			for i, a := range doc.Find("a") {
				t.Append(donate.Text(kind), timestamp(nth(dates, i)), text(nth(titles, i)), text(a))
			}
		})
}
