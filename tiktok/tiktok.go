// Package tiktok extracts records from TikTok JSON data exports.
//
// A TikTok export holds one large JSON document (user_data.json or
// user_data_tiktok.json, depending on the export version). Extractors scan
// every JSON entry of the archive and read fixed key paths from each one;
// entries without the key path contribute nothing.
package tiktok

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/jsonfield"
)

// Ensure Extractor implements donate.Extractor at compile time.
var _ donate.Extractor = (*Extractor)(nil)

// decoder appends the records found in one JSON document. It returns
// ENOTFOUND when the document does not hold its key path.
type decoder func(data []byte, t *donate.Table) error

// Extractor extracts one family of records from a TikTok export.
type Extractor struct {
	name     string
	columns  []string
	decoders []decoder
}

// Name returns the extractor identifier.
func (e *Extractor) Name() string { return e.name }

// Columns returns the declared column schema.
func (e *Extractor) Columns() []string { return e.columns }

// Extract runs every decoder over every JSON entry of the archive.
func (e *Extractor) Extract(a donate.Archive) (*donate.Table, error) {
	t := donate.NewTable(e.name, e.columns...)

	var errs []error
	found := false
	for _, name := range a.Entries() {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := donate.ReadFile(a, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := jsonfield.Check(data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		for _, decode := range e.decoders {
			err := decode(data, t)
			switch donate.ErrorCode(err) {
			case "":
				found = true
			case donate.ENOTFOUND:
			default:
				found = true
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	if !found && len(errs) == 0 {
		return t, donate.Errorf(donate.ENOTFOUND, "%s: no JSON entry holds this data", e.name)
	}
	return t, errors.Join(errs...)
}

// list decodes an array of records, writing kind followed by the named
// fields of each record.
func list(kind string, path []string, fields ...string) decoder {
	return func(data []byte, t *donate.Table) error {
		return jsonfield.EachElement(data, func(elem []byte) {
			row := make([]donate.Value, 0, len(fields)+1)
			row = append(row, donate.Text(kind))
			for _, f := range fields {
				row = append(row, jsonfield.Value(elem, f))
			}
			t.Append(row...)
		}, path...)
	}
}

// object decodes a single record stored as an object.
func object(kind string, path []string, fields ...string) decoder {
	return func(data []byte, t *donate.Table) error {
		raw, dataType, err := jsonfield.Lookup(data, path...)
		if err != nil {
			return err
		}
		if dataType != jsonparser.Object {
			return donate.Errorf(donate.EINVALID, "key path %q is %s, want object", path, dataType)
		}
		row := []donate.Value{donate.Text(kind)}
		for _, f := range fields {
			row = append(row, jsonfield.Value(raw, f))
		}
		t.Append(row...)
		return nil
	}
}

func path(keys ...string) []string { return keys }

// NewFavorites extracts favorite videos, effects, hashtags and sounds.
func NewFavorites() *Extractor {
	return &Extractor{
		name:    "tiktok.favorites",
		columns: []string{"type", "timestamp", "link"},
		decoders: []decoder{
			list("favorite video", path("Activity", "Favorite Videos", "FavoriteVideoList"), "Date", "Link"),
			list("favorite effect", path("Activity", "Favorite Effects", "FavoriteEffectsList"), "Date", "EffectLink"),
			list("favorite hashtag", path("Activity", "Favorite Hashtags", "FavoriteHashtagList"), "Date", "Link"),
			list("favorite sound", path("Activity", "Favorite Sounds", "FavoriteSoundList"), "Date", "Link"),
		},
	}
}

// NewFollowers extracts the participant's followers. The link column holds
// the follower's user name.
func NewFollowers() *Extractor {
	return &Extractor{
		name:     "tiktok.followers",
		columns:  []string{"type", "timestamp", "link"},
		decoders: []decoder{list("followedby", path("Activity", "Follower List", "FansList"), "Date", "UserName")},
	}
}

// NewFollowing extracts the accounts the participant follows.
func NewFollowing() *Extractor {
	return &Extractor{
		name:     "tiktok.following",
		columns:  []string{"type", "timestamp", "link"},
		decoders: []decoder{list("follow", path("Activity", "Following List", "Following"), "Date", "UserName")},
	}
}

// NewHashtags extracts hashtags used in posts.
func NewHashtags() *Extractor {
	return &Extractor{
		name:     "tiktok.hashtags",
		columns:  []string{"type", "hashtag", "link"},
		decoders: []decoder{list("hashtag use", path("Activity", "Hashtag", "HashtagList"), "HashtagName", "HashtagLink")},
	}
}

// NewLogins extracts the login history.
func NewLogins() *Extractor {
	return &Extractor{
		name:    "tiktok.logins",
		columns: []string{"type", "timestamp", "model", "system", "networktype"},
		decoders: []decoder{
			list("login", path("Activity", "Login History", "LoginHistoryList"), "Date", "DeviceModel", "DeviceSystem", "NetworkType"),
		},
	}
}

// NewLocation extracts the most recent location.
func NewLocation() *Extractor {
	return &Extractor{
		name:    "tiktok.location",
		columns: []string{"type", "timestamp", "gps", "region"},
		decoders: []decoder{
			object("location", path("Activity", "Most Recent Location Data", "LocationData"), "Date", "GpsData", "LastRegion"),
		},
	}
}

// NewBlocklist extracts blocked accounts.
func NewBlocklist() *Extractor {
	return &Extractor{
		name:     "tiktok.blocklist",
		columns:  []string{"type", "timestamp", "username"},
		decoders: []decoder{list("block", path("App Settings", "Block", "BlockList"), "Date", "UserName")},
	}
}

// settings lists the app settings reported, as kind and SettingsMap key.
var settings = []struct{ kind, key string }{
	{"personalized ads", "Personalized Ads"},
	{"app language", "App Language"},
	{"interests", "Interests"},
}

// NewSettings extracts app settings, one row per setting.
func NewSettings() *Extractor {
	return &Extractor{
		name:    "tiktok.settings",
		columns: []string{"type", "value"},
		decoders: []decoder{func(data []byte, t *donate.Table) error {
			raw, dataType, err := jsonfield.Lookup(data, "App Settings", "Settings", "SettingsMap")
			if err != nil {
				return err
			}
			if dataType != jsonparser.Object {
				return donate.Errorf(donate.EINVALID, "SettingsMap is %s, want object", dataType)
			}
			for _, s := range settings {
				t.Append(donate.Text(s.kind), jsonfield.Value(raw, s.key))
			}
			return nil
		}},
	}
}

// NewVideos extracts videos the participant posted.
func NewVideos() *Extractor {
	return &Extractor{
		name:     "tiktok.videos",
		columns:  []string{"type", "timestamp", "view_settings", "likes"},
		decoders: []decoder{list("posted video", path("Video", "Videos", "VideoList"), "Date", "WhoCanView", "Likes")},
	}
}

// NewWatchHistory extracts the video browsing history.
func NewWatchHistory() *Extractor {
	return &Extractor{
		name:     "tiktok.watch_history",
		columns:  []string{"type", "timestamp", "link"},
		decoders: []decoder{list("watch", path("Activity", "Video Browsing History", "VideoList"), "Date", "Link")},
	}
}

// NewLikes extracts liked videos. Exports of accounts without likes hold
// null instead of an empty list.
func NewLikes() *Extractor {
	return &Extractor{
		name:     "tiktok.likes",
		columns:  []string{"type", "timestamp", "link"},
		decoders: []decoder{list("like", path("Activity", "Like List", "ItemFavoriteList"), "Date", "Link")},
	}
}

// NewShares extracts shared content.
func NewShares() *Extractor {
	return &Extractor{
		name:    "tiktok.shares",
		columns: []string{"type", "timestamp", "link", "shared_content", "method"},
		decoders: []decoder{
			list("share", path("Activity", "Share History", "ShareHistoryList"), "Date", "Link", "SharedContent", "Method"),
		},
	}
}

// NewSearches extracts the search history.
func NewSearches() *Extractor {
	return &Extractor{
		name:     "tiktok.searches",
		columns:  []string{"type", "timestamp", "search_term"},
		decoders: []decoder{list("search", path("Activity", "Search History", "SearchList"), "Date", "SearchTerm")},
	}
}

// NewAds extracts ad interest categories and activity reported by other
// apps and websites. Interest categories are one row with no timestamp or
// source.
func NewAds() *Extractor {
	return &Extractor{
		name:    "tiktok.ads",
		columns: []string{"type", "timestamp", "source", "event"},
		decoders: []decoder{
			func(data []byte, t *donate.Table) error {
				v := jsonfield.Value(data, "Ads and data", "Ad Interests", "AdInterestCategories")
				if v.IsNull() {
					return donate.Errorf(donate.ENOTFOUND, "no ad interest categories")
				}
				t.Append(donate.Text("ads_interests"), donate.Null(), donate.Null(), v)
				return nil
			},
			list("off_tt_ad_activity", path("Ads and data", "Off TikTok Activity", "OffTikTokActivityDataList"), "TimeStamp", "Source", "Event"),
		},
	}
}

// NewComments extracts comments the participant wrote.
func NewComments() *Extractor {
	return &Extractor{
		name:     "tiktok.comments",
		columns:  []string{"type", "timestamp", "comment", "photo", "url"},
		decoders: []decoder{list("comment", path("Comment", "Comments", "CommentsList"), "Date", "Comment", "Photo", "Url")},
	}
}

var watchLivePath = path("Tiktok Live", "Watch Live History", "WatchLiveMap")

// NewWatchLive extracts watched live streams. Streams are keyed by id in
// the export; rows keep the key order of the document.
func NewWatchLive() *Extractor {
	return &Extractor{
		name:    "tiktok.watch_live",
		columns: []string{"type", "id", "timestamp", "link", "questions"},
		decoders: []decoder{func(data []byte, t *donate.Table) error {
			return jsonfield.EachMember(data, func(id string, value []byte, _ jsonparser.ValueType) {
				t.Append(donate.Text("watch_live"), donate.Text(id),
					jsonfield.Value(value, "WatchTime"),
					jsonfield.Value(value, "Link"),
					jsonfield.Value(value, "Questions"))
			}, watchLivePath...)
		}},
	}
}

// NewWatchLiveComments extracts comments written during watched live
// streams, tagged with the stream id.
func NewWatchLiveComments() *Extractor {
	return &Extractor{
		name:    "tiktok.watch_live_comments",
		columns: []string{"type", "id", "timestamp", "content", "rawtime"},
		decoders: []decoder{func(data []byte, t *donate.Table) error {
			var errs []error
			err := jsonfield.EachMember(data, func(id string, value []byte, _ jsonparser.ValueType) {
				err := jsonfield.EachElement(value, func(c []byte) {
					t.Append(donate.Text("watch_live_comment"), donate.Text(id),
						jsonfield.Value(c, "CommentTime"),
						jsonfield.Value(c, "CommentContent"),
						jsonfield.Value(c, "RawTime"))
				}, "Comments")
				if donate.ErrorCode(err) == donate.EINVALID {
					errs = append(errs, err)
				}
			}, watchLivePath...)
			if err != nil {
				return err
			}
			return errors.Join(errs...)
		}},
	}
}
