package instagram

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/jsonfield"
)

// Ensure JSONExtractor implements donate.Extractor at compile time.
var _ donate.Extractor = (*JSONExtractor)(nil)

// JSONExtractor extracts one record kind from an Instagram JSON export.
type JSONExtractor struct {
	extractor
	decode func(data []byte, kind string, t *donate.Table) error
}

// Extract reads every target file and decodes its records.
func (e *JSONExtractor) Extract(a donate.Archive) (*donate.Table, error) {
	t := donate.NewTable(e.name, e.columns...)
	err := e.each(a, func(path, kind string, data []byte) error {
		if err := jsonfield.Check(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return e.decode(data, kind, t)
	})
	return t, err
}

// stringListEntry reads the first string_list_data element of a record.
func stringListEntry(entry []byte, field string) donate.Value {
	return jsonfield.Value(entry, "string_list_data", "[0]", field)
}

// NewAccountSettingJSON reports whether the account is private.
// The string_map_data key is localized; German and English exports are
// recognized.
func NewAccountSettingJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.account_setting",
			columns: []string{"type", "setting"},
			targets: []target{{suffix: "personal_information/personal_information/personal_information.json", kind: "account_private"}},
		},
		decode: func(data []byte, kind string, t *donate.Table) error {
			for _, label := range []string{"Privates Konto", "Private account"} {
				v := jsonfield.Value(data, "profile_user", "[0]", "string_map_data", label, "value")
				if !v.IsNull() {
					t.Append(donate.Text(kind), v)
					return nil
				}
			}
			return donate.Errorf(donate.ENOTFOUND, "no private account setting in profile")
		},
	}
}

// NewLikesJSON extracts liked posts and liked comments. The record kind is
// the top-level key of each file, such as "likes_media_likes".
func NewLikesJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.likes",
			columns: []string{"type", "timestamp", "user_name", "link"},
			targets: []target{
				{suffix: "your_instagram_activity/likes/liked_posts.json"},
				{suffix: "your_instagram_activity/likes/liked_comments.json"},
			},
		},
		decode: func(data []byte, _ string, t *donate.Table) error {
			return eachKeyedRecord(data, func(key string, entry []byte) {
				t.Append(donate.Text(key),
					stringListEntry(entry, "timestamp"),
					jsonfield.Value(entry, "title"),
					stringListEntry(entry, "href"))
			})
		},
	}
}

// NewFollowingJSON extracts the accounts the participant follows.
func NewFollowingJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.following",
			columns: []string{"type", "timestamp", "name", "link"},
			targets: []target{{suffix: "connections/followers_and_following/following.json"}},
		},
		decode: func(data []byte, _ string, t *donate.Table) error {
			return eachKeyedRecord(data, func(key string, entry []byte) {
				t.Append(donate.Text(key),
					stringListEntry(entry, "timestamp"),
					stringListEntry(entry, "value"),
					stringListEntry(entry, "href"))
			})
		},
	}
}

// NewFollowersJSON extracts the participant's followers. Unlike the other
// files, followers_1.json holds a top-level array.
func NewFollowersJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.followers",
			columns: []string{"type", "timestamp", "name", "link"},
			targets: []target{{suffix: "connections/followers_and_following/followers_1.json", kind: "follower"}},
		},
		decode: func(data []byte, kind string, t *donate.Table) error {
			return jsonfield.EachElement(data, func(entry []byte) {
				t.Append(donate.Text(kind),
					stringListEntry(entry, "timestamp"),
					stringListEntry(entry, "value"),
					stringListEntry(entry, "href"))
			})
		},
	}
}

// NewTopicsJSON extracts the topics Instagram assigned to the participant.
func NewTopicsJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.topics",
			columns: []string{"type", "topic"},
			targets: []target{{suffix: "preferences/your_topics/your_topics.json"}},
		},
		decode: func(data []byte, _ string, t *donate.Table) error {
			return eachKeyedRecord(data, func(key string, entry []byte) {
				t.Append(donate.Text(key), jsonfield.Value(entry, "string_map_data", "Name", "value"))
			})
		},
	}
}

// NewSavedPostsJSON extracts saved posts.
func NewSavedPostsJSON() *JSONExtractor {
	return &JSONExtractor{
		extractor: extractor{
			name:    "instagram.json.saved_posts",
			columns: []string{"type", "timestamp", "name", "link"},
			targets: []target{{suffix: "your_instagram_activity/saved/saved_posts.json"}},
		},
		decode: func(data []byte, _ string, t *donate.Table) error {
			return eachKeyedRecord(data, func(key string, entry []byte) {
				t.Append(donate.Text(key),
					jsonfield.Value(entry, "string_map_data", "Saved on", "timestamp"),
					jsonfield.Value(entry, "title"),
					jsonfield.Value(entry, "string_map_data", "Saved on", "href"))
			})
		},
	}
}

// eachKeyedRecord walks files shaped as {"<kind>": [record, ...], ...},
// calling fn for every record with the key it was listed under.
func eachKeyedRecord(data []byte, fn func(key string, entry []byte)) error {
	var errs []error
	err := jsonfield.EachMember(data, func(key string, value []byte, dataType jsonparser.ValueType) {
		if dataType != jsonparser.Array {
			return
		}
		if err := jsonfield.EachElement(value, func(entry []byte) { fn(key, entry) }); err != nil {
			errs = append(errs, err)
		}
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}
