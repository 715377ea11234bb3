// Package extract selects and runs the extractors for an export archive.
package extract

import (
	"path"
	"strings"

	"github.com/fwojciec/donate"
)

// Ensure Detector implements donate.FormatDetector at compile time.
var _ donate.FormatDetector = (*Detector)(nil)

// instagramMarkers are directories present in every Instagram export,
// whatever its file format.
var instagramMarkers = []string{
	"your_instagram_activity/",
	"connections/followers_and_following/",
	"personal_information/personal_information/",
	"ads_information/",
	"logged_information/",
}

// tiktokFiles are the names of the document holding a TikTok export.
var tiktokFiles = []string{"user_data.json", "user_data_tiktok.json"}

// Detector identifies the export format from the entry paths of an archive.
// It checks for the file names TikTok uses for its single export document
// and for directories unique to Instagram exports. Instagram exports are
// classified as HTML or JSON by the extension most of their files carry.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the format of the archive, or FormatUnknown.
func (d *Detector) Detect(a donate.Archive) donate.Format {
	var htmlCount, jsonCount int
	for _, name := range a.Entries() {
		base := path.Base(name)
		for _, f := range tiktokFiles {
			if base == f {
				return donate.FormatTikTok
			}
		}

		if !d.isInstagram(name) {
			continue
		}
		switch path.Ext(name) {
		case ".html":
			htmlCount++
		case ".json":
			jsonCount++
		}
	}

	switch {
	case htmlCount == 0 && jsonCount == 0:
		return donate.FormatUnknown
	case htmlCount >= jsonCount:
		return donate.FormatInstagramHTML
	default:
		return donate.FormatInstagramJSON
	}
}

// isInstagram checks whether name lies below an Instagram export directory.
func (d *Detector) isInstagram(name string) bool {
	for _, marker := range instagramMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
