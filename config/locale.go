package config

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.Dutch,
}

var matcher = language.NewMatcher(supported)

// MatchLocale maps a BCP 47 tag to the closest language the texts are
// translated to, such as nl-BE to nl. Unknown or malformed tags yield en.
func MatchLocale(requested string) string {
	tag, err := language.Parse(requested)
	if err != nil {
		return supported[0].String()
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return supported[0].String()
	}
	return supported[index].String()
}
