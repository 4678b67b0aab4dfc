package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Supported lists the languages country names are offered in. The first
// one is the default.
var Supported = []language.Tag{
	language.English,
	language.French,
	language.Romanian,
	language.German,
}

var matcher = language.NewMatcher(Supported)

// candidates returns the language preferences of the request in priority
// order: the "lang" query parameter, the "lang" cookie, Accept-Language.
func candidates(r *http.Request) [][]language.Tag {
	var raw []string
	if lang := r.URL.Query().Get("lang"); lang != "" {
		raw = append(raw, lang)
	}
	if cookie, err := r.Cookie("lang"); err == nil && cookie.Value != "" {
		raw = append(raw, cookie.Value)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		raw = append(raw, accept)
	}

	var result [][]language.Tag
	for _, candidate := range raw {
		tags, _, err := language.ParseAcceptLanguage(candidate)
		if err != nil || len(tags) == 0 {
			continue
		}
		result = append(result, tags)
	}
	return result
}

// GetLanguageFromRequest extracts the language from the request, keeping
// the first candidate that matches a supported language.
// The returned tag keeps the region of the client when it has one.
func GetLanguageFromRequest(r *http.Request) language.Tag {
	for _, tags := range candidates(r) {
		_, _, conf := matcher.Match(tags...)
		if conf != language.No {
			return tags[0]
		}
	}
	return Supported[0]
}

// ClientTag returns the preferred tag of the client whether or not it is a
// supported language, or language.Und when the request carries none.
func ClientTag(r *http.Request) language.Tag {
	if all := candidates(r); len(all) > 0 {
		return all[0][0]
	}
	return language.Und
}

// DisplayLanguage returns the supported language closest to tag.
func DisplayLanguage(tag language.Tag) language.Tag {
	_, index, _ := matcher.Match(tag)
	return Supported[index]
}
