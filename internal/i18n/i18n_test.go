package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestGetLanguageFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		cookie   string
		accept   string
		expected language.Tag
	}{
		{name: "default", target: "/", expected: language.English},
		{name: "query parameter", target: "/?lang=fr-FR", expected: language.MustParse("fr-FR")},
		{name: "cookie", target: "/", cookie: "ro", expected: language.Romanian},
		{name: "query wins over cookie", target: "/?lang=de", cookie: "ro", expected: language.German},
		{name: "accept language", target: "/", accept: "fr-CH, fr;q=0.9, en;q=0.8", expected: language.MustParse("fr-CH")},
		{name: "unsupported query falls through", target: "/?lang=ja", accept: "ro-RO", expected: language.MustParse("ro-RO")},
		{name: "garbage", target: "/?lang=%21%21", expected: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.expected, GetLanguageFromRequest(r))
		})
	}
}

func TestDisplayLanguage(t *testing.T) {
	assert.Equal(t, language.French, DisplayLanguage(language.MustParse("fr-CA")))
	assert.Equal(t, language.English, DisplayLanguage(language.Japanese))
}

func TestClientTag(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, language.Und, ClientTag(r))

	r.Header.Set("Accept-Language", "es-ES, en;q=0.5")
	assert.Equal(t, language.MustParse("es-ES"), ClientTag(r))
	assert.Equal(t, language.English, GetLanguageFromRequest(r))
}
