package phone

import (
	"golang.org/x/text/language"

	"github.com/AlexTLDR/phonenorm/internal/country"
)

// LocaleResolver finds a country for a language tag.
type LocaleResolver interface {
	ByLocale(tag language.Tag) (*country.Country, bool)
	Fallback() *country.Country
}

// DefaultCountry picks the country a bare local number belongs to:
// preferred when set, else the country of the tag's region, else the
// registry fallback.
func DefaultCountry(reg LocaleResolver, preferred *country.Country, tag language.Tag) *country.Country {
	if preferred != nil {
		return preferred
	}
	if c, ok := reg.ByLocale(tag); ok {
		return c
	}
	return reg.Fallback()
}

// FromLocal builds a number from a local number typed without any country
// information, the country being picked as DefaultCountry does.
func FromLocal(reg LocaleResolver, preferred *country.Country, tag language.Tag, localNumber string) (*Number, error) {
	return New(DefaultCountry(reg, preferred, tag), localNumber)
}
