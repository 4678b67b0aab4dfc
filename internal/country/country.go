// Package country provides the registry of countries used to resolve
// phone numbers: calling codes, national trunk prefixes and international
// exit prefixes, in a fixed canonical order.
package country

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	defaultExitPrefix     = "00"
	defaultNationalPrefix = "0"
)

// Continent is a broad geographical area a country belongs to.
type Continent string

const (
	Europe       Continent = "europe"
	NorthAmerica Continent = "north_america"
	SouthAmerica Continent = "south_america"
	Asia         Continent = "asia"
	Oceania      Continent = "oceania"
	Africa       Continent = "africa"
)

// Country is one entry of a Registry. Entries are handed out as pointers
// and compared by identity.
type Country struct {
	name           string
	iso            string
	callingCode    int
	exitPrefix     string
	nationalPrefix string
	continents     []Continent
	sovereign      *Country
	position       int
}

// Name returns the canonical identifier, e.g. "FRANCE".
func (c *Country) Name() string {
	return c.name
}

// ISO returns the lower-case ISO 3166-1 alpha-2 code.
func (c *Country) ISO() string {
	return c.iso
}

// CallingCode returns the international calling code, e.g. 33 for France.
func (c *Country) CallingCode() int {
	return c.callingCode
}

// NationalPrefix returns the trunk prefix dialed before a local number
// inside the country. It may be empty.
func (c *Country) NationalPrefix() string {
	return c.nationalPrefix
}

// ExitPrefix returns the prefix dialed inside the country to reach an
// international number.
func (c *Country) ExitPrefix() string {
	return c.exitPrefix
}

// Region returns the region subtag matching the ISO code, or the unknown
// region ("ZZ") when the code is not a known ISO 3166-1 region.
func (c *Country) Region() language.Region {
	r, err := language.ParseRegion(strings.ToUpper(c.iso))
	if err != nil {
		return language.Region{}
	}
	return r
}

// DisplayName returns the human readable name of the country in the given
// language. It falls back to the canonical name when no translation exists.
func (c *Country) DisplayName(tag language.Tag) string {
	if name := display.Regions(tag).Name(c.Region()); name != "" {
		return name
	}
	return c.name
}

// Sovereign returns the country this territory depends on, or nil.
func (c *Country) Sovereign() *Country {
	return c.sovereign
}

// Root follows the sovereign chain up to an independent country.
func (c *Country) Root() *Country {
	current := c
	for current.sovereign != nil {
		current = current.sovereign
	}
	return current
}

// HasContinent reports whether the country lies on the given continent.
func (c *Country) HasContinent(continent Continent) bool {
	for _, ct := range c.continents {
		if ct == continent {
			return true
		}
	}
	return false
}

// Continents returns the continents of the country.
func (c *Country) Continents() []Continent {
	out := make([]Continent, len(c.continents))
	copy(out, c.continents)
	return out
}

// IsFrance reports whether the country is France or one of its territories.
func (c *Country) IsFrance() bool {
	return c.name == "FRANCE" || (c.sovereign != nil && c.sovereign.name == "FRANCE")
}

// String returns the canonical name.
func (c *Country) String() string {
	return c.name
}

// Compare orders countries by their position in the registry.
// A nil country sorts before any other.
func Compare(a, b *Country) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.position < b.position:
		return -1
	case a.position > b.position:
		return 1
	default:
		return strings.Compare(a.name, b.name)
	}
}
