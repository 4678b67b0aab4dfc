package phone

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/AlexTLDR/phonenorm/internal/country"
)

// Registry is the view of the country registry needed to resolve numbers.
// All must return the countries in canonical order: when several
// countries share a calling code or a prefix, the first one wins.
type Registry interface {
	All() []*country.Country
	ByCallingCode(code int) (*country.Country, bool)
	ByName(name string) (*country.Country, error)
}

// numberPattern matches an optional "+", an optional calling code followed
// by a bracketed national prefix, and the rest of the number.
var numberPattern = regexp.MustCompile(`^(\+?)(?:([0-9A-Za-z]+)[\[(]([0-9A-Za-z]+)[\])])?([0-9A-Za-z]+)$`)

// Parser turns textual phone numbers into Numbers using a registry.
// A Parser is safe for concurrent use.
type Parser struct {
	registry Registry
}

// NewParser creates a parser resolving countries against reg.
func NewParser(reg Registry) *Parser {
	return &Parser{registry: reg}
}

var defaultParser = sync.OnceValue(func() *Parser { return NewParser(country.Default()) })

// Parse parses text with the default country registry. See Parser.Parse.
func Parse(text string, checkCodeValidity bool) (*Number, error) {
	return defaultParser().Parse(text, checkCodeValidity)
}

// Parse extracts a phone number from text. Accepted notations are those
// produced by the Number renderers, with any separator in between:
//
//	01 23 45 67 89          national
//	+33 123 456 789         international
//	0033 123 456 789        international with exit prefix
//	+33 (0) 123 456 789     international with national prefix
//
// When checkCodeValidity is true, a bracketed national prefix must match
// the national prefix of the country given by the calling code. Otherwise
// the bracketed prefix is ignored.
//
// Countries sharing a calling code or a prefix resolve to the first one in
// the registry order.
func (p *Parser) Parse(text string, checkCodeValidity bool) (*Number, error) {
	cleaned := cleanText(text)
	m := numberPattern.FindStringSubmatch(cleaned)
	if m == nil || m[4] == "" {
		return nil, invalidf("%q is not a phone number", text)
	}
	plus, intlCode, natCode, rest := m[1], m[2], m[3], m[4]

	if plus == "" {
		if intlCode != "" {
			return nil, invalidf("%q has a bracketed prefix without a leading '+'", text)
		}
		return p.resolveDialed(rest)
	}
	if intlCode == "" {
		return p.resolveCallingCode(rest)
	}

	code, err := strconv.Atoi(intlCode)
	if err != nil {
		return nil, invalidf("calling code %q is not a number", intlCode)
	}
	c, ok := p.registry.ByCallingCode(code)
	if !ok {
		return nil, invalidf("no country with calling code %d", code)
	}
	if checkCodeValidity && natCode != "" && natCode != c.NationalPrefix() {
		return nil, invalidf("national prefix %q does not match calling code %d", natCode, code)
	}
	return New(c, rest)
}

// resolveCallingCode handles "+<calling code><local number>".
func (p *Parser) resolveCallingCode(full string) (*Number, error) {
	for _, c := range p.registry.All() {
		code := strconv.Itoa(c.CallingCode())
		if strings.HasPrefix(full, code) {
			return New(c, full[len(code):])
		}
	}
	return nil, invalidf("no country matches %q", full)
}

// resolveDialed handles numbers without "+": first as
// "<exit prefix><calling code><local number>", then as
// "<national prefix><local number>".
func (p *Parser) resolveDialed(full string) (*Number, error) {
	countries := p.registry.All()
	for _, c := range countries {
		exit := c.ExitPrefix()
		if exit == "" || !strings.HasPrefix(full, exit) {
			continue
		}
		rest := full[len(exit):]
		code := strconv.Itoa(c.CallingCode())
		if strings.HasPrefix(rest, code) {
			return New(c, rest[len(code):])
		}
	}
	for _, c := range countries {
		if prefix := c.NationalPrefix(); strings.HasPrefix(full, prefix) {
			return New(c, full[len(prefix):])
		}
	}
	return nil, invalidf("no country matches %q", full)
}

// cleanText keeps ASCII letters and digits, '+' and brackets.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= '0' && ch <= '9', ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z':
			b.WriteByte(ch)
		case ch == '+', ch == '(', ch == ')', ch == '[', ch == ']':
			b.WriteByte(ch)
		}
	}
	return b.String()
}
