// Package phone parses free-form international phone numbers into a
// canonical (country, local number) value and renders that value back
// into standard textual forms.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexTLDR/phonenorm/internal/country"
)

// ErrInvalidArgument is the single error kind of the package. Every
// construction, parsing or unserialization failure wraps it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Number is a phone number normalized to its country and its local
// number. The local number holds only digits and upper case letters and
// never starts with the national prefix of the country.
//
// A Number is not safe for concurrent mutation.
type Number struct {
	country *country.Country
	local   string
}

// New creates a number from a country and a raw local number. The local
// number is normalized: upper-cased, stripped of every character that is
// not an ASCII letter or digit, and stripped once of the national prefix.
func New(c *country.Country, localNumber string) (*Number, error) {
	if c == nil {
		return nil, invalidf("country is required")
	}
	local, err := normalizeLocal(c, localNumber)
	if err != nil {
		return nil, err
	}
	return &Number{country: c, local: local}, nil
}

// Country returns the country of the number, never nil.
func (n *Number) Country() *country.Country {
	return n.country
}

// LocalNumber returns the normalized local number without national prefix.
func (n *Number) LocalNumber() string {
	return n.local
}

// SetCountry replaces the country. The stored local number is left as is.
func (n *Number) SetCountry(c *country.Country) error {
	if c == nil {
		return invalidf("country is required")
	}
	n.country = c
	return nil
}

// SetLocalNumber normalizes and stores a new local number against the
// current country.
func (n *Number) SetLocalNumber(localNumber string) error {
	local, err := normalizeLocal(n.country, localNumber)
	if err != nil {
		return err
	}
	n.local = local
	return nil
}

// normalizeLocal keeps ASCII letters and digits only, upper-cased, then
// removes the national prefix once if something remains after it.
func normalizeLocal(c *country.Country, raw string) (string, error) {
	if raw == "" {
		return "", invalidf("local number is required")
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch >= '0' && ch <= '9', ch >= 'A' && ch <= 'Z':
			b.WriteByte(ch)
		case ch >= 'a' && ch <= 'z':
			b.WriteByte(ch - 'a' + 'A')
		}
	}
	local := b.String()
	if local == "" {
		return "", invalidf("local number %q has no letter or digit", raw)
	}
	if prefix := c.NationalPrefix(); prefix != "" && len(local) > len(prefix) && strings.HasPrefix(local, prefix) {
		local = local[len(prefix):]
	}
	return local, nil
}

// Equal reports whether both numbers have the same country entry and the
// same local number, ignoring case.
func (n *Number) Equal(o *Number) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.country == o.country && strings.EqualFold(n.local, o.local)
}

// Compare orders numbers by country, using the registry order, then by
// local number ignoring case. A nil number sorts before any other.
func (n *Number) Compare(o *Number) int {
	switch {
	case n == o:
		return 0
	case n == nil:
		return -1
	case o == nil:
		return 1
	}
	if cmp := country.Compare(n.country, o.country); cmp != 0 {
		return cmp
	}
	return strings.Compare(strings.ToUpper(n.local), strings.ToUpper(o.local))
}

// String returns the serialized form, see Serialize.
func (n *Number) String() string {
	return n.Serialize()
}
