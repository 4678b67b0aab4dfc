package phone

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// serializationSeparator splits the country name from the local number.
const serializationSeparator = "/"

// Serialize returns "<country name>/<local number>", e.g. "FRANCE/123456789".
// Unlike the human readable forms, it names the country rather than its
// calling code and can be turned back into the same Number.
func (n *Number) Serialize() string {
	return n.country.Name() + serializationSeparator + n.local
}

// Unserialize reads the output of Serialize with the default registry.
func Unserialize(text string) (*Number, error) {
	return defaultParser().Unserialize(text)
}

// Unserialize reads the output of Serialize. The country name is matched
// ignoring case; the local number is taken verbatim.
func (p *Parser) Unserialize(text string) (*Number, error) {
	name, local, found := strings.Cut(text, serializationSeparator)
	if !found || name == "" || local == "" {
		return nil, invalidf("%q is not a serialized phone number", text)
	}
	c, err := p.registry.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return &Number{country: c, local: local}, nil
}

type jsonNumber struct {
	Country     string `json:"country"`
	LocalNumber string `json:"localNumber"`
}

// MarshalJSON encodes the number as {"country": ..., "localNumber": ...}.
func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNumber{Country: n.country.Name(), LocalNumber: n.local})
}

// UnmarshalJSON decodes the output of MarshalJSON, resolving the country
// in the default registry. The local number is already canonical and is
// taken verbatim; it must be non-empty and made of ASCII letters and digits.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v jsonNumber
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c, err := defaultParser().registry.ByName(v.Country)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if !isCanonicalLocal(v.LocalNumber) {
		return invalidf("%q is not a canonical local number", v.LocalNumber)
	}
	*n = Number{country: c, local: v.LocalNumber}
	return nil
}

func isCanonicalLocal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !(ch >= '0' && ch <= '9' || ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z') {
			return false
		}
	}
	return true
}

// Value stores the number in its serialized form.
func (n *Number) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}
	return n.Serialize(), nil
}

// Scan reads a serialized number from a database column.
func (n *Number) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into a phone number", ErrInvalidArgument)
	default:
		return fmt.Errorf("%w: cannot scan %T into a phone number", ErrInvalidArgument, src)
	}
	decoded, err := Unserialize(text)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// NullNumber is a phone number column that may be NULL.
type NullNumber struct {
	Number *Number
	Valid  bool
}

// Scan implements sql.Scanner.
func (nn *NullNumber) Scan(src any) error {
	if src == nil {
		nn.Number, nn.Valid = nil, false
		return nil
	}
	var n Number
	if err := n.Scan(src); err != nil {
		return err
	}
	nn.Number, nn.Valid = &n, true
	return nil
}

// Value implements driver.Valuer.
func (nn NullNumber) Value() (driver.Value, error) {
	if !nn.Valid || nn.Number == nil {
		return nil, nil
	}
	return nn.Number.Serialize(), nil
}
