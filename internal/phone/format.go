package phone

import (
	"fmt"
	"strconv"
	"strings"
)

// Form selects one of the human readable renderings of a number.
type Form string

const (
	// National is the national prefix followed by the local number,
	// e.g. "01 23 45 67 89".
	National Form = "national"
	// International is "+<calling code>" followed by the local number,
	// e.g. "+33 123 456 789".
	International Form = "international"
	// InternationalExit uses the exit prefix of the country instead of
	// "+", e.g. "0033 123 456 789".
	InternationalExit Form = "international-exit"
	// InternationalNational adds the national prefix between parentheses,
	// e.g. "+33 (0) 123 456 789".
	InternationalNational Form = "international-national"
)

// Forms lists every supported form.
var Forms = []Form{National, International, InternationalExit, InternationalNational}

// ParseForm resolves a form by name.
func ParseForm(name string) (Form, error) {
	f := Form(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Forms {
		if f == known {
			return f, nil
		}
	}
	return "", invalidf("unknown form %q", name)
}

// Format renders the number in the given form.
func (n *Number) Format(f Form) (string, error) {
	switch f {
	case National:
		return n.NationalForm(), nil
	case International:
		return n.InternationalForm(), nil
	case InternationalExit:
		return n.InternationalFormWithExitPrefix(), nil
	case InternationalNational:
		return n.InternationalNationalForm(), nil
	default:
		return "", invalidf("unknown form %q", string(f))
	}
}

// NationalForm renders the number as dialed inside its country.
func (n *Number) NationalForm() string {
	var b strings.Builder
	writeGroups(&b, n.country.NationalPrefix()+n.local)
	return b.String()
}

// InternationalForm renders the number with a "+" and the calling code.
func (n *Number) InternationalForm() string {
	var b strings.Builder
	b.WriteByte('+')
	b.WriteString(strconv.Itoa(n.country.CallingCode()))
	b.WriteByte(' ')
	writeGroups(&b, n.local)
	return b.String()
}

// InternationalFormWithExitPrefix renders the number with the exit
// prefix of its own country and the calling code.
func (n *Number) InternationalFormWithExitPrefix() string {
	var b strings.Builder
	b.WriteString(n.country.ExitPrefix())
	b.WriteString(strconv.Itoa(n.country.CallingCode()))
	b.WriteByte(' ')
	writeGroups(&b, n.local)
	return b.String()
}

// InternationalNationalForm renders the international form with the
// national prefix between parentheses.
func (n *Number) InternationalNationalForm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "+%d (%s) ", n.country.CallingCode(), n.country.NationalPrefix())
	writeGroups(&b, n.local)
	return b.String()
}

// writeGroups writes s split in space separated groups of three characters
// when its length is a multiple of three, of two characters otherwise. The
// last group may be shorter.
func writeGroups(b *strings.Builder, s string) {
	size := 2
	if len(s)%3 == 0 {
		size = 3
	}
	for i := 0; i < len(s); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+size, len(s))
		b.WriteString(s[i:end])
	}
}
