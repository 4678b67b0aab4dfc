package phone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// E164 checks the number against the libphonenumber metadata of its
// country and returns it in E.164 format (e.g. +33384583418).
func (n *Number) E164() (string, error) {
	region := strings.ToUpper(n.country.ISO())
	num, err := phonenumbers.Parse("+"+strconv.Itoa(n.country.CallingCode())+n.local, region)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %s is not a valid number for %s", ErrInvalidArgument, n.InternationalForm(), n.country.Name())
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
