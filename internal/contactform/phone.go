package contactform

import "strings"

const maxPhoneDigits = 10

// FormatPhone keeps up to ten digits and lays them out as (ddd) ddd-dddd,
// inserting separators only as far as the digits reach.
func FormatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == maxPhoneDigits {
				break
			}
		}
	}

	d := digits.String()
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}
