package validators

import "strings"

// NormalizePhone strips spaces, dashes, dots and parentheses. It returns ""
// when what remains is not an optional "+" followed by 7 to 15 digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return ""
		}
	}

	out := b.String()
	digits := strings.TrimPrefix(out, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return ""
	}
	return out
}

func IsPhoneValid(phone string) bool {
	return NormalizePhone(phone) != ""
}
