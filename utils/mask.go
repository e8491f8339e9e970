package utils

import (
	"strings"
)

//
// ===========================================================
//  CUSTOMER MASKING
// ===========================================================
//

// maskMiddle keeps the first head and last tail runes and stars the rest.
// When the input is too short the star run is empty and the kept parts
// never overlap, so the result is never longer than the input.
func maskMiddle(s string, head, tail int) string {
	r := []rune(s)
	n := len(r)
	if head > n {
		head = n
	}
	if tail > n-head {
		tail = n - head
	}
	stars := n - head - tail
	return string(r[:head]) + strings.Repeat("*", stars) + string(r[n-tail:])
}

// MaskIDNumber → "AB123456789" becomes "AB******789".
func MaskIDNumber(id string) string {
	return maskMiddle(id, 2, 3)
}

// MaskPhone keeps the first 4 and last 2 digits.
func MaskPhone(phone string) string {
	return maskMiddle(phone, 4, 2)
}

// MaskEmail keeps the first 4 characters of the local part and the whole
// domain: "johnsmith@mail.com" → "john*****@mail.com".
func MaskEmail(email string) string {
	local, domain, hasDomain := strings.Cut(email, "@")
	masked := maskMiddle(local, 4, 0)
	if !hasDomain {
		return masked
	}
	return masked + "@" + domain
}
