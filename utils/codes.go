package utils

import (
	"math/rand/v2"
	"strings"
)

//
// ===========================================================
//  RESERVATION & CANCEL CODE GENERATORS
// ===========================================================
//

const (
	upperCharset       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitCharset       = "0123456789"
	alnumCharset       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	ReservationCodeLen = 7
	CancelCodeLen      = 26
)

// GenerateReservationCode → "ABC1234" (3 uppercase letters then 4 digits).
// Not cryptographically random and not checked for collisions.
func GenerateReservationCode() string {
	var sb strings.Builder
	sb.Grow(ReservationCodeLen)
	writeRandom(&sb, upperCharset, 3)
	writeRandom(&sb, digitCharset, 4)
	return sb.String()
}

// GenerateCancelCode → 12 uppercase + 6 digits + 8 alphanumerics.
func GenerateCancelCode() string {
	var sb strings.Builder
	sb.Grow(CancelCodeLen)
	writeRandom(&sb, upperCharset, 12)
	writeRandom(&sb, digitCharset, 6)
	writeRandom(&sb, alnumCharset, 8)
	return sb.String()
}

func writeRandom(sb *strings.Builder, charset string, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(charset[rand.IntN(len(charset))])
	}
}
