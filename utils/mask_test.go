package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskIDNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "passport", in: "AB123456789", want: "AB******789"},
		{name: "exactly five keeps everything", in: "AB123", want: "AB123"},
		{name: "six masks one", in: "AB1234", want: "AB*234"},
		{name: "short input clamps", in: "ABC", want: "ABC"},
		{name: "two chars", in: "AB", want: "AB"},
		{name: "empty", in: "", want: ""},
		{name: "non-ascii", in: "ÄÖ12345Ü", want: "ÄÖ***45Ü"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaskIDNumber(tc.in)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, len([]rune(got)), len([]rune(tc.in)))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "long local part", in: "johnsmith@mail.com", want: "john*****@mail.com"},
		{name: "four char local part", in: "jane@mail.com", want: "jane@mail.com"},
		{name: "short local part", in: "jo@mail.com", want: "jo@mail.com"},
		{name: "no domain", in: "johnsmith", want: "john*****"},
		{name: "splits on first at", in: "abcdef@x@y", want: "abcd**@x@y"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskEmail(tc.in))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "twelve digits", in: "254712345678", want: "2547******78"},
		{name: "six digits", in: "123456", want: "123456"},
		{name: "short", in: "123", want: "123"},
		{name: "five digits", in: "12345", want: "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskPhone(tc.in))
		})
	}
}
