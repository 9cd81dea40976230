package letters

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Harakat is the set of Arabic diacritics which shaping handles out of band.
var Harakat = buildHarakat()

func buildHarakat() *unicode.RangeTable {
	spans := [][2]rune{
		{0x0610, 0x061A},
		{0x064B, 0x065F},
		{0x0670, 0x0670},
		{0x06D6, 0x06DC},
		{0x06DF, 0x06E8},
		{0x06EA, 0x06ED},
		{0x08D4, 0x08ED},
		{0x08E3, 0x08FF},
	}
	var rs []rune
	for _, s := range spans {
		for r := s[0]; r <= s[1]; r++ {
			rs = append(rs, r)
		}
	}
	return rangetable.New(rs...)
}

// IsHarakat reports whether r is an Arabic diacritic.
func IsHarakat(r rune) bool {
	return unicode.Is(Harakat, r)
}
