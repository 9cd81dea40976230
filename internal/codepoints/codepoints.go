/*
Package codepoints prepares command line input and describes reshaped
output code point by code point.
*/
package codepoints

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/arshape/letters"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Clean replaces ill-formed UTF-8 by U+FFFD. With nfc set, the text is
// brought into normalization form C as well, which composes letters given
// as ALEF plus combining HAMZA or MADDA. NFC may reorder stacked diacritics.
func Clean(s string, nfc bool) string {
	var t transform.Transformer = runes.ReplaceIllFormed()
	if nfc {
		t = transform.Chain(t, norm.NFC)
	}
	if out, _, err := transform.String(t, s); err == nil {
		return out
	}
	return s
}

// StripHarakat removes Arabic diacritics from s.
func StripHarakat(s string) string {
	if out, _, err := transform.String(runes.Remove(runes.In(letters.Harakat)), s); err == nil {
		return out
	}
	return s
}

// Parse reads a list of code points separated by commas or white space.
// Tokens may be prefixed by U+ or 0x and are read as hexadecimal.
func Parse(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// Format renders the code points of s as "U+0627 U+0644 …".
func Format(s string) string {
	parts := make([]string, 0, len(s)/2)
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("%U", r))
	}
	return strings.Join(parts, " ")
}

// Info describes a single code point of reshaped text.
type Info struct {
	Rune rune
	Name string       // Unicode character name
	Form letters.Form // NotSupported unless r is a positional presentation form
	Base rune         // first letter the glyph stands for, or 0
}

// Describe returns one Info per code point of s.
func Describe(s string) []Info {
	infos := make([]Info, 0, len(s)/2)
	for _, r := range s {
		info := Info{Rune: r, Name: runenames.Name(r), Form: letters.NotSupported}
		if p, ok := letters.LookupPresentation(r); ok {
			info.Form, info.Base = p.Form, p.Base
		}
		infos = append(infos, info)
	}
	return infos
}

// Rows formats the descriptions of s as table rows, headed by a title row.
func Rows(s string) [][]string {
	rows := [][]string{{"Code", "Char", "Form", "Name"}}
	for _, info := range Describe(s) {
		form := "-"
		if info.Form != letters.NotSupported {
			form = fmt.Sprintf("%s of %U", strings.ToLower(info.Form.String()), info.Base)
		}
		ch := string(info.Rune)
		if letters.IsHarakat(info.Rune) || info.Rune == letters.ZWJ {
			ch = "◌" + ch
		}
		rows = append(rows, []string{fmt.Sprintf("%U", info.Rune), ch, form, info.Name})
	}
	return rows
}
