/*
Package letters holds the letter tables for Arabic-script shaping.

A letter table maps a logical base letter to its four positional presentation
glyphs (isolated, initial, medial, final). An empty slot (rune 0) means the
letter has no glyph for that position, which in turn defines how the letter
joins with its neighbours:

  - a letter connects to the letter before it if it has a final or medial form,
  - a letter connects to the letter after it if it has an initial or medial form.

Three table variants are provided, see [Variant]. Tables are created once per
process and never change afterwards; they may be shared freely between
goroutines.

The package also classifies the side-channel code points shaping has to care
about: harakat (diacritics), TATWEEL and ZERO WIDTH JOINER.
*/
package letters
