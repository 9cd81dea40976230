/*
Package ligatures holds the table of Arabic presentation-form ligatures.

Every ligature has a stable name, which doubles as its configuration key, one
or more logical letter sequences it replaces, and up to four positional glyphs.
A zero glyph means the ligature does not exist in that position; the letters
are then shaped one by one.

Ligatures are declared in priority order: sentences first, then words, then
letter combinations. Longer matches always win over shorter ones.
*/
package ligatures
