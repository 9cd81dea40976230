/*
Package arshape converts logical-order Arabic text into presentation forms.

Renderers without an OpenType shaping engine cannot choose the contextual
form of an Arabic letter on their own. A [Reshaper] does this on the level
of Unicode code points: every letter is replaced by its isolated, initial,
medial or final presentation glyph from the Arabic Presentation Forms
blocks, and enabled letter sequences are collapsed into ligature glyphs.

	r := arshape.Default()
	shaped := r.Reshape("السلام عليكم") // "ﺍﻟﺴﻼﻡ ﻋﻠﻴﻜﻢ"

[Reshaper.Unshape] maps presentation forms back to logical letters, as far
as that is possible. Reshaping does not reorder text for right-to-left
display; apply a bidi algorithm to the result if needed.

A Reshaper is immutable after [New] and may be shared between goroutines.
*/
package arshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the arshape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("arshape")
}
