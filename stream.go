package arshape

import (
	"io"
	"strings"
)

// maxLine bounds the runes buffered for a single line. Longer lines are
// reshaped in chunks; joins and ligatures across a chunk border are lost.
const maxLine = 1 << 16

// ReshapeStream reshapes runes from src and writes the result to sink.
// Input is processed line by line, as neither joins nor ligatures extend
// over a line break. Diacritics are never shifted into a previous line.
// Errors are those of src and sink; io.EOF ends the input.
func (r *Reshaper) ReshapeStream(src io.RuneReader, sink io.Writer) error {
	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		_, err := io.WriteString(sink, r.Reshape(line.String()))
		line.Reset()
		return err
	}
	count := 0
	for {
		c, _, err := src.ReadRune()
		if err == io.EOF {
			return flush()
		}
		if err != nil {
			if ferr := flush(); ferr != nil {
				tracer().Errorf("reshape stream: %v", ferr)
			}
			return err
		}
		line.WriteRune(c)
		count++
		if c == '\n' || count >= maxLine {
			if err := flush(); err != nil {
				return err
			}
			count = 0
		}
	}
}
