package codepoints

import (
	"testing"

	"github.com/npillmayer/arshape/letters"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	rs, err := Parse("U+0627, 0x644 u+0644\t647")
	assert.NoError(t, err)
	assert.Equal(t, []rune{0x0627, 0x0644, 0x0644, 0x0647}, rs)
	_, err = Parse("U+06ZZ")
	assert.Error(t, err)
	_, err = Parse("110000")
	assert.Error(t, err)
	rs, err = Parse("")
	assert.NoError(t, err)
	assert.Empty(t, rs)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "a\uFFFDb", Clean("a\xffb", false))
	// ALEF + combining HAMZA ABOVE composes to ALEF WITH HAMZA ABOVE
	assert.Equal(t, "\u0623", Clean("\u0627\u0654", true))
	assert.Equal(t, "\u0627\u0654", Clean("\u0627\u0654", false))
}

func TestStripHarakat(t *testing.T) {
	assert.Equal(t, "السلام عليكم", StripHarakat("السَلَاْمٌ عَلَيْكُمْ"))
}

func TestDescribe(t *testing.T) {
	infos := Describe("\uFEDF\u064E!")
	assert.Len(t, infos, 3)
	assert.Equal(t, letters.Initial, infos[0].Form)
	assert.Equal(t, rune(0x0644), infos[0].Base)
	assert.Equal(t, "ARABIC LETTER LAM INITIAL FORM", infos[0].Name)
	assert.Equal(t, letters.NotSupported, infos[1].Form)
	assert.Equal(t, "EXCLAMATION MARK", infos[2].Name)
	assert.Equal(t, "U+FEDF U+064E U+0021", Format("\uFEDF\u064E!"))
	rows := Rows("\uFEDF")
	assert.Len(t, rows, 2)
	assert.Equal(t, "initial of U+0644", rows[1][2])
}
