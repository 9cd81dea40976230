package main

import (
	"testing"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	o, err := parseSettings("delete_harakat=no, support_zwj ,ARABIC LIGATURE ALLAH=off")
	require.NoError(t, err)
	assert.Equal(t, config.Overrides{
		"delete_harakat":        "no",
		"support_zwj":           "yes",
		"ARABIC LIGATURE ALLAH": "off",
	}, o)
	conf, err := config.Load(config.WithoutEnvironment(), config.WithOverrides(o))
	require.NoError(t, err)
	assert.False(t, conf.DeleteHarakat)
	assert.True(t, conf.SupportZWJ)
	assert.False(t, conf.Enabled("ARABIC LIGATURE ALLAH"))

	_, err = parseSettings("=yes")
	assert.Error(t, err)
}

func TestLigatureRows(t *testing.T) {
	conf := config.Default()
	rows := ligatureRows(conf, ligatures.Sentences)
	require.Len(t, rows, 1+len(ligatures.InGroups(ligatures.Sentences)))
	assert.Equal(t, "Enabled", rows[0][4])
	for _, row := range rows[1:] {
		assert.Equal(t, "sentences", row[1])
	}
	conf.SupportLigatures = false
	for _, row := range ligatureRows(conf, ligatures.All)[1:] {
		assert.Equal(t, "no", row[4])
	}
}
