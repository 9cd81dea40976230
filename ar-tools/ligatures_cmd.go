package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runLigaturesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	groups, err := ligatures.ParseGroup(optionalString(flags["group"], "group"))
	if err != nil {
		fatalf("%v", err)
	}
	conf := loadConfig(flags["config"], nil)
	if err := pterm.DefaultTable.WithHasHeader().WithData(ligatureRows(conf, groups)).Render(); err != nil {
		fatalf("%v", err)
	}
}

func ligatureRows(conf *config.Config, groups ligatures.Group) [][]string {
	data := [][]string{{"Name", "Group", "Glyphs", "Letters", "Enabled"}}
	for _, l := range ligatures.InGroups(groups) {
		g, _ := ligatures.GroupOf(l.Name)
		glyphs := make([]string, 0, 4)
		for _, r := range l.Glyphs() {
			glyphs = append(glyphs, fmt.Sprintf("%U", r))
		}
		enabled := "no"
		if conf.SupportLigatures && conf.Enabled(l.Name) {
			enabled = "yes"
		}
		data = append(data, []string{
			l.Name,
			g.String(),
			strings.Join(glyphs, " "),
			fmt.Sprintf("%d", len([]rune(l.Sequences[0]))),
			enabled,
		})
	}
	return data
}
