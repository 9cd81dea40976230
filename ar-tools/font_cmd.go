package main

import (
	"os"
	"strings"

	"github.com/npillmayer/arshape/fontcaps"
	"github.com/npillmayer/arshape/internal/fontload"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runFontConfigCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	groups, err := ligatures.ParseGroup(optionalString(flags["ligatures"], "ligatures"))
	if err != nil {
		fatalf("%v", err)
	}
	f, err := fontload.LoadFont(fontPath)
	if err != nil {
		fatalf("cannot load font: %v", err)
	}
	cov, err := fontcaps.Probe(f, groups)
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["verbose"], "verbose") {
		printCoverage(cov)
	}
	conf := loadConfig(flags["config"], cov.Overrides())
	out := os.Stdout
	if path := optionalString(flags["output"], "output"); path != "" {
		if out, err = os.Create(path); err != nil {
			fatalf("%v", err)
		}
		defer out.Close()
	}
	if err := conf.WriteINI(out); err != nil {
		fatalf("cannot write configuration: %v", err)
	}
}

func printCoverage(cov *fontcaps.Coverage) {
	pterm.Info.Printf("font %s, probed ligature groups: %s\n", cov.Font, cov.Groups)
	if len(cov.MissingIsolated) > 0 {
		pterm.Warning.Printf("%d isolated forms missing, isolated letters stay unshaped\n", len(cov.MissingIsolated))
	}
	data := [][]string{{"Ligature", "Glyphs present"}}
	for _, name := range cov.Covered() {
		data = append(data, []string{name, "yes"})
	}
	for _, name := range cov.Uncovered() {
		data = append(data, []string{name, "no"})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
