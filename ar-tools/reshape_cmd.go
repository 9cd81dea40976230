package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/npillmayer/arshape"
	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/fontcaps"
	"github.com/npillmayer/arshape/internal/codepoints"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReshapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	overrides, err := reshapeOverrides(flags)
	if err != nil {
		fatalf("%v", err)
	}
	conf := loadConfig(flags["config"], overrides)
	if g := optionalString(flags["ligatures"], "ligatures"); g != "" {
		groups, err := ligatures.ParseGroup(g)
		if err != nil {
			fatalf("%v", err)
		}
		conf.SetLigatureGroups(groups)
		conf.SupportLigatures = groups != ligatures.None
	}
	r, err := arshape.New(conf)
	if err != nil {
		fatalf("%v", err)
	}
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	nfc := mustFlagBool(flags["nfc"], "nfc")
	if input == "" {
		src := bufio.NewReader(os.Stdin)
		sink := bufio.NewWriter(os.Stdout)
		if nfc {
			tracer().Infof("--nfc is ignored for stdin input")
		}
		if err := r.ReshapeStream(src, sink); err != nil {
			fatalf("reshape failed: %v", err)
		}
		if err := sink.Flush(); err != nil {
			fatalf("%v", err)
		}
		return
	}
	output := r.Reshape(codepoints.Clean(input, nfc))
	fmt.Println(output)
	if mustFlagBool(flags["table"], "table") {
		printCodepoints(output)
	}
}

// reshapeOverrides collects configuration overrides from the command line.
// Font coverage is applied first, so that explicit settings win.
func reshapeOverrides(flags map[string]commando.FlagValue) (config.Overrides, error) {
	o := config.Overrides{}
	if path := optionalString(flags["font"], "font"); path != "" {
		fo, err := fontcaps.ForFontFile(path, ligatures.All)
		if err != nil {
			return nil, err
		}
		for k, v := range fo {
			o[k] = v
		}
	}
	if lang := optionalString(flags["language"], "language"); lang != "" {
		o[config.KeyLanguage] = lang
	}
	if mustFlagBool(flags["keep-harakat"], "keep-harakat") {
		o[config.KeyDeleteHarakat] = false
	}
	if mustFlagBool(flags["shift-harakat"], "shift-harakat") {
		o[config.KeyShiftHarakatPosition] = true
	}
	if mustFlagBool(flags["unshaped"], "unshaped") {
		o[config.KeyUseUnshapedInsteadOfIsolated] = true
	}
	if spec := optionalString(flags["set"], "set"); spec != "" {
		settings, err := parseSettings(spec)
		if err != nil {
			return nil, err
		}
		for k, v := range settings {
			o[k] = v
		}
	}
	return o, nil
}

func runUnshapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	o := config.Overrides{}
	if lang := optionalString(flags["language"], "language"); lang != "" {
		o[config.KeyLanguage] = lang
	}
	conf := loadConfig(flags["config"], o)
	r, err := arshape.New(conf)
	if err != nil {
		fatalf("%v", err)
	}
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	output := r.Unshape(codepoints.Clean(input, false))
	if mustFlagBool(flags["strip-harakat"], "strip-harakat") {
		output = codepoints.StripHarakat(output)
	}
	fmt.Println(output)
	if mustFlagBool(flags["table"], "table") {
		printCodepoints(output)
	}
}

func printCodepoints(s string) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(codepoints.Rows(s)).Render(); err != nil {
		fatalf("%v", err)
	}
}
