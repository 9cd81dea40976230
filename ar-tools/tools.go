package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/internal/codepoints"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'arshape.cli'
func tracer() tracing.Trace {
	return tracing.Select("arshape.cli")
}

var traceKeys = []string{"arshape", "arshape.config", "arshape.fontcaps", "arshape.cli"}

func main() {
	commando.
		SetExecutableName("ar-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for reshaping Arabic text and inspecting reshaper configuration.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("reshape").
		SetDescription("Reshape Arabic text to presentation forms. Without text arguments, lines are read from stdin.").
		SetShortDescription("reshape text").
		AddArgument("text...", "text to reshape (variadic argument parts joined by comma by commando)", "").
		AddFlag("config,C", "configuration file (ini format)", commando.String, "-").
		AddFlag("font,f", "adapt configuration to glyph coverage of an OpenType font", commando.String, "-").
		AddFlag("language,l", "letter table or language tag (Arabic, ArabicV2, Kurdish, ar, ckb)", commando.String, "-").
		AddFlag("set,s", "option list (e.g. delete_harakat=no,support_zwj=yes,allah=off)", commando.String, "-").
		AddFlag("ligatures,g", "enable only these ligature groups (e.g. words|letters, all, none)", commando.String, "-").
		AddFlag("keep-harakat,k", "keep diacritics", commando.Bool, nil).
		AddFlag("shift-harakat", "shift diacritics one letter towards the start", commando.Bool, nil).
		AddFlag("unshaped,u", "leave isolated letters in logical form", commando.Bool, nil).
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("nfc", "normalize input to NFC before reshaping", commando.Bool, nil).
		AddFlag("table,t", "print a code point table of the result", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReshapeCommand)

	commando.
		Register("unshape").
		SetDescription("Map presentation forms and ligature glyphs back to logical letters.").
		SetShortDescription("unshape text").
		AddArgument("text...", "text to unshape", "").
		AddFlag("config,C", "configuration file (ini format)", commando.String, "-").
		AddFlag("language,l", "letter table or language tag", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated)", commando.String, "-").
		AddFlag("strip-harakat,x", "remove diacritics from the result", commando.Bool, nil).
		AddFlag("table,t", "print a code point table of the result", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runUnshapeCommand)

	commando.
		Register("fontconfig").
		SetDescription("Probe an OpenType font for presentation glyphs and print a matching configuration.").
		SetShortDescription("configuration for a font").
		AddArgument("font", "OpenType font file path or system font file name", "").
		AddFlag("ligatures,g", "ligature groups to probe", commando.String, "all").
		AddFlag("config,C", "configuration file to start from (ini format)", commando.String, "-").
		AddFlag("output,o", "write configuration to file instead of stdout", commando.String, "-").
		AddFlag("verbose,V", "print a coverage table", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runFontConfigCommand)

	commando.
		Register("ligatures").
		SetDescription("List the ligatures known to the reshaper and whether they are enabled.").
		SetShortDescription("list ligatures").
		AddFlag("config,C", "configuration file (ini format)", commando.String, "-").
		AddFlag("group,g", "only list ligatures of these groups", commando.String, "all").
		SetAction(runLigaturesCommand)

	commando.Parse(nil)
}

// setupTracing routes all arshape tracers to Go's log package.
func setupTracing(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
}

// loadConfig assembles the configuration from an optional file plus
// overrides collected from the command line.
func loadConfig(fileFlag commando.FlagValue, overrides config.Overrides) *config.Config {
	var opts []config.Option
	if path := optionalString(fileFlag, "config"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	if len(overrides) > 0 {
		opts = append(opts, config.WithOverrides(overrides))
	}
	conf, err := config.Load(opts...)
	if err != nil {
		fatalf("%v", err)
	}
	return conf
}

// parseSettings reads an option list like "delete_harakat=no,allah=off".
// A bare key switches an option on.
func parseSettings(spec string) (config.Overrides, error) {
	o := config.Overrides{}
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, found := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid setting %q", item)
		}
		if !found {
			value = "yes"
		}
		o[key] = strings.TrimSpace(value)
	}
	return o, nil
}

func parseInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		runes, err := codepoints.Parse(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	return textArg.Value, nil
}

// optionalString returns a string flag, mapping the placeholder "-" to "".
func optionalString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ar-tools: "+format+"\n", args...)
	os.Exit(1)
}
