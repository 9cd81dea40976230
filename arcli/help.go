package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "set", "settings", "config":
		pterm.Info.Println("Settings")
		pterm.Println(`
	:set key=value changes one option and rebuilds the reshaper.
	Keys are the option names of the configuration file:
	+----------------------------------+----------------------------+
	| language                         | Arabic, ArabicV2, Kurdish  |
	| support_ligatures                | yes/no                     |
	| delete_harakat                   | yes/no                     |
	| shift_harakat_position           | yes/no                     |
	| delete_tatweel                   | yes/no                     |
	| support_zwj                      | yes/no                     |
	| use_unshaped_instead_of_isolated | yes/no                     |
	| <ligature name>                  | yes/no                     |
	+----------------------------------+----------------------------+
	:reset drops all settings, :show prints the active configuration.
	`)
	case "ligatures", "ligature":
		pterm.Info.Println("Ligatures")
		pterm.Println(`
	:ligatures [groups] lists ligatures and whether they are enabled.
	Groups are sentences, words and letters, e.g. ":ligatures words|letters".
	Longer ligatures are tried first; a ligature is switched with
	":set <ligature name>=yes".
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<text>               reshape text
	:again               reshape the last text again
	:unshape <text>      map presentation forms back to letters
	:set key=value       change an option (see ":help set")
	:reset               drop all options set
	:show                print the active configuration
	:ligatures [groups]  list ligatures (see ":help ligatures")
	:font <path>         adapt options to the glyphs of a font
	:table on|off        toggle code point tables
	:quit                leave
	`)
	}
}
