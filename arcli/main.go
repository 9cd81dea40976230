package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arshape"
	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/fontcaps"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'arshape.cli'
func tracer() tracing.Trace {
	return tracing.Select("arshape.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.arshape":          "Error",
		"trace.arshape.config":   "Error",
		"trace.arshape.fontcaps": "Info",
		"trace.arshape.cli":      "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	conffile := flag.String("config", "", "Configuration file (ini format)")
	fontname := flag.String("font", "", "Adapt configuration to this font")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)           // will set the correct level later
	pterm.Info.Println("Welcome to the Arabic reshaper") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ar > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp(repl, *conffile)
	if *fontname != "" {
		if err := intp.adaptToFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	if err := intp.rebuild(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D, help with :help")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("arshape").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	file      string           // configuration file, may be empty
	overrides config.Overrides // settings made with :set
	reshaper  *arshape.Reshaper
	table     bool // print code point tables
	last      string
}

func newIntp(repl *readline.Instance, file string) *Intp {
	return &Intp{repl: repl, file: file, overrides: config.Overrides{}, table: true}
}

func (intp *Intp) String() string {
	if intp == nil || intp.reshaper == nil {
		return "()"
	}
	conf := intp.reshaper.Config()
	return fmt.Sprintf("( %s, %d ligatures, %d settings )",
		conf.Language, len(conf.EnabledLigatures()), len(intp.overrides))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := intp.parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// rebuild creates a reshaper from the configuration file and the settings
// made so far. On error the previous reshaper is kept.
func (intp *Intp) rebuild() error {
	var opts []config.Option
	if intp.file != "" {
		opts = append(opts, config.WithFile(intp.file))
	}
	opts = append(opts, config.WithOverrides(intp.overrides))
	conf, err := config.Load(opts...)
	if err != nil {
		return err
	}
	r, err := arshape.New(conf)
	if err != nil {
		return err
	}
	intp.reshaper = r
	tracer().Debugf("reshaper rebuilt: %s", intp)
	return nil
}

// adaptToFont merges overrides derived from a font's glyph coverage.
func (intp *Intp) adaptToFont(path string) error {
	o, err := fontcaps.ForFontFile(path, ligatures.All)
	if err != nil {
		return err
	}
	for k, v := range o {
		intp.overrides[k] = v
	}
	tracer().Infof("adapted configuration to font %s", path)
	return nil
}
