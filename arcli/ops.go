package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/arshape/internal/codepoints"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/pterm/pterm"
)

type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	RESHAPE
	HELP
	SET
	RESET
	SHOW
	UNSHAPE
	TABLE
	LIGATURES
	FONT
	AGAIN
)

var opMap = map[string]int{
	"quit":      QUIT,
	"q":         QUIT,
	"help":      HELP,
	"set":       SET,
	"reset":     RESET,
	"show":      SHOW,
	"unshape":   UNSHAPE,
	"table":     TABLE,
	"ligatures": LIGATURES,
	"font":      FONT,
	"again":     AGAIN,
}

var errNoReshaper = errors.New("no reshaper configured")

// parseCommand reads a line of input. Lines starting with ':' are commands,
// e.g. ":set delete_harakat=no" or ":unshape ﻣﺮﺣﺒﺎ"; everything else is
// text to reshape.
func (intp *Intp) parseCommand(line string) Op {
	if !strings.HasPrefix(line, ":") {
		return Op{code: RESHAPE, arg: line}
	}
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		tracer().Infof("unknown command %q", name)
		return Op{code: HELP}
	}
	tracer().Debugf("parsed command: %s %q", name, arg)
	return Op{code: code, arg: strings.TrimSpace(arg)}
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:      quitOp,
	RESHAPE:   reshapeOp,
	HELP:      helpOp,
	SET:       setOp,
	RESET:     resetOp,
	SHOW:      showOp,
	UNSHAPE:   unshapeOp,
	TABLE:     tableOp,
	LIGATURES: ligaturesOp,
	FONT:      fontOp,
	AGAIN:     againOp,
}

func (intp *Intp) execute(op Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, &op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func reshapeOp(intp *Intp, op *Op) (error, bool) {
	if intp.reshaper == nil {
		return errNoReshaper, false
	}
	intp.last = op.arg
	out := intp.reshaper.Reshape(codepoints.Clean(op.arg, false))
	intp.printResult(out)
	return nil, false
}

func againOp(intp *Intp, op *Op) (error, bool) {
	if intp.last == "" {
		return errors.New("nothing to reshape yet"), false
	}
	return reshapeOp(intp, &Op{code: RESHAPE, arg: intp.last})
}

func unshapeOp(intp *Intp, op *Op) (error, bool) {
	if intp.reshaper == nil {
		return errNoReshaper, false
	}
	intp.printResult(intp.reshaper.Unshape(codepoints.Clean(op.arg, false)))
	return nil, false
}

func (intp *Intp) printResult(s string) {
	pterm.Println(s)
	if intp.table && s != "" {
		_ = pterm.DefaultTable.WithHasHeader().WithData(codepoints.Rows(s)).Render()
	}
}

// setOp records settings of the form key=value and rebuilds the reshaper.
// Settings which do not yield a valid configuration are rolled back.
func setOp(intp *Intp, op *Op) (error, bool) {
	key, value, found := strings.Cut(op.arg, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return errors.New("usage: :set key=value"), false
	}
	if !found {
		value = "yes"
	}
	prev, had := intp.overrides[key]
	intp.overrides[key] = strings.TrimSpace(value)
	if err := intp.rebuild(); err != nil {
		if had {
			intp.overrides[key] = prev
		} else {
			delete(intp.overrides, key)
		}
		return err, false
	}
	if intp.last != "" {
		return againOp(intp, op)
	}
	return nil, false
}

func resetOp(intp *Intp, op *Op) (error, bool) {
	for k := range intp.overrides {
		delete(intp.overrides, k)
	}
	return intp.rebuild(), false
}

func showOp(intp *Intp, op *Op) (error, bool) {
	if intp.reshaper == nil {
		return errNoReshaper, false
	}
	pterm.Println(intp.reshaper.Config().INI())
	return nil, false
}

func tableOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "", "on", "yes":
		intp.table = true
	case "off", "no":
		intp.table = false
	default:
		return fmt.Errorf("usage: :table on|off"), false
	}
	return nil, false
}

func ligaturesOp(intp *Intp, op *Op) (error, bool) {
	if intp.reshaper == nil {
		return errNoReshaper, false
	}
	groups := ligatures.All
	if op.arg != "" {
		g, err := ligatures.ParseGroup(op.arg)
		if err != nil {
			return err, false
		}
		groups = g
	}
	conf := intp.reshaper.Config()
	data := [][]string{{"Name", "Group", "Enabled"}}
	for _, l := range ligatures.InGroups(groups) {
		g, _ := ligatures.GroupOf(l.Name)
		enabled := "no"
		if conf.SupportLigatures && conf.Enabled(l.Name) {
			enabled = "yes"
		}
		data = append(data, []string{l.Name, g.String(), enabled})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("usage: :font <path>"), false
	}
	if err := intp.adaptToFont(op.arg); err != nil {
		return err, false
	}
	return intp.rebuild(), false
}
