// Copyright 2021 Jonathan Amsterdam.

package cmdline

// Code to declare apps and build command descriptors.

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// A Param describes one parameter of a command, in declaration order.
// A Param without a default is a required positional arg. A Param with a
// default becomes an optional positional arg if its name is in the Func's
// OptArgs list, a flag if the default is a bool, and an option otherwise.
type Param struct {
	// Name is the parameter's identifier. Underscores become dashes on
	// the command line.
	Name string
	// Default is the parameter's value when it is not supplied. A nil
	// Default makes the parameter a required positional arg.
	Default interface{}
}

// A Func describes a command: its handler, parameters and documentation.
// It is consumed once, at registration; the Command built from it is
// immutable.
type Func struct {
	// Name is the command's identifier. Underscores are replaced by
	// dashes to form the command name unless CmdName is set.
	Name string
	// CmdName, if non-empty, overrides the name derived from Name.
	CmdName string
	// Doc is a free-form documentation block. Its leading paragraphs
	// become the command's usage message, and parameter descriptions in
	// it become arg and option summaries. See the package documentation
	// for the recognized conventions.
	Doc string
	// Params lists the command's parameters in order. Parameters
	// without defaults must precede parameters with defaults.
	Params []Param
	// ShortNames maps a parameter name to a one-character short option
	// name, overriding the default of the parameter name's first
	// character. Entries that are not exactly one character are ignored.
	ShortNames map[string]string
	// OptArgs names parameters with defaults that should be treated as
	// optional positional args rather than options. Names that match no
	// parameter are ignored, so an app-wide list can apply to commands
	// that lack some of the names.
	OptArgs []string
	// Types maps parameter names to coercion functions.
	Types map[string]ParseFunc
	// Handler does the command's work.
	Handler HandlerFunc
	// Output consumes the handler's result, overriding the app's output
	// function.
	Output OutputFunc
}

// Config configures an App.
type Config struct {
	// Doc is the program's documentation block. Its leading paragraphs
	// are shown by the help command; parameter descriptions in it
	// provide summaries for global options.
	Doc string
	// Types supplies coercion functions to every command of the app.
	// A command's own Types entries win.
	Types map[string]ParseFunc
	// OptArgs names parameters that every command should treat as
	// optional positional args.
	OptArgs []string
	// Output consumes non-nil handler results for commands that have no
	// output function of their own. If nil, results are discarded.
	Output OutputFunc
}

// New creates an App with no commands.
func New(cfg Config) *App {
	return &App{
		doc:      cfg.Doc,
		usage:    usageMessage(cfg.Doc),
		types:    cfg.Types,
		optArgs:  cfg.OptArgs,
		output:   cfg.Output,
		commands: map[string]*Command{},
		globals:  map[string]*Option{},
	}
}

// Main registers f as the app's main command, the one that runs when the
// first positional token names no sub-command. An app has either a main
// command or named commands, never both; violating that, like any other
// defect in f, is a programming error and panics.
func (a *App) Main(f *Func) *Command {
	cmd, err := a.register(f, true)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Command registers f as a named command of the app. Defects in f are
// programming errors and panic.
func (a *App) Command(f *Func) *Command {
	cmd, err := a.register(f, false)
	if err != nil {
		panic(err)
	}
	return cmd
}

func (a *App) register(f *Func, isMain bool) (*Command, error) {
	cmd, err := a.buildCommand(f)
	if err != nil {
		return nil, err
	}
	if isMain {
		if a.main != nil {
			return nil, errors.New("main command registered twice")
		}
		if a.numNamed() > 0 {
			return nil, errors.New("an app may have a main command or named commands, not both")
		}
		a.main = cmd
	} else {
		if a.main != nil && cmd.name != "help" {
			return nil, errors.New("an app may have a main command or named commands, not both")
		}
		if _, ok := a.commands[cmd.name]; ok {
			return nil, fmt.Errorf("duplicate command: %q", cmd.name)
		}
		a.addCommand(cmd)
	}
	a.ensureHelp()
	return cmd, nil
}

func (a *App) addCommand(cmd *Command) {
	a.commands[cmd.name] = cmd
	a.cmdOrder = append(a.cmdOrder, cmd.name)
}

// numNamed counts the registered commands other than the reserved help
// command.
func (a *App) numNamed() int {
	n := len(a.commands)
	if _, ok := a.commands["help"]; ok {
		n--
	}
	return n
}

// ensureHelp registers the reserved help command once per app, unless
// the app defined its own, and keeps it last in listings.
func (a *App) ensureHelp() {
	if _, ok := a.commands["help"]; !ok {
		cmd, err := a.buildCommand(helpFunc(a))
		if err != nil {
			// A defect in this package, not in the caller.
			panic(err)
		}
		a.commands["help"] = cmd
	}
	order := a.cmdOrder[:0]
	for _, n := range a.cmdOrder {
		if n != "help" {
			order = append(order, n)
		}
	}
	a.cmdOrder = append(order, "help")
}

// buildCommand classifies f's parameters into required args, optional
// args, options and flags, and assembles the Command descriptor. Defects
// in f are collected and reported together, except for a short-name
// collision, which is reported alone as an *InvalidShortNameError.
func (a *App) buildCommand(f *Func) (*Command, error) {
	var defects error

	name := f.CmdName
	if name == "" {
		name = strings.ReplaceAll(f.Name, "_", "-")
	}
	if name == "" {
		defects = multierror.Append(defects, errors.New("command has no name"))
	}
	if f.Handler == nil {
		defects = multierror.Append(defects, fmt.Errorf("command %q: nil handler", name))
	}

	summaries := paramSummaries(f.Doc)
	usage := usageMessage(f.Doc)

	// Merge the app-wide coercions and optional-arg names into the
	// command's; the command's own entries win.
	types := map[string]ParseFunc{}
	for k, v := range a.types {
		types[k] = v
	}
	for k, v := range f.Types {
		types[k] = v
	}
	optArgNames := map[string]bool{}
	for _, n := range a.optArgs {
		optArgNames[n] = true
	}
	for _, n := range f.OptArgs {
		optArgNames[n] = true
	}

	cmd := &Command{
		name:    name,
		usage:   usage,
		summary: firstSentence(usage),
		opts:    map[string]*Option{},
		handler: f.Handler,
		output:  f.Output,
	}

	seen := map[string]bool{}
	optional := false
	for _, p := range f.Params {
		if p.Name == "" {
			defects = multierror.Append(defects, fmt.Errorf("command %q: unnamed parameter", name))
			continue
		}
		if seen[p.Name] {
			defects = multierror.Append(defects, fmt.Errorf("command %q: duplicate parameter %q", name, p.Name))
			continue
		}
		seen[p.Name] = true
		dash := strings.ReplaceAll(p.Name, "_", "-")
		if p.Default == nil {
			if optional {
				defects = multierror.Append(defects,
					fmt.Errorf("command %q: required parameter %q follows a parameter with a default", name, p.Name))
				continue
			}
			cmd.args = append(cmd.args, &Arg{
				name:    dash,
				summary: summaries[p.Name],
				parse:   types[p.Name],
			})
			continue
		}
		optional = true
		if optArgNames[p.Name] {
			cmd.optArgs = append(cmd.optArgs, &Arg{
				name:    dash,
				summary: summaries[p.Name],
				def:     p.Default,
				parse:   types[p.Name],
			})
			continue
		}
		short := dash[:1]
		if s := f.ShortNames[p.Name]; len(s) == 1 {
			short = s
		}
		cmd.opts[dash] = &Option{
			name:    dash,
			ident:   p.Name,
			summary: summaries[p.Name],
			short:   short,
			def:     p.Default,
			parse:   types[p.Name],
		}
		cmd.optOrder = append(cmd.optOrder, dash)
	}
	if defects != nil {
		return nil, defects
	}
	if err := cmd.indexShorts(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Settings holds the ambient program state that global options override.
// The dispatcher writes each exposed value exactly once per run, before
// the resolved command executes; handlers read them afterward.
type Settings struct {
	vals map[string]interface{}
}

// NewSettings creates a Settings holding the given defaults, keyed by
// identifier-form names.
func NewSettings(vals map[string]interface{}) *Settings {
	s := &Settings{vals: map[string]interface{}{}}
	for k, v := range vals {
		s.vals[k] = v
	}
	return s
}

// Get returns the named setting, or nil if there is none.
func (s *Settings) Get(name string) interface{} { return s.vals[name] }

// Bool returns the named setting, or false if it is absent or not a bool.
func (s *Settings) Bool(name string) bool {
	b, _ := s.Get(name).(bool)
	return b
}

// Int returns the named setting, or 0 if it is absent or not an int.
func (s *Settings) Int(name string) int {
	i, _ := s.Get(name).(int)
	return i
}

// String returns the named setting, or "" if it is absent or not a string.
func (s *Settings) String(name string) string {
	v, _ := s.Get(name).(string)
	return v
}

func (s *Settings) set(name string, v interface{}) { s.vals[name] = v }

// Globals exposes entries of st as program-wide options. Only the names
// in types become options; each option's default is the setting's current
// value, and its summary is mined from the app's documentation block.
// The supplied or default value of every global option is copied back
// into st once per run, before the resolved command executes.
//
// Registering a global option name twice is a programming error and
// panics.
func (a *App) Globals(st *Settings, types map[string]ParseFunc) {
	a.settings = st
	summaries := paramSummaries(a.doc)

	idents := make([]string, 0, len(types))
	for n := range types {
		idents = append(idents, n)
	}
	sort.Strings(idents)

	var defects error
	for _, ident := range idents {
		dash := strings.ReplaceAll(ident, "_", "-")
		if _, ok := a.globals[dash]; ok {
			defects = multierror.Append(defects, fmt.Errorf("duplicate global option: %q", dash))
			continue
		}
		a.globals[dash] = &Option{
			name:    dash,
			ident:   ident,
			summary: summaries[ident],
			short:   dash[:1],
			def:     st.Get(ident),
			parse:   types[ident],
		}
		a.globalOrder = append(a.globalOrder, dash)
	}
	if defects != nil {
		panic(defects)
	}
}
