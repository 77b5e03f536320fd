// Copyright 2021 Jonathan Amsterdam.

package cmdline

import "fmt"

// The descriptor model. Descriptors are built once, at startup, by the
// registration code, and are read-only afterward; the parser consults
// them on every run.

// A ParseFunc converts a command-line string into a value of the desired
// type. It should return an error describing the problem with the string;
// the parser wraps that in a *BadValueError naming the arg or option.
type ParseFunc func(s string) (interface{}, error)

// A HandlerFunc does a command's work. args holds the coerced positional
// values in declaration order, with unsupplied optional args set to their
// declared defaults. opts maps the identifier form of each option or flag
// that was actually supplied to its coerced value; options left at their
// defaults do not appear.
//
// A non-nil result is handed to the command's output function, except
// that an int result becomes the process exit code.
type HandlerFunc func(args []interface{}, opts map[string]interface{}) (interface{}, error)

// An OutputFunc consumes a command's non-nil result.
type OutputFunc func(result interface{}) error

// An Arg is a positional command-line value.
type Arg struct {
	name    string
	summary string
	def     interface{} // non-nil: the Arg is optional
	parse   ParseFunc
}

// convert coerces a raw token to the Arg's type.
func (a *Arg) convert(s string) (interface{}, error) {
	if a.parse == nil {
		return s, nil
	}
	v, err := a.parse(s)
	if err != nil {
		return nil, &BadValueError{Name: a.name, Value: s, Err: err}
	}
	return v, nil
}

// An Option is a named, valued setting with a one-character short alias.
// An Option whose default is a bool is a flag: its presence on the command
// line toggles the default, and it accepts no value.
type Option struct {
	name    string // dash form, as typed on the command line
	ident   string // identifier form, as seen by handlers and settings
	summary string
	short   string
	def     interface{}
	parse   ParseFunc
}

func (o *Option) isFlag() bool {
	_, ok := o.def.(bool)
	return ok
}

func (o *Option) convert(s string) (interface{}, error) {
	if o.parse == nil {
		return s, nil
	}
	v, err := o.parse(s)
	if err != nil {
		return nil, &BadValueError{Name: o.name, Value: s, Err: err}
	}
	return v, nil
}

// formatName returns the option's names as shown in help output.
func (o *Option) formatName() string {
	if o.short != "" {
		return fmt.Sprintf("-%s, --%s", o.short, o.name)
	}
	return "--" + o.name
}

// A Command is one named unit of work: a handler plus the descriptors of
// its positional args, options and flags.
type Command struct {
	name     string
	usage    string // usage message mined from the documentation block
	summary  string // first sentence of usage
	args     []*Arg // required, in order
	optArgs  []*Arg // optional, in declaration order
	opts     map[string]*Option // keyed by dash-form name
	optOrder []string           // declaration order of opts
	shorts   map[string]string  // short name -> dash-form name
	handler  HandlerFunc
	output   OutputFunc // overrides the app's output function
}

// Name returns the command's name as typed on the command line.
func (c *Command) Name() string { return c.name }

// minArgc is the number of positional args the command requires.
func (c *Command) minArgc() int { return len(c.args) }

// maxArgc is the number of positional args the command accepts.
func (c *Command) maxArgc() int { return len(c.args) + len(c.optArgs) }

// arg returns the descriptor for positional slot i, required args first.
func (c *Command) arg(i int) *Arg {
	if i < len(c.args) {
		return c.args[i]
	}
	return c.optArgs[i-len(c.args)]
}

// indexShorts builds the short-name index. Two options sharing a short
// name is a programming defect, reported before any parsing happens.
func (c *Command) indexShorts() error {
	c.shorts = map[string]string{}
	for _, name := range c.optOrder {
		o := c.opts[name]
		if first, ok := c.shorts[o.short]; ok {
			return &InvalidShortNameError{
				Cmd:    c.name,
				Short:  o.short,
				First:  first,
				Second: o.name,
			}
		}
		c.shorts[o.short] = o.name
	}
	return nil
}

// An App is a top-level collection of commands plus program-wide options:
// either one main command, or a set of named commands, never both. The
// reserved help command does not count against that.
type App struct {
	doc     string // raw documentation block
	usage   string // doc with parameter descriptions and examples stripped
	types   map[string]ParseFunc
	optArgs []string
	output  OutputFunc

	name        string // program name; set from argv[0] at run time
	main        *Command
	commands    map[string]*Command
	cmdOrder    []string
	globals     map[string]*Option
	globalOrder []string
	settings    *Settings
}
