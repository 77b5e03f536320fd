// Copyright 2021 Jonathan Amsterdam.

package cmdline

import "fmt"

// Errors reported for bad input to a program, plus the one
// construction-time error that is not (InvalidShortNameError).
//
// The Error strings here are end-user messages: the top-level runner
// prints them verbatim after "ERROR: ".

// A userError is a mistake in the program's input rather than a defect in
// the program itself. The runner renders these with a usage hint and
// exits with the usage-error status.
type userError interface {
	error
	userError()
}

// UnknownCommandError indicates a missing or unrecognized command name.
type UnknownCommandError struct {
	Name string // the unrecognized name, or "" if a command was expected but none given
}

func (e *UnknownCommandError) Error() string {
	if e.Name == "" {
		return "no command given."
	}
	return fmt.Sprintf("'%s' is not a known command.", e.Name)
}

func (e *UnknownCommandError) userError() {}

// UnknownOptionError indicates an unregistered option or flag identifier.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("'%s' is not a known option.", e.Name)
}

func (e *UnknownOptionError) userError() {}

// DuplicateOptionError indicates that one option was supplied twice,
// counting both its long and short identities.
type DuplicateOptionError struct {
	Name string // the option's long name
	Dup  string // the name it was re-supplied under
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("You have passed options '%s' and '%s', which are duplicates.", e.Name, e.Dup)
}

func (e *DuplicateOptionError) userError() {}

// InvalidOptionError indicates that an option requiring a value got none.
type InvalidOptionError struct {
	Name string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("option '--%s' requires a value.", e.Name)
}

func (e *InvalidOptionError) userError() {}

// InvalidFlagError indicates that a value was supplied to a flag, which
// takes none.
type InvalidFlagError struct {
	Name  string
	Value string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("flag '--%s' does not take a value (got '%s').", e.Name, e.Value)
}

func (e *InvalidFlagError) userError() {}

// BadArgCountError indicates a positional arg count outside the
// command's [min, max] range.
type BadArgCountError struct {
	Cmd   string
	Min   int
	Max   int
	Given int
}

func (e *BadArgCountError) Error() string {
	unit := func(n int) string {
		if n == 1 {
			return "arg"
		}
		return "args"
	}
	if e.Given > e.Max {
		return fmt.Sprintf("'%s' takes at most %d %s.", e.Cmd, e.Max, unit(e.Max))
	}
	return fmt.Sprintf("You must enter at least %d %s.", e.Min, unit(e.Min))
}

func (e *BadArgCountError) userError() {}

// BadValueError indicates that a coercion function rejected an input
// string.
type BadValueError struct {
	Name  string // the arg or option the value was given for
	Value string
	Err   error // what the coercion function reported
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("'%s' is not a valid value for '%s'.", e.Value, e.Name)
}

func (e *BadValueError) Unwrap() error { return e.Err }

func (e *BadValueError) userError() {}

// InvalidShortNameError indicates that two options of one command collide
// on their short name. It is a programming error, never user input:
// registration panics with it, and nothing catches it at run time.
type InvalidShortNameError struct {
	Cmd    string
	Short  string
	First  string // long name of the option that claimed Short first
	Second string // long name of the option that collided with it
}

func (e *InvalidShortNameError) Error() string {
	return fmt.Sprintf("command %q: options '--%s' and '--%s' both have short name '-%s'",
		e.Cmd, e.First, e.Second, e.Short)
}
