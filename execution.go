// Copyright 2021 Jonathan Amsterdam.

package cmdline

// Code for running apps: parse, apply global options, dispatch, render
// errors.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/posener/complete/v2"
)

// Command-line syntax errors conventionally exit with status 2.
const usageErrCode = 2

// Run runs the app with os.Args and returns a process exit code: the
// handler's own integer result clamped to 0-127, 0 on other success,
// 1 if the handler failed, and usage-error status 2 for bad input.
// Call it from main:
//
//	func main() {
//		os.Exit(app.Run())
//	}
//
// Run also answers shell-completion requests before any parsing; see the
// package documentation.
func (a *App) Run() int {
	complete.Complete(filepath.Base(os.Args[0]), a)
	return a.RunArgs(os.Args)
}

// RunArgs is like Run but takes an explicit argument vector, whose first
// element is the program name. It is useful for tests.
func (a *App) RunArgs(argv []string) int {
	code, err := a.exec(argv)
	if err == nil {
		return code
	}
	var u userError
	if !errors.As(err, &u) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	a.writeError(os.Stderr, err)
	return usageErrCode
}

// exec parses argv, copies global option values into the app's settings,
// and invokes the resolved command. It returns the exit code implied by
// the handler's result; errors for bad input satisfy this package's
// error types.
func (a *App) exec(argv []string) (int, error) {
	if len(argv) == 0 {
		argv = []string{"(none)"}
	}
	a.name = filepath.Base(argv[0])
	if err := a.validate(); err != nil {
		return 1, err
	}

	cmd, args, opts, err := a.parseArgv(argv)
	if err != nil {
		return usageErrCode, err
	}

	a.applyGlobals(opts)

	// Handlers see identifier-form names.
	kw := make(map[string]interface{}, len(opts))
	for name, v := range opts {
		kw[identifier(name)] = v
	}

	result, err := cmd.handler(args, kw)
	if err != nil {
		return 1, err
	}
	if result == nil {
		return 0, nil
	}
	if code, ok := result.(int); ok {
		// The handler chose the exit code.
		if code < 0 {
			code = 0
		}
		if code > 127 {
			code = 127
		}
		return code, nil
	}
	out := cmd.output
	if out == nil {
		out = a.output
	}
	if out != nil {
		if err := out(result); err != nil {
			return 1, err
		}
	}
	return 0, nil
}

// validate checks the app as a whole, just before a run.
func (a *App) validate() error {
	if a.main == nil && len(a.commands) == 0 {
		return errors.New("cmdline: no commands registered")
	}
	return nil
}

// applyGlobals copies each global option's value, the supplied one if
// present and the default otherwise, into the app's settings. Supplied
// globals are removed from opts so the command never sees them. This is
// the only write to the settings, and it happens exactly once per run.
func (a *App) applyGlobals(opts map[string]interface{}) {
	if a.settings == nil {
		return
	}
	for _, name := range a.globalOrder {
		o := a.globals[name]
		v, ok := opts[name]
		if ok {
			delete(opts, name)
		} else {
			v = o.def
		}
		a.settings.set(o.ident, v)
	}
}

// writeError renders a bad-input error: one ERROR line, then a usage
// hint. Unknown commands also get the available-commands listing.
func (a *App) writeError(w io.Writer, err error) {
	var uc *UnknownCommandError
	if errors.As(err, &uc) {
		fmt.Fprintf(w, "ERROR: %s\n", uc.Error())
		fmt.Fprintln(w, a.availableCommands())
		fmt.Fprintf(w, "Run '%s help' for usage message.\n", a.name)
		return
	}
	fmt.Fprintf(w, "ERROR: %s\n", err)
	var bac *BadArgCountError
	if errors.As(err, &bac) && bac.Cmd != "" && (a.main == nil || bac.Cmd != a.main.name) {
		fmt.Fprintf(w, "Run '%s help %s' for usage message.\n", a.name, bac.Cmd)
		return
	}
	fmt.Fprintf(w, "Run '%s help' for usage message.\n", a.name)
}

// identifier converts a dash-form name to identifier form.
func identifier(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Print is an OutputFunc that prints the result to standard output,
// followed by a newline.
func Print(result interface{}) error {
	_, err := fmt.Println(result)
	return err
}
