// Copyright 2021 Jonathan Amsterdam.

package cmdline

// The argument-vector parser.

import "strings"

// parseArgv interprets argv, whose first element is the program name,
// against the app's commands and global options. It returns the resolved
// command, the coerced positional values (unfilled optional slots take
// their declared defaults), and a map of only the options actually
// supplied, keyed by dash-form name.
//
// The scan is a single left-to-right pass with one mode bit, literal.
// A "--" token turns literal mode on for the rest of the input: after
// it, nothing is recognized as an option, flag or sub-command.
//
// Global options are in scope from the first token, and so are the main
// command's options if the app has one. A routed sub-command's options
// enter scope at routing and shadow same-named globals. Routing happens
// at most once, on the first positional candidate.
//
// Parsing is pure: it neither mutates the app nor consults anything
// beyond its arguments.
func (a *App) parseArgv(argv []string) (*Command, []interface{}, map[string]interface{}, error) {
	cmd := a.main
	inputs := argv[1:]

	var args []interface{}
	opts := map[string]interface{}{}

	// known maps every in-scope long and short option name to its
	// descriptor.
	known := map[string]*Option{}
	addOpts := func(order []string, m map[string]*Option) {
		for _, n := range order {
			o := m[n]
			known[o.name] = o
			if o.short != "" {
				known[o.short] = o
			}
		}
	}
	addOpts(a.globalOrder, a.globals)
	if cmd != nil {
		addOpts(cmd.optOrder, cmd.opts)
	}

	literal := false
	for i := 0; i < len(inputs); i++ {
		tok := inputs[i]

		if tok == "--" {
			literal = true
			continue
		}

		switch {
		case !literal && strings.HasPrefix(tok, "--"):
			// A long option, possibly with an inline value.
			name, val, inline := strings.Cut(strings.TrimLeft(tok, "-"), "=")
			o := known[name]
			if o == nil {
				return nil, nil, nil, &UnknownOptionError{Name: name}
			}
			if _, ok := opts[o.name]; ok {
				return nil, nil, nil, &DuplicateOptionError{Name: o.name, Dup: name}
			}
			var v interface{}
			switch {
			case o.isFlag():
				if inline {
					return nil, nil, nil, &InvalidFlagError{Name: o.name, Value: val}
				}
				v = !o.def.(bool)
			case val == "":
				// No inline value; the next token is the value.
				if i+1 >= len(inputs) {
					return nil, nil, nil, &InvalidOptionError{Name: o.name}
				}
				i++
				var err error
				if v, err = o.convert(inputs[i]); err != nil {
					return nil, nil, nil, err
				}
			default:
				var err error
				if v, err = o.convert(val); err != nil {
					return nil, nil, nil, err
				}
			}
			opts[o.name] = v

		case !literal && len(tok) > 1 && tok[0] == '-':
			// One or more clustered short names. Every character but
			// possibly the last must be a flag; a valued option ends
			// the cluster, taking the token's remainder or the next
			// token as its value.
			rest := tok[1:]
			for j := 0; j < len(rest); j++ {
				sn := rest[j : j+1]
				o := known[sn]
				if o == nil {
					return nil, nil, nil, &UnknownOptionError{Name: sn}
				}
				if _, ok := opts[o.name]; ok {
					return nil, nil, nil, &DuplicateOptionError{Name: o.name, Dup: sn}
				}
				if o.isFlag() {
					opts[o.name] = !o.def.(bool)
					continue
				}
				val := rest[j+1:]
				if val == "" {
					if i+1 >= len(inputs) {
						return nil, nil, nil, &InvalidOptionError{Name: o.name}
					}
					i++
					val = inputs[i]
				}
				v, err := o.convert(val)
				if err != nil {
					return nil, nil, nil, err
				}
				opts[o.name] = v
				break
			}

		default:
			// A positional candidate. The first one may name a
			// sub-command.
			if !literal && cmd == a.main && len(a.commands) > 0 && len(args) == 0 {
				if c, ok := a.commands[tok]; ok {
					cmd = c
					addOpts(c.optOrder, c.opts)
					continue
				}
				if a.main == nil {
					return nil, nil, nil, &UnknownCommandError{Name: tok}
				}
				// The app has a main command; the token is its first
				// positional arg.
			}
			if cmd == nil {
				// Literal input before any command resolved.
				return nil, nil, nil, &UnknownCommandError{}
			}
			if len(args) >= cmd.maxArgc() {
				return nil, nil, nil, &BadArgCountError{
					Cmd:   cmd.name,
					Min:   cmd.minArgc(),
					Max:   cmd.maxArgc(),
					Given: len(args) + 1,
				}
			}
			v, err := cmd.arg(len(args)).convert(tok)
			if err != nil {
				return nil, nil, nil, err
			}
			args = append(args, v)
		}
	}

	if cmd == nil {
		return nil, nil, nil, &UnknownCommandError{}
	}
	if len(args) < cmd.minArgc() {
		return nil, nil, nil, &BadArgCountError{
			Cmd:   cmd.name,
			Min:   cmd.minArgc(),
			Max:   cmd.maxArgc(),
			Given: len(args),
		}
	}
	for i := len(args); i < cmd.maxArgc(); i++ {
		args = append(args, cmd.arg(i).def)
	}
	return cmd, args, opts, nil
}
