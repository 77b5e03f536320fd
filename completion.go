// Copyright 2021 Jonathan Amsterdam.

package cmdline

// Methods for github.com/posener/complete/v2.Completer. Run consults
// these when the shell asks for completions; they suggest command names
// and long option names.

import "github.com/posener/complete/v2"

func (a *App) SubCmdList() []string {
	return a.cmdOrder
}

func (a *App) SubCmdGet(name string) complete.Completer {
	c, ok := a.commands[name]
	if !ok {
		return nil
	}
	return c
}

// FlagList returns the long names in scope before routing: the globals
// plus the main command's options.
func (a *App) FlagList() []string {
	names := append([]string(nil), a.globalOrder...)
	if a.main != nil {
		names = append(names, a.main.optOrder...)
	}
	return names
}

func (a *App) FlagGet(string) complete.Predictor { return nil }

func (a *App) ArgsGet() complete.Predictor { return nil }

func (c *Command) SubCmdList() []string { return nil }

func (c *Command) SubCmdGet(string) complete.Completer { return nil }

func (c *Command) FlagList() []string { return c.optOrder }

func (c *Command) FlagGet(string) complete.Predictor { return nil }

func (c *Command) ArgsGet() complete.Predictor { return nil }
