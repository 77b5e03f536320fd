// Copyright 2021 Jonathan Amsterdam.

package cmdline

// The reserved help command and usage rendering.

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const helpWidth = 70

// helpFunc builds the descriptor for the reserved help command.
func helpFunc(a *App) *Func {
	return &Func{
		Name: "help",
		Doc: "Show a usage message for this program or one of its commands.\n" +
			"\n" +
			"cmd -- name of the command to describe.\n" +
			"show_global_opts -- include global options in the output.",
		Params: []Param{
			{Name: "cmd", Default: ""},
			{Name: "show_global_opts", Default: false},
		},
		OptArgs: []string{"cmd"},
		Handler: func(args []interface{}, opts map[string]interface{}) (interface{}, error) {
			name, _ := args[0].(string)
			showGlobals, _ := opts["show_global_opts"].(bool)
			return nil, a.writeHelp(os.Stdout, name, showGlobals)
		},
	}
}

// writeHelp renders help for the app, or for the named command if name
// is non-empty.
func (a *App) writeHelp(w io.Writer, name string, showGlobals bool) error {
	cmd := a.main
	if name == "" {
		// Top-level help shows global options even though the flag
		// defaults off; that reads better.
		showGlobals = true
		if a.usage != "" {
			fmt.Fprintln(w, a.usage)
			fmt.Fprintln(w)
		}
		if cmd == nil {
			fmt.Fprintln(w, a.availableCommands())
			if showGlobals {
				if gs := optionSummaries("Global Options:", a.globalOrder, a.globals); gs != "" {
					fmt.Fprintln(w)
					fmt.Fprintln(w, gs)
				}
			}
			return nil
		}
	} else {
		if cmd = a.commands[name]; cmd == nil {
			return &UnknownCommandError{Name: name}
		}
	}

	header := a.name
	if cmd != a.main {
		header += " " + cmd.name
	}
	usageLine := "Usage:\n" + header
	for _, arg := range cmd.args {
		usageLine += fmt.Sprintf(" <%s>", arg.name)
	}
	for _, arg := range cmd.optArgs {
		usageLine += fmt.Sprintf(" [<%s>]", arg.name)
	}

	var sections []string
	usage := cmd.usage
	if usage == "" && name != "" {
		usage = a.usage
	}
	if usage != "" {
		sections = append(sections, fillParagraphs(usage))
	}
	if s := argSummaries(cmd); s != "" {
		sections = append(sections, s)
	}
	if s := optionSummaries("Options:", cmd.optOrder, cmd.opts); s != "" {
		sections = append(sections, s)
	}
	if showGlobals {
		if s := optionSummaries("Global Options:", a.globalOrder, a.globals); s != "" {
			sections = append(sections, s)
		}
	}
	if cmd == a.main && len(a.cmdOrder) > 0 {
		sections = append(sections, a.availableCommands())
	}

	fmt.Fprintln(w, usageLine)
	if len(sections) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	}
	return nil
}

// availableCommands returns a listing of the app's named commands, one
// per line with its summary.
func (a *App) availableCommands() string {
	var b strings.Builder
	if a.main != nil {
		b.WriteString("Available subcommands:\n")
	} else {
		b.WriteString("Available commands:\n")
	}
	for _, name := range a.cmdOrder {
		fmt.Fprintf(&b, "\n  %s -- %s", name, a.commands[name].summary)
	}
	return b.String()
}

// argSummaries renders the Arguments section for a command, or "" if it
// has no positional args.
func argSummaries(c *Command) string {
	var sums []string
	for i := 0; i < c.maxArgc(); i++ {
		sums = append(sums, c.arg(i).formatSummary())
	}
	if len(sums) == 0 {
		return ""
	}
	return "Arguments:\n\n" + strings.Join(sums, "\n\n")
}

// optionSummaries renders a header plus one entry per option, or "" if
// there are none.
func optionSummaries(header string, order []string, opts map[string]*Option) string {
	if len(order) == 0 {
		return ""
	}
	sums := []string{header}
	for _, name := range order {
		sums = append(sums, opts[name].formatSummary())
	}
	return strings.Join(sums, "\n\n")
}

func (a *Arg) formatSummary() string {
	return formatSummary(a.name, a.summary)
}

func (o *Option) formatSummary() string {
	return formatSummary(o.formatName(), o.summary)
}

// formatSummary renders a name with its indented, wrapped description.
func formatSummary(name, summary string) string {
	if summary == "" {
		return "  " + name
	}
	var paras []string
	for _, p := range strings.Split(summary, "\n\n") {
		paras = append(paras, fill(p, helpWidth, strings.Repeat(" ", 6)))
	}
	return "  " + name + "\n" + strings.Join(paras, "\n\n")
}

// fillParagraphs wraps the flat paragraphs of s at the help width and
// leaves indented ones (code blocks, lists) exactly as written.
func fillParagraphs(s string) string {
	var paras []string
	for _, p := range strings.Split(s, "\n\n") {
		if strings.HasPrefix(p, " ") || strings.HasPrefix(p, "\t") {
			paras = append(paras, p)
		} else {
			paras = append(paras, fill(p, helpWidth, ""))
		}
	}
	return strings.Join(paras, "\n\n")
}

// fill greedily wraps s at width columns, prefixing every line with
// indent.
func fill(s string, width int, indent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := indent + words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			b.WriteString(line)
			b.WriteString("\n")
			line = indent + w
		} else {
			line += " " + w
		}
	}
	b.WriteString(line)
	return b.String()
}
