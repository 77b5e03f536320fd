// Copyright 2021 Jonathan Amsterdam.

/*
Package cmdline builds command-line programs from plain functions and
their documentation.

A program is an App holding either a single main command or a set of
named commands. Each command is declared with a Func: a handler, an
ordered list of parameters, and a documentation block. The package
classifies the parameters into positional args, options and flags,
mines their descriptions out of the documentation, parses the argument
vector against the result, and dispatches to the handler.

# Declaring commands

Create an App with New, then register commands:

	app := cmdline.New(cmdline.Config{Doc: docString})
	app.Command(&cmdline.Func{
		Name: "add",
		Doc:  "Add a note.\n\ntext -- the note's text.",
		Params: []cmdline.Param{
			{Name: "text"},
			{Name: "fave", Default: false},
		},
		Handler: add,
	})

	func main() {
		os.Exit(app.Run())
	}

Use App.Main instead of App.Command for a program with no sub-commands.
An app has a main command or named commands, never both.

Every app also gets a reserved help command, unless it registers its
own command named "help". "prog help" describes the program and "prog
help CMD" describes one command.

# Parameters

A Param's classification follows from its Default:

  - No default: a required positional arg.
  - A default, with the name listed in OptArgs: an optional positional
    arg, filled with the default when absent.
  - A bool default: a flag. Naming it on the command line toggles the
    default; it takes no value.
  - Any other default: an option, written --name VALUE or --name=VALUE.

Required params must precede params with defaults. Underscores in
parameter names become dashes on the command line, so a parameter
all_caps is the option --all-caps; handlers see the underscore form.

Every option and flag also answers to a one-character short name, by
default the first character of its long name; ShortNames overrides
that. Short flags cluster: -ab means -a -b, and a valued option may
end a cluster, taking the rest of the token or the next token as its
value. A "--" token ends option processing; everything after it is
positional.

Values are strings unless a Types entry supplies a coercion function
for the parameter. Int, Float, Bool and the other stock functions in
this package cover the common types.

# Documentation conventions

A Func's Doc describes the command and its parameters in one block.
The leading paragraphs, up to the first parameter description or a
line starting with ">>>", become the command's usage message; the
first sentence of that is the command's summary in listings. A
parameter is described in any of three forms:

	text -- the note's text.

	:param text: the note's text.

	@param text: the note's text.

The first form starts a paragraph; the other two may appear anywhere.
A description continues across following lines until a blank line or
another parameter's description.

# Global options and settings

Program-wide state lives in a Settings, a bag of named values that
handlers read:

	st := cmdline.NewSettings(map[string]interface{}{"verbose": false})
	app.Globals(st, map[string]cmdline.ParseFunc{"verbose": cmdline.Bool})

Globals exposes the named settings as options recognized anywhere on
the command line, before or after the command name. Once per run,
before the command's handler executes, each exposed setting is set to
the supplied value, or back to its default when the option is absent.
Supplied globals do not appear in the handler's option map. A command
option with the same name shadows the global after routing.

# Execution

Run parses os.Args, dispatches, and returns the process exit code: 2
for bad input, after printing an ERROR line and a usage hint to
standard error; 1 when the handler returns an error; otherwise the
handler's own int result, clamped to 0 through 127, or 0. A non-nil,
non-int result goes to the command's OutputFunc, falling back to the
app's; Print is an OutputFunc that just prints it.

Defects in a Func, such as a missing name, a nil handler, a required
param after an optional one, or two options sharing a short name, are
programming errors: registration panics.

# Completion

Shell completion for common shells is supported with the
github.com/posener/complete/v2 package. Completion logic is
automatically invoked if your program calls App.Run, suggesting
command names and long option names. To install completion for a
program, run it with the COMP_INSTALL environment variable set to 1.
*/
package cmdline
