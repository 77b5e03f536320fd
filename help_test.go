// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func notesApp() *App {
	a := New(Config{Doc: "Manage a list of notes.\n\n:param verbose: print more."})
	st := NewSettings(map[string]interface{}{"verbose": false})
	a.Globals(st, map[string]ParseFunc{"verbose": Bool})
	a.Command(&Func{
		Name:    "add",
		Doc:     "Add a note.\n\ntext -- the note's text.\nfave -- mark it a favorite.",
		Params:  []Param{{Name: "text"}, {Name: "fave", Default: false}},
		Handler: nopHandler,
	})
	a.Command(&Func{
		Name:    "list",
		Doc:     "List all notes.",
		Handler: nopHandler,
	})
	a.name = "notes"
	return a
}

func TestAvailableCommands(t *testing.T) {
	got := notesApp().availableCommands()
	want := "Available commands:\n" +
		"\n  add -- Add a note." +
		"\n  list -- List all notes." +
		"\n  help -- Show a usage message for this program or one of its commands."
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteHelpApp(t *testing.T) {
	var buf bytes.Buffer
	if err := notesApp().writeHelp(&buf, "", false); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"Manage a list of notes.",
		"Available commands:",
		"  add -- Add a note.",
		// Top-level help always includes the globals.
		"Global Options:",
		"  -v, --verbose\n      print more.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteHelpCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := notesApp().writeHelp(&buf, "add", false); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"Usage:\nnotes add <text>",
		"Add a note.",
		"Arguments:\n\n  text\n      the note's text.",
		"Options:\n\n  -f, --fave\n      mark it a favorite.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Global Options:") {
		t.Errorf("output contains globals without being asked:\n%s", got)
	}

	buf.Reset()
	if err := notesApp().writeHelp(&buf, "add", true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Global Options:") {
		t.Errorf("output lacks globals:\n%s", buf.String())
	}
}

func TestWriteHelpMainCommand(t *testing.T) {
	a := greetApp()
	a.name = "greet"
	var buf bytes.Buffer
	if err := a.writeHelp(&buf, "", false); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"Usage:\ngreet [<greeting>]",
		"Greet someone.",
		"-p, --punctuation",
		// A main-command app still lists its reserved sub-commands.
		"Available subcommands:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteHelpUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := notesApp().writeHelp(&buf, "nope", false)
	var uc *UnknownCommandError
	if !errors.As(err, &uc) || uc.Name != "nope" {
		t.Errorf("got %v, want UnknownCommandError for nope", err)
	}
}

func TestFill(t *testing.T) {
	for _, test := range []struct {
		s, indent string
		width     int
		want      string
	}{
		{"", "", 10, ""},
		{"aa bb cc", "", 5, "aa bb\ncc"},
		{"one  two\nthree", "", 70, "one two three"},
		{"aa bb", "  ", 4, "  aa\n  bb"},
	} {
		if got := fill(test.s, test.width, test.indent); got != test.want {
			t.Errorf("fill(%q, %d, %q): got %q, want %q", test.s, test.width, test.indent, got, test.want)
		}
	}
}

func TestFillParagraphs(t *testing.T) {
	in := "A paragraph that\nwas wrapped by hand.\n\n    indented code\n    stays put"
	want := "A paragraph that was wrapped by hand.\n\n    indented code\n    stays put"
	if got := fillParagraphs(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
