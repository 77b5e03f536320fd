// Copyright 2021 Jonathan Amsterdam.

package cmdline_test

import (
	"strings"

	"github.com/jba/cmdline"
)

func Example() {
	app := cmdline.New(cmdline.Config{Output: cmdline.Print})
	app.Main(&cmdline.Func{
		Name: "echo",
		Doc: "Repeat a word.\n" +
			"\n" +
			"word -- the word to repeat.\n" +
			"times -- how many times to repeat it.",
		Params: []cmdline.Param{
			{Name: "word"},
			{Name: "times", Default: 1},
		},
		Types: map[string]cmdline.ParseFunc{"times": cmdline.Int},
		Handler: func(args []interface{}, opts map[string]interface{}) (interface{}, error) {
			n := 1
			if v, ok := opts["times"]; ok {
				n = v.(int)
			}
			return strings.Repeat(args[0].(string), n), nil
		},
	})
	app.RunArgs([]string{"echo", "foobar", "--times", "2"})

	// Output:
	// foobarfoobar
}
