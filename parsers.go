// Copyright 2021 Jonathan Amsterdam.

package cmdline

// Stock coercion functions for argument and option values.

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Int coerces a decimal string to an int.
func Int(s string) (interface{}, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Uint coerces a decimal string to a uint.
func Uint(s string) (interface{}, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return uint(u), nil
}

// Float coerces a string to a float64.
func Float(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Bool coerces a string to a bool, accepting the forms of
// strconv.ParseBool.
func Bool(s string) (interface{}, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Duration coerces a string like "300ms" or "2h45m" to a time.Duration.
func Duration(s string) (interface{}, error) {
	return time.ParseDuration(s)
}

// String returns its input unchanged. Declaring it is never necessary;
// it exists so type maps can be explicit about every parameter.
func String(s string) (interface{}, error) {
	return s, nil
}

// OneOf returns a coercion function that accepts only the given choices.
func OneOf(choices ...string) ParseFunc {
	return func(s string) (interface{}, error) {
		for _, c := range choices {
			if s == c {
				return s, nil
			}
		}
		return nil, fmt.Errorf("must be one of %s", strings.Join(choices, ", "))
	}
}

// List returns a coercion function that splits its input on commas and
// coerces each element with elem. The result is a []interface{}.
func List(elem ParseFunc) ParseFunc {
	return func(s string) (interface{}, error) {
		var vals []interface{}
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			v, err := elem(part)
			if err != nil {
				return nil, fmt.Errorf("%q: %v", part, err)
			}
			vals = append(vals, v)
		}
		return vals, nil
	}
}
