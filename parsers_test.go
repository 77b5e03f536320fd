// Copyright 2021 Jonathan Amsterdam.

package cmdline

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParsers(t *testing.T) {
	for _, test := range []struct {
		name    string
		parse   ParseFunc
		input   string
		want    interface{}
		wantErr bool
	}{
		{
			name:  "string",
			parse: String,
			input: "foo",
			want:  "foo",
		},
		{
			name:  "int",
			parse: Int,
			input: "-5",
			want:  -5,
		},
		{
			name:    "int failure",
			parse:   Int,
			input:   "5x",
			wantErr: true,
		},
		{
			name:  "uint",
			parse: Uint,
			input: "32767",
			want:  uint(32767),
		},
		{
			name:    "uint rejects negatives",
			parse:   Uint,
			input:   "-1",
			wantErr: true,
		},
		{
			name:  "float",
			parse: Float,
			input: "2.5",
			want:  2.5,
		},
		{
			name:  "bool",
			parse: Bool,
			input: "TRUE",
			want:  true,
		},
		{
			name:  "duration",
			parse: Duration,
			input: "2h45m",
			want:  2*time.Hour + 45*time.Minute,
		},
		{
			name:  "oneof",
			parse: OneOf("a", "b"),
			input: "b",
			want:  "b",
		},
		{
			name:    "oneof rejects others",
			parse:   OneOf("a", "b"),
			input:   "c",
			wantErr: true,
		},
		{
			name:  "list of ints",
			parse: List(Int),
			input: "1 , -2,3",
			want:  []interface{}{1, -2, 3},
		},
		{
			name:    "list propagates element errors",
			parse:   List(Int),
			input:   "1,x",
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.parse(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("got %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(got, test.want) {
				t.Errorf("got %#v, want %#v", got, test.want)
			}
		})
	}
}
