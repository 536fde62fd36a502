package parser

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      *Expression
		expectErr bool
	}{
		{
			name:  "single term",
			input: "state=R",
			want: &Expression{
				Filters: []*Filter{
					{Key: "state", Value: "R"},
				},
			},
		},
		{
			name:  "multiple terms",
			input: "state=R queue=batch",
			want: &Expression{
				Filters: []*Filter{
					{Key: "state", Value: "R"},
					{Key: "queue", Value: "batch"},
				},
			},
		},
		{
			name:  "quoted value",
			input: `name="wde run"`,
			want: &Expression{
				Filters: []*Filter{
					{Key: "name", Value: "wde run"},
				},
			},
		},
		{
			name:  "value with dots and dashes",
			input: "name=wde-1.batch",
			want: &Expression{
				Filters: []*Filter{
					{Key: "name", Value: "wde-1.batch"},
				},
			},
		},
		{
			name:      "missing value",
			input:     "state=",
			expectErr: true,
		},
		{
			name:      "missing key",
			input:     "=R",
			expectErr: true,
		},
		{
			name:      "empty expression",
			input:     "",
			expectErr: true,
		},
		{
			name:      "double operator",
			input:     "state==R",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %#v, wanted %#v", got, tc.want)
			}
		})
	}
}
