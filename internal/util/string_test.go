package util

import "testing"

func TestParseMemStringAsByte(t *testing.T) {
	testCases := []struct {
		input     string
		want      uint64
		expectErr bool
	}{
		{input: "4gb", want: 4 * 1024 * 1024 * 1024},
		{input: "4G", want: 4 * 1024 * 1024 * 1024},
		{input: "512mb", want: 512 * 1024 * 1024},
		{input: "128k", want: 128 * 1024},
		{input: "1024B", want: 1024},
		{input: "2", want: 2 * 1024 * 1024},
		{input: "0.5g", want: 512 * 1024 * 1024},
		{input: "four", expectErr: true},
		{input: "", expectErr: true},
		{input: "4tb", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMemStringAsByte(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %d, wanted %d", got, tc.want)
			}
		})
	}
}

func TestMemBytesToString(t *testing.T) {
	testCases := []struct {
		input uint64
		want  string
	}{
		{input: 4 * 1024 * 1024 * 1024, want: "4gb"},
		{input: 512 * 1024 * 1024, want: "512mb"},
		{input: 1000, want: "1000b"},
	}

	for _, tc := range testCases {
		if got := MemBytesToString(tc.input); got != tc.want {
			t.Errorf("MemBytesToString(%d) = %q, wanted %q", tc.input, got, tc.want)
		}
	}
}

func TestParseDurationStrToSeconds(t *testing.T) {
	testCases := []struct {
		input     string
		want      int64
		expectErr bool
	}{
		{input: "00:40:00", want: 2400},
		{input: "00:12:34", want: 754},
		{input: "1-00:00:00", want: 86400},
		{input: "2-01:02:03", want: 2*86400 + 3723},
		{input: "40:00", expectErr: true},
		{input: "walltime", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDurationStrToSeconds(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %d, wanted %d", got, tc.want)
			}
		})
	}
}

func TestSecondTimeFormat(t *testing.T) {
	testCases := []struct {
		input int64
		want  string
	}{
		{input: 2400, want: "00:40:00"},
		{input: 754, want: "00:12:34"},
		{input: 86400, want: "1-00:00:00"},
		{input: 2*86400 + 3723, want: "2-01:02:03"},
	}

	for _, tc := range testCases {
		if got := SecondTimeFormat(tc.input); got != tc.want {
			t.Errorf("SecondTimeFormat(%d) = %q, wanted %q", tc.input, got, tc.want)
		}
	}
}
