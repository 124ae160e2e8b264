package timefmt

import (
	"errors"
	"testing"
)

func TestParseKeystrokes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "00:00"},
		{"abc", "00:00"},
		{"0", "00:00"},
		{"5", "00:05"},
		{"45", "00:45"},
		{"59", "00:59"},
		{"60", "01:00"},
		{"90", "01:30"},
		{"99", "01:39"},
		{"100", "01:00"},
		{"130", "01:30"},
		{"199", "01:59"}, // minutes clamp, no carry
		{"0830", "08:30"},
		{"1075", "10:59"}, // clamp again
		{"8:30", "08:30"}, // colon stripped, digits repacked
		{" 1 2 3 ", "01:23"},
	}
	for _, c := range cases {
		got := ParseKeystrokes(c.input)
		if got != c.want {
			t.Errorf("ParseKeystrokes(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"00:45", 45},
		{"01:30", 90},
		{"08:00", 480},
		{"26:30", 1590},
		{"120:05", 7205},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.input)
		if err != nil {
			t.Fatalf("ToMinutes(%q) returned error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestToMinutesMalformed(t *testing.T) {
	malformed := []string{"", "830", "8:", ":30", "8:7x", "ab:cd", "08:60", "-1:30", "08:-5", "1:2:3"}
	for _, s := range malformed {
		_, err := ToMinutes(s)
		if err == nil {
			t.Errorf("ToMinutes(%q) = nil error, want FormatError", s)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("ToMinutes(%q) error type = %T, want *FormatError", s, err)
		}
	}
}

func TestFromMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{90, "1:30"},
		{480, "8:00"},
		{1590, "26:30"},
		{3180, "53:00"},
	}
	for _, c := range cases {
		got := FromMinutes(c.input)
		if got != c.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestToHHMM(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{45, "00:45"},
		{150, "02:30"},
		{1590, "26:30"},
	}
	for _, c := range cases {
		got := ToHHMM(c.input)
		if got != c.want {
			t.Errorf("ToHHMM(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// FromMinutes(ToMinutes(s)) == s for canonical H:MM strings.
	for _, s := range []string{"0:00", "0:59", "1:30", "8:00", "26:30", "168:00"} {
		m, err := ToMinutes(s)
		if err != nil {
			t.Fatalf("ToMinutes(%q) returned error: %v", s, err)
		}
		if got := FromMinutes(m); got != s {
			t.Errorf("round trip %q -> %d -> %q", s, m, got)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero("00:00") {
		t.Error(`IsZero("00:00") = false, want true`)
	}
	if !IsZero("garbage") {
		t.Error(`IsZero("garbage") = false, want true`)
	}
	if IsZero("00:01") {
		t.Error(`IsZero("00:01") = true, want false`)
	}
}
