package style

import (
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "null\n"},
		{"raw string", `{"a":1}`, "{\n  \"a\": 1\n}\n"},
		{"go value", map[string]int{"a": 1}, "{\n  \"a\": 1\n}\n"},
		{"empty raw", "", "null\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatJSON(tt.input)
			if err != nil {
				t.Fatalf("FormatJSON failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatJSON(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatJSONInvalid(t *testing.T) {
	if _, err := FormatJSON(`{"unterminated`); err == nil {
		t.Error("expected an error for invalid raw JSON")
	}
}

func TestStringTokenEnd(t *testing.T) {
	tests := []struct {
		s     string
		start int
		want  int
	}{
		{`"abc" rest`, 0, 5},
		{`"a\"b"`, 0, 6},
		{`"unterminated`, 0, 13},
	}
	for _, tt := range tests {
		if got := stringTokenEnd(tt.s, tt.start); got != tt.want {
			t.Errorf("stringTokenEnd(%q, %d) = %d, want %d", tt.s, tt.start, got, tt.want)
		}
	}
}

func TestColorizeJSONKeepsContent(t *testing.T) {
	// With styling potentially disabled in test environments, the output
	// must still contain every original token in order.
	src := "{\n  \"file\": \"a.sqf\",\n  \"count\": 3\n}\n"
	out := colorizeJSON(src)
	for _, token := range []string{`"file"`, `"a.sqf"`, `"count"`, "3"} {
		if !strings.Contains(out, token) {
			t.Errorf("colorized output lost token %s", token)
		}
	}
}
