package common

import (
	"reflect"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean", in: "https://example.com/recipe", want: "https://example.com/recipe"},
		{name: "whitespace", in: "  https://example.com  ", want: "https://example.com"},
		{name: "trailing comma", in: "https://example.com/recipe,", want: "https://example.com/recipe"},
		{name: "markdown link", in: "[pancakes](https://example.com/pancakes)", want: "https://example.com/pancakes"},
		{name: "wrapping parens", in: "(https://example.com)", want: "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	valid, invalid := SanitizeAndValidateURLs([]string{
		"https://example.com/one",
		"  https://example.com/two, ",
		"not a url",
		"ftp://example.com/file",
		"",
	})

	wantValid := []string{"https://example.com/one", "https://example.com/two"}
	if !reflect.DeepEqual(valid, wantValid) {
		t.Errorf("valid = %q, want %q", valid, wantValid)
	}
	if len(invalid) != 3 {
		t.Errorf("invalid = %q, want 3 entries", invalid)
	}
}
