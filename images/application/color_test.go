package application

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  color.NRGBA
		expectErr bool
	}{
		{name: "Long hex", input: "#fcfcfc", expected: color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff}},
		{name: "Short hex", input: "#ddd", expected: color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}},
		{name: "Upper case hex", input: "#AAA", expected: color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}},
		{name: "Short hex with alpha", input: "#f008", expected: color.NRGBA{R: 0xff, A: 0x88}},
		{name: "Long hex with alpha", input: "#00ff0080", expected: color.NRGBA{G: 0xff, A: 0x80}},
		{name: "Named color", input: "red", expected: color.NRGBA{R: 0xff, A: 0xff}},
		{name: "Transparent", input: "transparent", expected: color.NRGBA{}},
		{name: "Missing hash", input: "fcfcfc", expectErr: true},
		{name: "Bad length", input: "#abcde", expectErr: true},
		{name: "Bad digits", input: "#zzz", expectErr: true},
		{name: "Markup", input: `"/><script>`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseColor(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error, got %v", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestColorOrFallsBack(t *testing.T) {
	got := colorOr("not-a-color", "#ddd")
	want := color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	if got != want {
		t.Errorf("colorOr() = %v, want %v", got, want)
	}
}
