package ui

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
	}{
		{"#3D5AFE", color.RGBA{R: 61, G: 90, B: 254, A: 255}},
		{"#00C853", color.RGBA{R: 0, G: 200, B: 83, A: 255}},
		{"00C853", color.RGBA{R: 0, G: 200, B: 83, A: 255}},
		{" #FF6D00 ", color.RGBA{R: 255, G: 109, B: 0, A: 255}},
		{"", defaultAccent},
		{"#FFF", defaultAccent},
		{"#GGGGGG", defaultAccent},
	}

	for _, test := range tests {
		got := ParseHexColor(test.input)
		if got != test.expected {
			t.Errorf("ParseHexColor(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}
