package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		tabsize int
		want    int
	}{
		{"empty", "", 4, 0},
		{"tab", "\t", 4, 4},
		{"tab size 8", "\t", 8, 8},
		{"ascii", "A", 4, 1},
		{"ascii word", "hello", 4, 5},
		{"cjk wide", "漢", 4, 2},
		{"cjk word", "漢字", 4, 4},
		{"newline", "\n", 4, 2},
		{"carriage return", "\r", 4, 2},
		{"control is neutral", "\x01", 4, 2},
		{"mixed", "a\tb漢", 4, 8},
		{"fullwidth is narrow here", "Ａ", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text, tt.tabsize); got != tt.want {
				t.Errorf("DisplayWidth(%q, %d) = %d, want %d", tt.text, tt.tabsize, got, tt.want)
			}
		})
	}
}

func TestDisplayWidth_NeverBelowRuneCount(t *testing.T) {
	samples := []string{"", "abc", "漢字かな", "a\tb\nc", "שלום"}
	for _, s := range samples {
		runes := len([]rune(s))
		if got := DisplayWidth(s, 4); got < runes {
			t.Errorf("DisplayWidth(%q) = %d, below rune count %d", s, got, runes)
		}
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		tabsize int
		want    int
	}{
		{"no indent", "x", 4, 0},
		{"spaces", "  x", 4, 2},
		{"tab", "\tx", 4, 4},
		{"tab then space", "\t x", 4, 5},
		{"space then tab", " \tx", 4, 4},
		{"all whitespace", "   ", 4, 0},
		{"empty", "", 4, 0},
		{"tab size zero removes tabs", "\tx", 0, 0},
		{"tab size zero with spaces", "\t  x", 0, 2},
		{"negative tab size removes tabs", "\t x", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.line, tt.tabsize); got != tt.want {
				t.Errorf("Indent(%q, %d) = %d, want %d", tt.line, tt.tabsize, got, tt.want)
			}
		})
	}
}
