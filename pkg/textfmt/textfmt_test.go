package textfmt

import "testing"

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"Even padding", "ab", 6, "  ab  "},
		{"Odd padding favors right", "ab", 5, " ab  "},
		{"October 1582 header", "October 1582", 20, "    October 1582    "},
		{"Exact width", "abcd", 4, "abcd"},
		{"Wider than width", "abcdef", 4, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Center(tt.s, tt.width); got != tt.want {
				t.Errorf("Center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want string
	}{
		{"Blank for zero", 0, "  "},
		{"Single digit padded", 5, " 5"},
		{"Double digit", 28, "28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cell(tt.day); got != tt.want {
				t.Errorf("Cell(%d) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}
