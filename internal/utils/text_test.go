package utils

import "testing"

func TestSquashWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"首尾空白", "  hello  ", "hello"},
		{"连续空格折叠", "a   b    c", "a b c"},
		{"换行和制表符", "a\n\tb \r\n c", "a b c"},
		{"已归一化", "a b", "a b"},
		{"全空白", "   \t\n ", ""},
		{"空字符串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquashWhitespace(tt.input); got != tt.want {
				t.Errorf("SquashWhitespace(%q) = %q, 期望 %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"纯数字", "250", 250},
		{"数字带后缀", "100 rows", 100},
		{"数字带前缀", "Show 50", 50},
		{"千分位", "1,042", 1042},
		{"无数字", "All", 0},
		{"空字符串", "", 0},
		{"零", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDigits(tt.input); got != tt.want {
				t.Errorf("ParseDigits(%q) = %d, 期望 %d", tt.input, got, tt.want)
			}
		})
	}
}
