package hellopass

import "testing"

func TestParseConfirmAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
		{"yess\n", false},
	}

	for _, tt := range tests {
		if got := parseConfirmAnswer(tt.input); got != tt.want {
			t.Errorf("parseConfirmAnswer(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}
