package reader

import "testing"

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"Arial-BoldMT", true},
		{"ArialBlack", true},
		{"SourceSansPro-Heavy", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
