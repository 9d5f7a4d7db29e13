package num

import "testing"

func TestParseComma(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{"7.5", 7.5, false},
		{"7,5", 7.5, false},
		{" 12,25 ", 12.25, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseComma(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseComma(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseComma(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseComma(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCommaOr(t *testing.T) {
	if got := ParseCommaOr("x", 0); got != 0 {
		t.Fatalf("ParseCommaOr(x, 0) = %v, want 0", got)
	}
	if got := ParseCommaOr("3,5", 0); got != 3.5 {
		t.Fatalf("ParseCommaOr(3,5, 0) = %v, want 3.5", got)
	}
}
