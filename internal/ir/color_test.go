package ir

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#6366f1", RGB{99, 102, 241}, false},
		{"6366f1", RGB{99, 102, 241}, false},
		{"#FFFFFF", RGB{255, 255, 255}, false},
		{"#000000", RGB{0, 0, 0}, false},
		{"", RGB{}, true},
		{"#fff", RGB{}, true},
		{"#6366f1aa", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBString(t *testing.T) {
	c := RGB{99, 102, 241}
	if got := c.String(); got != "#6366f1" {
		t.Errorf("String() = %q, want %q", got, "#6366f1")
	}
}
