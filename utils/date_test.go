package utils

import "testing"

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-03-10", false},
		{"2024-12-31", false},
		{"2024-02-29", false}, // leap day
		{"2023-02-29", true},  // not a leap year
		{"2024-02-30", true},  // matches the regex but is not a real date
		{"2024-13-01", true},  // month out of range
		{"2024-00-10", true},  // month zero
		{"24-03-10", true},    // wrong width
		{"2024/03/10", true},  // wrong separator
		{"2024-3-10", true},   // unpadded
		{"", true},
		{"not-a-date", true},
	}

	for _, tt := range tests {
		got, err := ValidateDate(tt.in)
		if tt.wantErr && err == nil {
			t.Errorf("ValidateDate(%q) = %q, want error", tt.in, got)
		}
		if !tt.wantErr {
			if err != nil {
				t.Errorf("ValidateDate(%q) error: %v", tt.in, err)
			} else if got != tt.in {
				t.Errorf("ValidateDate(%q) = %q, want input unchanged", tt.in, got)
			}
		}
	}
}
