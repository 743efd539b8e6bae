package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Status
		wantErr bool
	}{
		{"active", "active", StatusActive, false},
		{"uppercase normalized", "ACTIVE", StatusActive, false},
		{"mixed case normalized", "Discontinued", StatusDiscontinued, false},
		{"inactive", "inactive", StatusInactive, false},
		{"pending", "pending", StatusPending, false},
		{"empty", "", "", true},
		{"whitespace", "  ", "", true},
		{"unknown", "archived", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q): expected error, got %q", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q): unexpected error %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	if !StatusActive.IsActive() {
		t.Fatal("active status should report active")
	}
	for _, s := range []Status{StatusInactive, StatusPending, StatusDiscontinued} {
		if s.IsActive() {
			t.Fatalf("%q should not report active", s)
		}
	}
}
