package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-15", "2024-02-29", "2025-12-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "2025/03/15", "20250315", "", "2025-3-5"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	valid := []string{"2025-03", "2024-12"}
	invalid := []string{"2025-13", "2025-3", "2025", "", "2025-03-15"}
	for _, ym := range valid {
		if !IsValidYearMonth(ym) {
			t.Errorf("IsValidYearMonth(%q) = false, want true", ym)
		}
	}
	for _, ym := range invalid {
		if IsValidYearMonth(ym) {
			t.Errorf("IsValidYearMonth(%q) = true, want false", ym)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"01012345678", "010-1234-5678", "010 1234 5678", "0161234567"}
	invalid := []string{"0212345678", "010-1234", "010123456789", "abc12345678", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	actions := []string{"in", "out"}
	if !IsInSlice("in", actions) {
		t.Error(`IsInSlice("in") = false, want true`)
	}
	if IsInSlice("IN", actions) {
		t.Error(`IsInSlice("IN") = true, want false`)
	}
}
