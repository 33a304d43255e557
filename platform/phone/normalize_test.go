package phone

import "testing"

func TestDashed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ten digits", in: "5551234567", want: "555-123-4567"},
		{name: "already dashed", in: "555-123-4567", want: "555-123-4567"},
		{name: "eleven digits untouched", in: "15551234567", want: "15551234567"},
		{name: "ten chars with letters untouched", in: "555123456x", want: "555123456x"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dashed(tt.in); got != tt.want {
				t.Fatalf("Dashed(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeE164(t *testing.T) {
	if got := NormalizeE164(" 201-555-0123 "); got != "+12015550123" {
		t.Fatalf("expected +12015550123, got %q", got)
	}
	if got := NormalizeE164(" 123 "); got != "123" {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("201-555-0123") {
		t.Fatal("expected example US number to be valid")
	}
	if IsValid("") || IsValid("123") {
		t.Fatal("expected short inputs to be invalid")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"555-123-4567", "***-***-4567"},
		{"5551234567", "******4567"},
		{"12", "*2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Mask(tt.in); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskEmail(t *testing.T) {
	if got := MaskEmail("user@example.com"); got != "u**r@example.com" {
		t.Fatalf("unexpected mask %q", got)
	}
	if got := MaskEmail("a@b.com"); got != "a@b.com" {
		t.Fatalf("expected single-char local part unchanged, got %q", got)
	}
}
