package validation

import "testing"

func TestRequired(t *testing.T) {
	v := make(Violations)
	Required("companyName", "Acme", v)
	if !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}
	Required("companyName", "   ", v)
	if v["companyName"] != "required" {
		t.Fatalf("expected required violation, got %v", v)
	}
}

func TestNIP(t *testing.T) {
	cases := map[string]bool{
		"5213017228":  true,
		"1234567890":  true,
		"":            true, // left to Required
		"123456789":   false,
		"12345678901": false,
		"52130172a8":  false,
	}
	for nip, ok := range cases {
		v := make(Violations)
		NIP("nip", nip, v)
		if ok != v.Empty() {
			t.Fatalf("nip %q: expected valid=%v, violations=%v", nip, ok, v)
		}
	}
}

func TestEmail(t *testing.T) {
	v := make(Violations)
	Email("email", "biuro@acme.pl", v)
	if !v.Empty() {
		t.Fatalf("expected valid email, got %v", v)
	}
	v = make(Violations)
	Email("email", "not-an-email", v)
	if v["email"] != "invalid_email" {
		t.Fatalf("expected invalid_email, got %v", v)
	}
	v = make(Violations)
	Email("email", "", v)
	if !v.Empty() {
		t.Fatalf("empty email should be left to Required, got %v", v)
	}
}
