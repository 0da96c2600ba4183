package tarhash

import "testing"

func TestDeriveIsDeterministic(t *testing.T) {
	a := Derive("0005-abandon-ability-able-about", "deploy-salt")
	b := Derive("0005-abandon-ability-able-about", "deploy-salt")
	if a != b {
		t.Fatalf("Derive() is not deterministic: %s != %s", a, b)
	}
}

func TestDeriveDiffersByID(t *testing.T) {
	a := Derive("0005-abandon-ability-able-about", "deploy-salt")
	b := Derive("0006-abandon-ability-able-about", "deploy-salt")
	if a == b {
		t.Fatalf("different ids produced the same hash")
	}
}

func TestDeriveDiffersBySalt(t *testing.T) {
	a := Derive("0005-abandon-ability-able-about", "salt-one")
	b := Derive("0005-abandon-ability-able-about", "salt-two")
	if a == b {
		t.Fatalf("different salts produced the same hash")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	h := Derive("0005-abandon-ability-able-about", "deploy-salt")
	s := h.String()
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != h {
		t.Fatalf("Parse(String(h)) = %s, want %s", got, h)
	}
}

func TestParseRejectsBadLength(t *testing.T) {
	if _, err := Parse("deadbeef"); err == nil {
		t.Fatalf("Parse() accepted a short hash")
	}
}

func TestParseRejectsNonHex(t *testing.T) {
	bad := make([]byte, hashSize*2)
	for i := range bad {
		bad[i] = 'z'
	}
	if _, err := Parse(string(bad)); err == nil {
		t.Fatalf("Parse() accepted non-hex input")
	}
}
