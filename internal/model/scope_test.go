package model

import "testing"

func TestDemoScope(t *testing.T) {
	sc := DemoScope()
	if sc.UserID != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("unexpected demo user id %q", sc.UserID)
	}
	if !sc.Demo || sc.Email != DemoEmail || sc.Name() != DemoDisplayName {
		t.Errorf("unexpected demo scope %+v", sc)
	}
}

func TestScopeName(t *testing.T) {
	if got := (Scope{UserID: "u1"}).Name(); got != "User" {
		t.Errorf("expected fallback name, got %q", got)
	}
	if !(Scope{}).IsZero() {
		t.Errorf("empty scope should be zero")
	}
}
