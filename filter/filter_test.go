package filter

import "macstrace/registry"

import "testing"

func TestParseEmpty(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Allows(registry.Schema{Name: "open", Category: registry.CategoryFile}) {
		t.Fatalf("nil predicate should allow everything")
	}
}

func TestParseNames(t *testing.T) {
	p, err := Parse("open,openat")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Allows(registry.Schema{Name: "open", Category: registry.CategoryFile}) {
		t.Fatalf("expected open to be allowed")
	}
	if !p.Allows(registry.Schema{Name: "OpenAt", Category: registry.CategoryFile}) {
		t.Fatalf("expected name match to be case-insensitive")
	}
	if p.Allows(registry.Schema{Name: "read", Category: registry.CategoryFile}) {
		t.Fatalf("read should not be allowed")
	}
}

func TestParseCategories(t *testing.T) {
	p, err := Parse("network")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Allows(registry.Schema{Name: "connect", Category: registry.CategoryNetwork}) {
		t.Fatalf("expected category match")
	}
	if p.Allows(registry.Schema{Name: "open", Category: registry.CategoryFile}) {
		t.Fatalf("file category should not match")
	}
}

func TestParseMixture(t *testing.T) {
	p, err := Parse("open, network")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Allows(registry.Schema{Name: "open", Category: registry.CategoryFile}) {
		t.Fatalf("expected name match")
	}
	if !p.Allows(registry.Schema{Name: "sendto", Category: registry.CategoryNetwork}) {
		t.Fatalf("expected category match")
	}
	if p.Allows(registry.Schema{Name: "close", Category: registry.CategoryFile}) {
		t.Fatalf("close should not match either clause")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("open,,read"); err == nil {
		t.Fatalf("expected an error for an empty token")
	}
}
