package registry

import "testing"

func TestBuildAndLookup(t *testing.T) {
	r := Build(DarwinSyscalls())

	s, ok := r.Lookup(5)
	if !ok {
		t.Fatal("Lookup(5) should find open")
	}
	if s.Name != "open" {
		t.Errorf("Lookup(5).Name = %q, want open", s.Name)
	}
	if s.Category != CategoryFile {
		t.Errorf("Lookup(5).Category = %v, want CategoryFile", s.Category)
	}
}

func TestLookupByName(t *testing.T) {
	r := Build(DarwinSyscalls())

	s, ok := r.LookupByName("OPEN")
	if !ok {
		t.Fatal("LookupByName(OPEN) should be case-insensitive")
	}
	if s.Number != 5 {
		t.Errorf("LookupByName(OPEN).Number = %d, want 5", s.Number)
	}
}

func TestLookupMiss(t *testing.T) {
	r := Build(DarwinSyscalls())
	if _, ok := r.Lookup(99999); ok {
		t.Error("Lookup(99999) should miss")
	}
}

func TestUnknown(t *testing.T) {
	s := Unknown(424242)
	if s.Name != "syscall_424242" {
		t.Errorf("Unknown().Name = %q, want syscall_424242", s.Name)
	}
	if s.Category != CategoryMisc {
		t.Errorf("Unknown().Category = %v, want CategoryMisc", s.Category)
	}
	if len(s.Parameters) != 0 {
		t.Error("Unknown() should carry no parameter descriptors")
	}
}

func TestNoDuplicateNumbers(t *testing.T) {
	seen := make(map[uint64]string)
	for _, s := range DarwinSyscalls() {
		if prev, ok := seen[s.Number]; ok {
			t.Errorf("syscall number %d used by both %q and %q", s.Number, prev, s.Name)
		}
		seen[s.Number] = s.Name
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, c := range []Category{
		CategoryFile, CategoryNetwork, CategoryProcess, CategoryMemory,
		CategorySignal, CategoryIPC, CategoryThread, CategoryTime,
		CategorySysInfo, CategorySecurity, CategoryDebug, CategoryMisc,
	} {
		parsed, ok := ParseCategory(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseCategory(%q) = (%v, %v), want (%v, true)", c.String(), parsed, ok, c)
		}
	}
}
