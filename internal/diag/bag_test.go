package diag

import "testing"

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatalf("empty bag must report no findings")
	}
	b.Warning(ResEmptyNamespace, "Gdk", "namespace was referenced but never defined")
	if b.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	if !b.HasWarnings() {
		t.Fatalf("expected a warning")
	}
	b.Error(ResUnresolvedType, "Gdk.Pixbuf", "referenced but never defined")
	if !b.HasErrors() {
		t.Fatalf("expected an error")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", b.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(4)
	b.Error(ResUnresolvedType, "Zed.Thing", "referenced but never defined")
	b.Warning(ResEmptyNamespace, "Alpha", "namespace was referenced but never defined")
	b.Error(ResUnresolvedType, "Alpha.Thing", "referenced but never defined")
	b.Sort()

	items := b.Items()
	want := []string{"Alpha", "Alpha.Thing", "Zed.Thing"}
	for i, subject := range want {
		if items[i].Subject != subject {
			t.Fatalf("items[%d].Subject = %q, want %q", i, items[i].Subject, subject)
		}
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(2)
	a.Error(ResUnresolvedType, "Foo.A", "referenced but never defined")
	b := NewBag(2)
	b.Error(ResUnresolvedType, "Foo.B", "referenced but never defined")
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("merge should append, got %d items", a.Len())
	}
}

func TestSeverityString(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.sev.String(); got != tc.want {
			t.Fatalf("Severity(%d).String() = %q, want %q", tc.sev, got, tc.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{ResUnresolvedType, "RES1001"},
		{LoadWarnRedefined, "LOAD2004"},
		{ReprUnsupported, "REPR3001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("Code(%d).ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}
