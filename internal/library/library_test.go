package library

import (
	"errors"
	"testing"
)

func TestInternalNamespaceSeeded(t *testing.T) {
	lib := New()
	id, ok := lib.FindNamespace(InternalNamespaceName)
	if !ok || id != InternalNamespace {
		t.Fatalf("internal namespace missing or misplaced: id=%d ok=%v", id, ok)
	}
	tid, err := lib.ResolveType(InternalNamespace, "gint32")
	if err != nil {
		t.Fatalf("resolve gint32: %v", err)
	}
	typ := lib.TypeByID(tid)
	if typ == nil || typ.Kind != KindFundamental || typ.Fundamental != FundamentalInt32 {
		t.Fatalf("gint32 should be the Int32 fundamental, got %+v", typ)
	}
}

func TestFundamentalPrecedence(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")
	// a user type literally named gint32 must not shadow the fundamental
	lib.AddType(foo, "gint32", MakeRecord("gint32", nil))

	tid, err := lib.ResolveType(foo, "gint32")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tid.Ns != InternalNamespace {
		t.Fatalf("fundamental must win over the user declaration, resolved into ns %d", tid.Ns)
	}
	if typ := lib.TypeByID(tid); typ.Kind != KindFundamental {
		t.Fatalf("expected the fundamental, got kind %s", typ.Kind)
	}
}

func TestQualifiedVsUnqualifiedResolution(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")

	qualified, err := lib.ResolveType(foo, "GLib.List")
	if err != nil {
		t.Fatalf("resolve qualified: %v", err)
	}
	glib, ok := lib.FindNamespace("GLib")
	if !ok {
		t.Fatalf("qualified reference must create the GLib namespace")
	}
	if qualified.Ns != glib {
		t.Fatalf("qualified name resolved into ns %d, want %d", qualified.Ns, glib)
	}

	unqualified, err := lib.ResolveType(foo, "List")
	if err != nil {
		t.Fatalf("resolve unqualified: %v", err)
	}
	if unqualified.Ns != foo {
		t.Fatalf("unqualified name must resolve in the current namespace, got ns %d", unqualified.Ns)
	}
	if qualified == unqualified {
		t.Fatalf("GLib.List and Foo.List must be distinct")
	}
}

func TestForwardReferenceResolvedInPlace(t *testing.T) {
	lib := New()
	bar := lib.GetNamespace("Bar")

	before, err := lib.ResolveType(bar, "Foo.Widget")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if lib.TypeByID(before) != nil {
		t.Fatalf("slot must be empty before the definition arrives")
	}

	foo, _ := lib.FindNamespace("Foo")
	defined := lib.AddType(foo, "Widget", MakeRecord("Widget", nil))
	if defined != before {
		t.Fatalf("definition must populate the forward slot, not issue a new TypeID: %v vs %v", defined, before)
	}
	if typ := lib.TypeByID(before); typ == nil || typ.Kind != KindRecord {
		t.Fatalf("original TypeID must now return the defined type, got %+v", typ)
	}
}

func TestResolveIdempotent(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")
	first, err := lib.ResolveType(foo, "Gdk.Pixbuf")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := lib.ResolveType(foo, "Gdk.Pixbuf")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first != second {
		t.Fatalf("resolution must be idempotent: %v vs %v", first, second)
	}
}

func TestMultiLevelQualifierRejected(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")
	if _, err := lib.ResolveType(foo, "A.B.C"); !errors.Is(err, ErrMalformedTypeName) {
		t.Fatalf("expected ErrMalformedTypeName, got %v", err)
	}
}

func TestQualifiedName(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")
	tid := lib.AddType(foo, "Widget", MakeRecord("Widget", nil))
	if got := lib.QualifiedName(tid); got != "Foo.Widget" {
		t.Fatalf("QualifiedName = %q, want %q", got, "Foo.Widget")
	}
	if got := lib.QualifiedName(TypeID{Ns: 99, Local: 0}); got != "" {
		t.Fatalf("invalid TypeID should render empty, got %q", got)
	}
}

func TestNamespacePointerSurvivesGrowth(t *testing.T) {
	lib := New()
	foo := lib.GetNamespace("Foo")
	held := lib.Namespace(foo)

	// grow the arena well past any initial capacity
	for _, name := range []string{"Gdk", "GLib", "Pango", "Atk", "Gio", "Cairo"} {
		lib.GetNamespace(name)
	}

	held.AddFunction(Function{Name: "init"})
	held.AddType("Widget", MakeRecord("Widget", nil))

	fresh := lib.Namespace(foo)
	if len(fresh.Functions) != 1 || fresh.Functions[0].Name != "init" {
		t.Fatalf("mutation through a held pointer was lost: %v", fresh.Functions)
	}
	if _, ok := fresh.FindType("Widget"); !ok {
		t.Fatalf("type added through a held pointer was lost")
	}
}

func TestTypeByIDInvalid(t *testing.T) {
	lib := New()
	if lib.TypeByID(TypeID{Ns: 42, Local: 7}) != nil {
		t.Fatalf("out-of-range TypeID must return nil")
	}
}
