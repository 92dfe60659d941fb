package typelib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"girgen/internal/library"
)

func buildLibrary(t *testing.T) *library.Library {
	t.Helper()
	lib := library.New()
	gtk := lib.GetNamespace("Gtk")

	widget := lib.AddType(gtk, "Widget", library.MakeClass("Widget", []library.Function{{
		Name:        "show",
		CIdentifier: "gtk_widget_show",
		Parameters:  []library.Parameter{{Name: "widget", Transfer: library.TransferNone}},
	}}))
	lib.AddType(gtk, "Orientation", library.MakeEnumeration("Orientation", []library.Member{
		{Name: "horizontal", CIdentifier: "GTK_ORIENTATION_HORIZONTAL", Value: "0"},
	}, nil))
	lib.AddType(gtk, "WidgetPtr", library.MakeAlias("WidgetPtr", "GtkWidgetPtr", widget))

	utf8, err := lib.ResolveType(library.InternalNamespace, "utf8")
	if err != nil {
		t.Fatalf("resolve utf8: %v", err)
	}
	if _, ok := lib.SynthesizeContainer("GLib.List", []library.TypeID{widget}); !ok {
		t.Fatalf("list synthesis failed")
	}
	if _, ok := lib.SynthesizeContainer("GLib.HashTable", []library.TypeID{utf8, widget}); !ok {
		t.Fatalf("hash table synthesis failed")
	}

	ns := lib.Namespace(gtk)
	ns.AddFunction(library.Function{Name: "init", CIdentifier: "gtk_init"})
	ns.AddConstant(library.Constant{Name: "MAJOR_VERSION", Type: utf8, Value: "4"})

	if bag := lib.Validate(); bag.HasErrors() {
		t.Fatalf("fixture library must validate: %v", bag.Items())
	}
	return lib
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lib := buildLibrary(t)
	path := filepath.Join(t.TempDir(), "out", "gtk.typelib")

	if err := Save(lib, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("dump should exist")
	}

	// TypeIDs must survive unchanged
	gtk, ok := loaded.FindNamespace("Gtk")
	if !ok {
		t.Fatalf("Gtk namespace lost")
	}
	origGtk, _ := lib.FindNamespace("Gtk")
	if gtk != origGtk {
		t.Fatalf("namespace ID changed: %d -> %d", origGtk, gtk)
	}

	ns := loaded.Namespace(gtk)
	id, ok := ns.FindType("WidgetPtr")
	if !ok {
		t.Fatalf("alias lost")
	}
	alias := ns.TypeByID(id)
	if alias == nil || alias.Kind != library.KindAlias {
		t.Fatalf("alias kind lost: %+v", alias)
	}
	repr, err := loaded.Representation(library.TypeID{Ns: gtk, Local: id})
	if err != nil || repr != "Widget*" {
		t.Fatalf("alias repr after reload = %q, %v", repr, err)
	}

	// synthesizing the same container again must hit the replayed slot
	widgetID := alias.Target
	origList, _ := lib.SynthesizeContainer("GLib.List", []library.TypeID{widgetID})
	reloadList, ok := loaded.SynthesizeContainer("GLib.List", []library.TypeID{widgetID})
	if !ok || origList != reloadList {
		t.Fatalf("container identity changed across a round trip: %v vs %v", origList, reloadList)
	}

	if len(ns.Functions) != 1 || ns.Functions[0].CIdentifier != "gtk_init" {
		t.Fatalf("namespace functions lost: %v", ns.Functions)
	}
	if len(ns.Constants) != 1 || ns.Constants[0].Value != "4" {
		t.Fatalf("constants lost: %v", ns.Constants)
	}
	enumID, _ := ns.FindType("Orientation")
	enum := ns.TypeByID(enumID)
	if enum == nil || len(enum.Members) != 1 || enum.Members[0].CIdentifier != "GTK_ORIENTATION_HORIZONTAL" {
		t.Fatalf("enum members lost: %+v", enum)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, ok, err := Load(filepath.Join(t.TempDir(), "absent.typelib"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if ok {
		t.Fatalf("missing file must report not-found")
	}
}

func TestLoadRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.typelib")
	data, err := msgpack.Marshal(&Payload{Schema: schemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("schema mismatch must be rejected")
	}
}

func TestSaveAtomicReplace(t *testing.T) {
	lib := buildLibrary(t)
	path := filepath.Join(t.TempDir(), "gtk.typelib")
	if err := Save(lib, path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := Save(lib, path); err != nil {
		t.Fatalf("second save must replace the first: %v", err)
	}
	if _, ok, err := Load(path); err != nil || !ok {
		t.Fatalf("reload after replace: ok=%v err=%v", ok, err)
	}
}
