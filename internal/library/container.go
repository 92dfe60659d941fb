package library

import "fmt"

// SynthesizeContainer builds a composite type from already-resolved element
// TypeIDs and interns it in the internal namespace. Recognized combinations
// of name and arity:
//
//	"array" (1), "GLib.HashTable" (2), "GLib.List" (1), "GLib.SList" (1)
//
// The canonical key embeds the element TypeIDs, so re-synthesizing with the
// same elements collapses to the same TypeID through the name index; there is
// no separate cache. An unrecognized combination returns false and interns
// nothing.
func (lib *Library) SynthesizeContainer(name string, inner []TypeID) (TypeID, bool) {
	var (
		key string
		typ Type
	)
	switch {
	case name == "array" && len(inner) == 1:
		key = fmt.Sprintf("array(%s)", inner[0])
		typ = MakeArray(inner[0])
	case name == "GLib.HashTable" && len(inner) == 2:
		key = fmt.Sprintf("HashTable(%s, %s)", inner[0], inner[1])
		typ = MakeHashTable(inner[0], inner[1])
	case name == "GLib.List" && len(inner) == 1:
		key = fmt.Sprintf("List(%s)", inner[0])
		typ = MakeList(inner[0])
	case name == "GLib.SList" && len(inner) == 1:
		key = fmt.Sprintf("SList(%s)", inner[0])
		typ = MakeSList(inner[0])
	default:
		return TypeID{}, false
	}
	return lib.AddType(InternalNamespace, key, typ), true
}
