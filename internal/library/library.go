package library

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// ErrMalformedTypeName reports a type reference with more than one namespace
// qualifier, e.g. "A.B.C".
var ErrMalformedTypeName = errors.New("malformed type name")

// Library is the top-level collection of namespaces. Namespaces are created
// lazily on first mention and never removed; the graph only grows during
// ingestion. Namespaces are heap-allocated individually so a held pointer
// survives arena growth.
type Library struct {
	namespaces []*Namespace
	index      map[string]NamespaceID
}

// New constructs a library whose internal namespace is seeded with the full
// fundamental catalog.
func New() *Library {
	lib := &Library{
		index: make(map[string]NamespaceID, 8),
	}
	if id := lib.GetNamespace(InternalNamespaceName); id != InternalNamespace {
		panic("library: internal namespace must occupy ID 0")
	}
	for _, f := range fundamentalCatalog {
		lib.AddType(InternalNamespace, f.name, MakeFundamental(f.kind))
	}
	return lib
}

// Namespace returns the namespace for an ID, or nil when out of range. The
// pointer stays valid for the lifetime of the library.
func (lib *Library) Namespace(id NamespaceID) *Namespace {
	if int(id) >= len(lib.namespaces) {
		return nil
	}
	return lib.namespaces[id]
}

// NamespaceCount reports how many namespaces exist, the internal one
// included.
func (lib *Library) NamespaceCount() int { return len(lib.namespaces) }

// FindNamespace looks a namespace up by name without creating it.
func (lib *Library) FindNamespace(name string) (NamespaceID, bool) {
	id, ok := lib.index[name]
	return id, ok
}

// GetNamespace returns the identifier for name, creating the namespace on
// first mention. A namespace may end a run with zero defined types if it was
// only ever referenced; Validate reports that.
func (lib *Library) GetNamespace(name string) NamespaceID {
	if id, ok := lib.index[name]; ok {
		return id
	}
	value, err := safecast.Conv[uint16](len(lib.namespaces))
	if err != nil {
		panic(fmt.Errorf("namespace arena overflow: %w", err))
	}
	id := NamespaceID(value)
	lib.namespaces = append(lib.namespaces, newNamespace(name))
	lib.index[name] = id
	return id
}

// AddType defines name in the given namespace and returns its TypeID. Used
// both for ordinary declarations and for container synthesis into the
// internal namespace.
func (lib *Library) AddType(nsID NamespaceID, name string, typ Type) TypeID {
	return TypeID{Ns: nsID, Local: lib.namespaces[nsID].AddType(name, typ)}
}

// ResolveType resolves a possibly-qualified type name to a TypeID, creating
// forward-reference slots (and namespaces) as needed. Precedence, in order:
//
//  1. a qualified "NS.Type" name resolves inside NS, creating it on first
//     mention; more than one qualifier is malformed input;
//  2. an exact-name hit in the internal namespace wins unconditionally, so
//     fundamentals and synthesized containers can never be shadowed;
//  3. otherwise the name resolves in the current namespace, interning a
//     forward-reference slot when unseen.
//
// The order is load-bearing: it keeps resolution deterministic and
// idempotent no matter how declarations and references interleave.
func (lib *Library) ResolveType(current NamespaceID, name string) (TypeID, error) {
	if strings.Contains(name, ".") {
		parts := strings.SplitN(name, ".", 3)
		if len(parts) != 2 {
			return TypeID{}, fmt.Errorf("%w: %q has more than one namespace qualifier", ErrMalformedTypeName, name)
		}
		nsID := lib.GetNamespace(parts[0])
		return TypeID{Ns: nsID, Local: lib.namespaces[nsID].GetType(parts[1])}, nil
	}
	if id, ok := lib.namespaces[InternalNamespace].FindType(name); ok {
		return TypeID{Ns: InternalNamespace, Local: id}, nil
	}
	return TypeID{Ns: current, Local: lib.namespaces[current].GetType(name)}, nil
}

// TypeByID fetches the type for an ID. Nil means the slot is still an
// unresolved forward reference, or the ID does not address an existing slot.
func (lib *Library) TypeByID(tid TypeID) *Type {
	ns := lib.Namespace(tid.Ns)
	if ns == nil {
		return nil
	}
	return ns.TypeByID(tid.Local)
}

// QualifiedName renders "namespace.name" for a TypeID, or the empty string
// for an ID that addresses no slot.
func (lib *Library) QualifiedName(tid TypeID) string {
	ns := lib.Namespace(tid.Ns)
	if ns == nil || int(tid.Local) >= ns.SlotCount() {
		return ""
	}
	return ns.Name + "." + ns.NameByID(tid.Local)
}
