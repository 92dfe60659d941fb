package library

import (
	"fmt"

	"fortio.org/safecast"
)

// Namespace mirrors one library's API surface: a name, an append-only arena
// of type slots, the top-level functions and the constants. A slot holding
// nil is a forward reference: the name has been seen but its definition has
// not arrived yet.
type Namespace struct {
	Name      string
	types     []*Type
	names     []string // slot name per LocalID, parallel to types
	index     map[string]LocalID
	Functions []Function
	Constants []Constant
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		Name:  name,
		index: make(map[string]LocalID, 16),
	}
}

// GetType returns the local identifier for name, appending an empty slot on
// first mention. The second call with the same name returns the same ID.
func (ns *Namespace) GetType(name string) LocalID {
	if id, ok := ns.index[name]; ok {
		return id
	}
	value, err := safecast.Conv[uint32](len(ns.types))
	if err != nil {
		panic(fmt.Errorf("namespace %q type arena overflow: %w", ns.Name, err))
	}
	id := LocalID(value)
	ns.types = append(ns.types, nil)
	ns.names = append(ns.names, name)
	ns.index[name] = id
	return id
}

// AddType resolves the slot for name to hold typ, creating the slot first
// when needed. A slot that already held a type is overwritten without
// diagnostic; redefinition policy lives in the caller.
func (ns *Namespace) AddType(name string, typ Type) LocalID {
	id := ns.GetType(name)
	t := typ
	ns.types[id] = &t
	return id
}

// FindType looks name up without creating a slot. Purely local: dotted names
// are not interpreted here.
func (ns *Namespace) FindType(name string) (LocalID, bool) {
	id, ok := ns.index[name]
	return id, ok
}

// TypeByID returns the type held by the slot, or nil while the slot is still
// an unresolved forward reference or the ID is out of range.
func (ns *Namespace) TypeByID(id LocalID) *Type {
	if int(id) >= len(ns.types) {
		return nil
	}
	return ns.types[id]
}

// NameByID returns the name the slot was interned under.
func (ns *Namespace) NameByID(id LocalID) string {
	if int(id) >= len(ns.names) {
		return ""
	}
	return ns.names[id]
}

// SlotCount reports how many slots have been interned, resolved or not.
func (ns *Namespace) SlotCount() int { return len(ns.types) }

// DefinedCount reports how many slots hold a type.
func (ns *Namespace) DefinedCount() int {
	n := 0
	for _, t := range ns.types {
		if t != nil {
			n++
		}
	}
	return n
}

// Unresolved returns, in interning order, every name whose slot is still
// empty.
func (ns *Namespace) Unresolved() []string {
	var unresolved []string
	for id, t := range ns.types {
		if t == nil {
			unresolved = append(unresolved, ns.names[id])
		}
	}
	return unresolved
}

// AddFunction appends a top-level function to the namespace.
func (ns *Namespace) AddFunction(fn Function) {
	ns.Functions = append(ns.Functions, fn)
}

// AddConstant appends a constant to the namespace.
func (ns *Namespace) AddConstant(c Constant) {
	ns.Constants = append(ns.Constants, c)
}
