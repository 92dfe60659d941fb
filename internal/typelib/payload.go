package typelib

import (
	"fmt"

	"girgen/internal/library"
)

// Current schema version - increment when the payload format changes
const schemaVersion uint16 = 1

// Payload is the flat serialized form of a whole library. Slot order inside
// each namespace is the arena order, so TypeIDs survive a round trip
// unchanged.
type Payload struct {
	Schema     uint16
	Namespaces []NamespacePayload
}

type NamespacePayload struct {
	Name      string
	SlotNames []string      // per LocalID, in arena order
	Slots     []TypePayload // parallel to SlotNames
	Functions []FunctionPayload
	Constants []ConstantPayload
}

type TypeIDPayload struct {
	Ns    uint16
	Local uint32
}

type TypePayload struct {
	Defined     bool
	Kind        uint8
	Fundamental uint8
	Name        string
	CIdentifier string
	Target      TypeIDPayload
	Members     []MemberPayload
	Fields      []FieldPayload
	Functions   []FunctionPayload
	Signature   *FunctionPayload
	Elem        TypeIDPayload
	Key         TypeIDPayload
	Value       TypeIDPayload
}

type MemberPayload struct {
	Name        string
	CIdentifier string
	Value       string
}

type FieldPayload struct {
	Name string
	Type TypeIDPayload
}

type ParameterPayload struct {
	Name     string
	Type     TypeIDPayload
	Transfer uint8
}

type FunctionPayload struct {
	Name        string
	CIdentifier string
	Parameters  []ParameterPayload
	Return      ParameterPayload
}

type ConstantPayload struct {
	Name  string
	Type  TypeIDPayload
	Value string
}

func packTypeID(tid library.TypeID) TypeIDPayload {
	return TypeIDPayload{Ns: uint16(tid.Ns), Local: uint32(tid.Local)}
}

func unpackTypeID(p TypeIDPayload) library.TypeID {
	return library.TypeID{Ns: library.NamespaceID(p.Ns), Local: library.LocalID(p.Local)}
}

func packFunction(fn library.Function) FunctionPayload {
	p := FunctionPayload{
		Name:        fn.Name,
		CIdentifier: fn.CIdentifier,
		Return:      packParameter(fn.Return),
	}
	for _, param := range fn.Parameters {
		p.Parameters = append(p.Parameters, packParameter(param))
	}
	return p
}

func unpackFunction(p FunctionPayload) library.Function {
	fn := library.Function{
		Name:        p.Name,
		CIdentifier: p.CIdentifier,
		Return:      unpackParameter(p.Return),
	}
	for _, param := range p.Parameters {
		fn.Parameters = append(fn.Parameters, unpackParameter(param))
	}
	return fn
}

func packParameter(param library.Parameter) ParameterPayload {
	return ParameterPayload{
		Name:     param.Name,
		Type:     packTypeID(param.Type),
		Transfer: uint8(param.Transfer),
	}
}

func unpackParameter(p ParameterPayload) library.Parameter {
	return library.Parameter{
		Name:     p.Name,
		Type:     unpackTypeID(p.Type),
		Transfer: library.Transfer(p.Transfer),
	}
}

func packType(typ *library.Type) TypePayload {
	if typ == nil {
		return TypePayload{}
	}
	p := TypePayload{
		Defined:     true,
		Kind:        uint8(typ.Kind),
		Fundamental: uint8(typ.Fundamental),
		Name:        typ.Name,
		CIdentifier: typ.CIdentifier,
		Target:      packTypeID(typ.Target),
		Elem:        packTypeID(typ.Elem),
		Key:         packTypeID(typ.Key),
		Value:       packTypeID(typ.Value),
	}
	for _, m := range typ.Members {
		p.Members = append(p.Members, MemberPayload(m))
	}
	for _, f := range typ.Fields {
		p.Fields = append(p.Fields, FieldPayload{Name: f.Name, Type: packTypeID(f.Type)})
	}
	for _, fn := range typ.Functions {
		p.Functions = append(p.Functions, packFunction(fn))
	}
	if typ.Signature != nil {
		sig := packFunction(*typ.Signature)
		p.Signature = &sig
	}
	return p
}

func unpackType(p TypePayload) library.Type {
	typ := library.Type{
		Kind:        library.TypeKind(p.Kind),
		Fundamental: library.Fundamental(p.Fundamental),
		Name:        p.Name,
		CIdentifier: p.CIdentifier,
		Target:      unpackTypeID(p.Target),
		Elem:        unpackTypeID(p.Elem),
		Key:         unpackTypeID(p.Key),
		Value:       unpackTypeID(p.Value),
	}
	for _, m := range p.Members {
		typ.Members = append(typ.Members, library.Member(m))
	}
	for _, f := range p.Fields {
		typ.Fields = append(typ.Fields, library.Field{Name: f.Name, Type: unpackTypeID(f.Type)})
	}
	for _, fn := range p.Functions {
		typ.Functions = append(typ.Functions, unpackFunction(fn))
	}
	if p.Signature != nil {
		sig := unpackFunction(*p.Signature)
		typ.Signature = &sig
	}
	return typ
}

// libraryToPayload flattens a library into its serialized form.
func libraryToPayload(lib *library.Library) *Payload {
	payload := &Payload{Schema: schemaVersion}
	for i := 0; i < lib.NamespaceCount(); i++ {
		ns := lib.Namespace(library.NamespaceID(i))
		np := NamespacePayload{Name: ns.Name}
		for slot := 0; slot < ns.SlotCount(); slot++ {
			id := library.LocalID(slot)
			np.SlotNames = append(np.SlotNames, ns.NameByID(id))
			np.Slots = append(np.Slots, packType(ns.TypeByID(id)))
		}
		for _, fn := range ns.Functions {
			np.Functions = append(np.Functions, packFunction(fn))
		}
		for _, c := range ns.Constants {
			np.Constants = append(np.Constants, ConstantPayload{Name: c.Name, Type: packTypeID(c.Type), Value: c.Value})
		}
		payload.Namespaces = append(payload.Namespaces, np)
	}
	return payload
}

// payloadToLibrary rebuilds a library, replaying namespace and slot creation
// in arena order so every TypeID matches the dumped one.
func payloadToLibrary(payload *Payload) (*library.Library, error) {
	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("typelib schema %d not supported (want %d)", payload.Schema, schemaVersion)
	}
	if len(payload.Namespaces) == 0 || payload.Namespaces[0].Name != library.InternalNamespaceName {
		return nil, fmt.Errorf("typelib payload missing internal namespace")
	}

	lib := library.New()
	for i, np := range payload.Namespaces {
		nsID := lib.GetNamespace(np.Name)
		if int(nsID) != i {
			return nil, fmt.Errorf("namespace %q replayed out of order", np.Name)
		}
		ns := lib.Namespace(nsID)
		for slot, name := range np.SlotNames {
			id := ns.GetType(name)
			if int(id) != slot {
				return nil, fmt.Errorf("namespace %q: slot %q replayed out of order", np.Name, name)
			}
		}
		for slot, tp := range np.Slots {
			if !tp.Defined {
				continue
			}
			ns.AddType(np.SlotNames[slot], unpackType(tp))
		}
		for _, fn := range np.Functions {
			ns.AddFunction(unpackFunction(fn))
		}
		for _, c := range np.Constants {
			ns.AddConstant(library.Constant{Name: c.Name, Type: unpackTypeID(c.Type), Value: c.Value})
		}
	}
	return lib, nil
}
