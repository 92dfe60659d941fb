package library

import "fmt"

// TypeKind enumerates all supported kinds of types.
type TypeKind uint8

const (
	KindFundamental TypeKind = iota
	KindAlias
	KindEnumeration
	KindBitfield
	KindRecord
	KindUnion
	KindCallback
	KindInterface
	KindClass
	KindArray
	KindHashTable
	KindList
	KindSList
)

func (k TypeKind) String() string {
	switch k {
	case KindFundamental:
		return "fundamental"
	case KindAlias:
		return "alias"
	case KindEnumeration:
		return "enumeration"
	case KindBitfield:
		return "bitfield"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindCallback:
		return "callback"
	case KindInterface:
		return "interface"
	case KindClass:
		return "class"
	case KindArray:
		return "array"
	case KindHashTable:
		return "hashtable"
	case KindList:
		return "list"
	case KindSList:
		return "slist"
	default:
		return fmt.Sprintf("TypeKind(%d)", k)
	}
}

// Transfer describes ownership movement across a call boundary: nothing, the
// container only, or the container and its contents.
type Transfer uint8

const (
	TransferNone Transfer = iota
	TransferContainer
	TransferFull
)

// TransferByName maps the textual annotation used by API descriptions to a
// Transfer mode.
func TransferByName(name string) (Transfer, bool) {
	switch name {
	case "none":
		return TransferNone, true
	case "container":
		return TransferContainer, true
	case "full":
		return TransferFull, true
	}
	return TransferNone, false
}

func (t Transfer) String() string {
	switch t {
	case TransferNone:
		return "none"
	case TransferContainer:
		return "container"
	case TransferFull:
		return "full"
	default:
		return fmt.Sprintf("Transfer(%d)", t)
	}
}

// Parameter is one value crossing a function boundary.
type Parameter struct {
	Name     string
	Type     TypeID
	Transfer Transfer
}

// Function describes a callable: its declared name, the external C symbol,
// ordered parameters and a single return parameter.
type Function struct {
	Name        string
	CIdentifier string
	Parameters  []Parameter
	Return      Parameter
}

// Member is one named value of an enumeration or bitfield.
type Member struct {
	Name        string
	CIdentifier string
	Value       string
}

// Field is one member of a union.
type Field struct {
	Name string
	Type TypeID
}

// Constant is a namespace-level named value.
type Constant struct {
	Name  string
	Type  TypeID
	Value string
}

// Type is a kind-tagged descriptor for one node of the type graph. Only the
// fields relevant to Kind are populated; everything else stays zero.
type Type struct {
	Kind        TypeKind
	Fundamental Fundamental // KindFundamental
	Name        string      // declared name of nominal kinds
	CIdentifier string      // KindAlias
	Target      TypeID      // KindAlias
	Members     []Member    // KindEnumeration, KindBitfield
	Fields      []Field     // KindUnion
	Functions   []Function  // nominal kinds
	Signature   *Function   // KindCallback
	Elem        TypeID      // KindArray, KindList, KindSList
	Key         TypeID      // KindHashTable
	Value       TypeID      // KindHashTable
}

// Descriptor helpers ---------------------------------------------------------

// MakeFundamental describes a built-in primitive.
func MakeFundamental(f Fundamental) Type {
	return Type{Kind: KindFundamental, Fundamental: f}
}

// MakeAlias describes a name standing for another type.
func MakeAlias(name, cIdentifier string, target TypeID) Type {
	return Type{Kind: KindAlias, Name: name, CIdentifier: cIdentifier, Target: target}
}

// MakeEnumeration describes an enumerated type with associated functions.
func MakeEnumeration(name string, members []Member, functions []Function) Type {
	return Type{Kind: KindEnumeration, Name: name, Members: members, Functions: functions}
}

// MakeBitfield describes a flags type with associated functions.
func MakeBitfield(name string, members []Member, functions []Function) Type {
	return Type{Kind: KindBitfield, Name: name, Members: members, Functions: functions}
}

// MakeRecord describes an opaque struct with associated functions.
func MakeRecord(name string, functions []Function) Type {
	return Type{Kind: KindRecord, Name: name, Functions: functions}
}

// MakeUnion describes a union of fields with associated functions.
func MakeUnion(name string, fields []Field, functions []Function) Type {
	return Type{Kind: KindUnion, Name: name, Fields: fields, Functions: functions}
}

// MakeCallback describes a function-pointer type.
func MakeCallback(signature Function) Type {
	return Type{Kind: KindCallback, Name: signature.Name, Signature: &signature}
}

// MakeInterface describes an abstract interface type.
func MakeInterface(name string, functions []Function) Type {
	return Type{Kind: KindInterface, Name: name, Functions: functions}
}

// MakeClass describes an instantiable object type.
func MakeClass(name string, functions []Function) Type {
	return Type{Kind: KindClass, Name: name, Functions: functions}
}

// MakeArray describes a fixed array of one element type.
func MakeArray(elem TypeID) Type {
	return Type{Kind: KindArray, Elem: elem}
}

// MakeHashTable describes a hash table keyed and valued by resolved types.
func MakeHashTable(key, value TypeID) Type {
	return Type{Kind: KindHashTable, Key: key, Value: value}
}

// MakeList describes a doubly-linked list of one element type.
func MakeList(elem TypeID) Type {
	return Type{Kind: KindList, Elem: elem}
}

// MakeSList describes a singly-linked list of one element type.
func MakeSList(elem TypeID) Type {
	return Type{Kind: KindSList, Elem: elem}
}
