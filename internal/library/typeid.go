package library

import "fmt"

// NamespaceID indexes a namespace inside a Library.
type NamespaceID uint16

// InternalNamespace is the reserved namespace holding fundamental primitives
// and synthesized container types.
const InternalNamespace NamespaceID = 0

// InternalNamespaceName is the spelling of the reserved namespace.
const InternalNamespaceName = "*"

// LocalID indexes a type slot inside a single namespace. Slots are appended
// on first mention and never reused or renumbered.
type LocalID uint32

// TypeID is a stable handle to one type slot in a Library. It carries no
// behavior beyond equality; all access goes through the Library. A TypeID
// issued for a forward reference stays valid and starts returning the
// defined type once the definition arrives.
type TypeID struct {
	Ns    NamespaceID
	Local LocalID
}

// String renders the identity pair, e.g. "#0:5". Container canonical keys
// embed this form, so it must stay deterministic.
func (tid TypeID) String() string {
	return fmt.Sprintf("#%d:%d", tid.Ns, tid.Local)
}
