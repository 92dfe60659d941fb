package library

import (
	"errors"
	"fmt"
)

// ErrUnsupportedRepresentation reports a type with no portable C form.
var ErrUnsupportedRepresentation = errors.New("no C representation")

// CType returns the C spelling of a fundamental kind. The second result is
// false for kinds that have none, such as the extended-precision float.
func (f Fundamental) CType() (string, bool) {
	switch f {
	case FundamentalNone:
		return "void", true
	case FundamentalBoolean:
		return "gboolean", true
	case FundamentalInt8:
		return "gint8", true
	case FundamentalUInt8:
		return "guint8", true
	case FundamentalInt16:
		return "gint16", true
	case FundamentalUInt16:
		return "guint16", true
	case FundamentalInt32:
		return "gint32", true
	case FundamentalUInt32:
		return "guint32", true
	case FundamentalInt64:
		return "gint64", true
	case FundamentalUInt64:
		return "guint64", true
	case FundamentalChar:
		return "gchar", true
	case FundamentalUChar:
		return "guchar", true
	case FundamentalInt:
		return "gint", true
	case FundamentalUInt:
		return "guint", true
	case FundamentalLong:
		return "glong", true
	case FundamentalULong:
		return "gulong", true
	case FundamentalSize:
		return "gsize", true
	case FundamentalSSize:
		return "gssize", true
	case FundamentalFloat:
		return "gfloat", true
	case FundamentalDouble:
		return "gdouble", true
	case FundamentalPointer:
		return "gpointer", true
	case FundamentalVarArgs:
		return "...", true
	case FundamentalUniChar:
		return "gunichar", true
	case FundamentalUtf8, FundamentalFilename:
		return "const char*", true
	case FundamentalType:
		return "GType", true
	}
	return "", false
}

// Representation derives the textual C form of a resolved type, recursing
// through alias chains and container elements. It fails fast for unresolved
// TypeIDs and for fundamentals marked unsupported; there is no fallback
// spelling a generator could safely emit.
func (lib *Library) Representation(tid TypeID) (string, error) {
	return lib.representation(tid, nil)
}

// representation carries the set of TypeIDs already on the recursion path so
// an alias cycle in ingested metadata fails with an error instead of
// exhausting the stack.
func (lib *Library) representation(tid TypeID, seen map[TypeID]bool) (string, error) {
	typ := lib.TypeByID(tid)
	if typ == nil {
		return "", fmt.Errorf("representation of unresolved type %s", tid)
	}
	if seen[tid] {
		return "", fmt.Errorf("%w: alias cycle through %s", ErrUnsupportedRepresentation, lib.QualifiedName(tid))
	}
	switch typ.Kind {
	case KindFundamental:
		s, ok := typ.Fundamental.CType()
		if !ok {
			return "", fmt.Errorf("%w: fundamental %s", ErrUnsupportedRepresentation, typ.Fundamental)
		}
		return s, nil
	case KindAlias:
		if seen == nil {
			seen = make(map[TypeID]bool, 4)
		}
		seen[tid] = true
		return lib.representation(typ.Target, seen)
	case KindEnumeration, KindBitfield:
		return typ.Name, nil
	case KindRecord, KindUnion, KindInterface, KindClass:
		return typ.Name + "*", nil
	case KindCallback:
		if typ.Signature != nil && typ.Signature.CIdentifier != "" {
			return typ.Signature.CIdentifier, nil
		}
		return typ.Name, nil
	case KindArray:
		if seen == nil {
			seen = make(map[TypeID]bool, 4)
		}
		seen[tid] = true
		elem, err := lib.representation(typ.Elem, seen)
		if err != nil {
			return "", err
		}
		return elem + "*", nil
	case KindHashTable:
		return "GHashTable*", nil
	case KindList:
		return "GList*", nil
	case KindSList:
		return "GSList*", nil
	}
	return "", fmt.Errorf("%w: kind %s", ErrUnsupportedRepresentation, typ.Kind)
}
