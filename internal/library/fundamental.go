package library

import "fmt"

// Fundamental enumerates the built-in primitive kinds. The set is closed;
// anything the model cannot represent maps to FundamentalUnsupported.
type Fundamental uint8

const (
	FundamentalNone Fundamental = iota
	FundamentalBoolean
	FundamentalInt8
	FundamentalUInt8
	FundamentalInt16
	FundamentalUInt16
	FundamentalInt32
	FundamentalUInt32
	FundamentalInt64
	FundamentalUInt64
	FundamentalChar
	FundamentalUChar
	FundamentalInt
	FundamentalUInt
	FundamentalLong
	FundamentalULong
	FundamentalSize
	FundamentalSSize
	FundamentalFloat
	FundamentalDouble
	FundamentalPointer
	FundamentalVarArgs
	FundamentalUniChar
	FundamentalUtf8
	FundamentalFilename
	FundamentalType
	FundamentalUnsupported
)

func (f Fundamental) String() string {
	switch f {
	case FundamentalNone:
		return "none"
	case FundamentalBoolean:
		return "boolean"
	case FundamentalInt8:
		return "int8"
	case FundamentalUInt8:
		return "uint8"
	case FundamentalInt16:
		return "int16"
	case FundamentalUInt16:
		return "uint16"
	case FundamentalInt32:
		return "int32"
	case FundamentalUInt32:
		return "uint32"
	case FundamentalInt64:
		return "int64"
	case FundamentalUInt64:
		return "uint64"
	case FundamentalChar:
		return "char"
	case FundamentalUChar:
		return "uchar"
	case FundamentalInt:
		return "int"
	case FundamentalUInt:
		return "uint"
	case FundamentalLong:
		return "long"
	case FundamentalULong:
		return "ulong"
	case FundamentalSize:
		return "size"
	case FundamentalSSize:
		return "ssize"
	case FundamentalFloat:
		return "float"
	case FundamentalDouble:
		return "double"
	case FundamentalPointer:
		return "pointer"
	case FundamentalVarArgs:
		return "varargs"
	case FundamentalUniChar:
		return "unichar"
	case FundamentalUtf8:
		return "utf8"
	case FundamentalFilename:
		return "filename"
	case FundamentalType:
		return "gtype"
	case FundamentalUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Fundamental(%d)", f)
	}
}

type fundamentalSpelling struct {
	name string
	kind Fundamental
}

// fundamentalCatalog seeds the internal namespace at construction. Order is
// load-bearing: the LocalID of each fundamental is its position here, so the
// table is append-only across schema versions.
var fundamentalCatalog = [...]fundamentalSpelling{
	{"none", FundamentalNone},
	{"gboolean", FundamentalBoolean},
	{"gint8", FundamentalInt8},
	{"guint8", FundamentalUInt8},
	{"gint16", FundamentalInt16},
	{"guint16", FundamentalUInt16},
	{"gint32", FundamentalInt32},
	{"guint32", FundamentalUInt32},
	{"gint64", FundamentalInt64},
	{"guint64", FundamentalUInt64},
	{"gchar", FundamentalChar},
	{"guchar", FundamentalUChar},
	{"gint", FundamentalInt},
	{"guint", FundamentalUInt},
	{"glong", FundamentalLong},
	{"gulong", FundamentalULong},
	{"gsize", FundamentalSize},
	{"gssize", FundamentalSSize},
	{"gfloat", FundamentalFloat},
	{"gdouble", FundamentalDouble},
	{"long double", FundamentalUnsupported},
	{"gunichar", FundamentalUniChar},
	{"gpointer", FundamentalPointer},
	{"va_list", FundamentalUnsupported},
	{"varargs", FundamentalVarArgs},
	{"utf8", FundamentalUtf8},
	{"filename", FundamentalFilename},
	{"GType", FundamentalType},
}
