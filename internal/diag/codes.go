package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Resolution
	ResInfo           Code = 1000
	ResUnresolvedType Code = 1001
	ResEmptyNamespace Code = 1002
	ResMalformedName  Code = 1003

	// Description loading
	LoadInfo          Code = 2000
	LoadMissingField  Code = 2001
	LoadBadTransfer   Code = 2002
	LoadBadContainer  Code = 2003
	LoadWarnRedefined Code = 2004
	LoadUnknownKey    Code = 2005

	// Representation derivation
	ReprInfo        Code = 3000
	ReprUnsupported Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	ResInfo:           "Resolution info",
	ResUnresolvedType: "Type referenced but never defined",
	ResEmptyNamespace: "Namespace referenced but never defined",
	ResMalformedName:  "Malformed qualified type name",

	LoadInfo:          "Description info",
	LoadMissingField:  "Required field missing in description",
	LoadBadTransfer:   "Unknown ownership-transfer mode",
	LoadBadContainer:  "Unsupported container kind or arity",
	LoadWarnRedefined: "Type defined more than once",
	LoadUnknownKey:    "Unknown key in description",

	ReprInfo:        "Representation info",
	ReprUnsupported: "Type has no C representation",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LOAD%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("REPR%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
