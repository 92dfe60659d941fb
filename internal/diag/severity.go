package diag

// Severity ranks how serious a diagnostic is. The ordering matters: Bag
// sorting and threshold checks compare severities numerically, with errors
// highest.
type Severity uint8

const (
	// SevInfo reports something worth surfacing that needs no action.
	SevInfo Severity = iota
	// SevWarning reports suspicious metadata the sweep can proceed past.
	SevWarning
	// SevError reports a defect that makes the library unusable as-is.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
