package diag

import "sort"

// Bag accumulates diagnostics. Unlike a per-type soft error, a Bag always
// carries the complete finding list: validation reports every unresolved
// name, never a single representative failure.
type Bag struct {
	items []Diagnostic
}

// NewBag creates a bag with a capacity hint.
func NewBag(capHint int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
	}
}

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Error is a shortcut for adding a SevError diagnostic.
func (b *Bag) Error(code Code, subject, msg string) {
	b.Add(Diagnostic{Severity: SevError, Code: code, Subject: subject, Message: msg})
}

// Warning is a shortcut for adding a SevWarning diagnostic.
func (b *Bag) Warning(code Code, subject, msg string) {
	b.Add(Diagnostic{Severity: SevWarning, Code: code, Subject: subject, Message: msg})
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the diagnostics. Do not modify the
// returned slice; it aliases the bag's storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends diagnostics from another bag.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by subject, code, then severity (descending) for
// stable, deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Subject != dj.Subject {
			return di.Subject < dj.Subject
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Severity > dj.Severity
	})
}
