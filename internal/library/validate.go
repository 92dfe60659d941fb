package library

import "girgen/internal/diag"

// Validate sweeps the whole library for slots that were referenced but never
// defined. Run exactly once, after ingestion finishes and before any
// generation read. Every empty slot yields an error carrying its qualified
// name, so a single run surfaces every dangling reference; a user namespace
// with zero defined types additionally yields a warning. An empty bag means
// generation may proceed.
func (lib *Library) Validate() *diag.Bag {
	bag := diag.NewBag(16)
	for i, ns := range lib.namespaces {
		for _, name := range ns.Unresolved() {
			bag.Error(diag.ResUnresolvedType, ns.Name+"."+name, "referenced but never defined")
		}
		if NamespaceID(i) != InternalNamespace && ns.SlotCount() > 0 && ns.DefinedCount() == 0 {
			bag.Warning(diag.ResEmptyNamespace, ns.Name, "namespace was referenced but never defined")
		}
	}
	bag.Sort()
	return bag
}
