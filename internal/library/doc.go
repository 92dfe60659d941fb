// Package library implements the metadata model at the core of the binding
// generator: a cross-referenced graph of API declarations organized into
// named namespaces.
//
// Types are addressed by stable TypeIDs issued on first mention, whether that
// mention is a definition or a forward reference. A namespace slot created by
// a reference stays empty until a later definition populates it in place; the
// TypeID issued for the reference never changes. After ingestion finishes,
// Validate sweeps the whole library and reports every slot that was
// referenced but never defined.
//
// The reserved internal namespace (ID 0, spelled "*") holds all fundamental
// primitives and every synthesized container type. During resolution the
// internal namespace always wins over same-named user declarations, which
// keeps resolution deterministic regardless of ingestion order.
//
// A Library is not safe for concurrent mutation. Ingestion is sequential;
// unrestricted concurrent reads are fine only once validation has passed and
// nothing can intern further slots, container synthesis included.
package library
