// Package diag carries structured diagnostics from ingestion and validation
// to the caller. The model never aborts on its own: phases collect every
// finding into a Bag and the caller decides whether to abort, log, or
// continue. Subjects are qualified names ("namespace.name") rather than
// source positions, since the model has no source text.
package diag
