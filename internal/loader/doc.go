// Package loader is the ingestion front-end: it reads TOML API descriptions
// and drives the library model with declare and reference operations. Files
// may arrive in any order; a reference to a type whose definition lives in a
// file loaded later interns a forward-reference slot that the later
// definition populates in place. Decoding is parallel, application to the
// library is strictly sequential in path order.
package loader
