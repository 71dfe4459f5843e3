// Package schema defines the validator tree consumed by the decoder,
// the reference validation engine, and the constraint extractor. A tree is
// built from a closed set of node variants: Object nodes with named fields,
// modifier nodes (Optional, Nullable, Default, Pipe) that wrap exactly one
// inner node, and Leaf nodes carrying a terminal kind plus its check records.
// Trees are built once, treated as immutable afterwards, and only read by the
// packages that consume them, so a single tree can serve validation and
// constraint extraction concurrently.
package schema
