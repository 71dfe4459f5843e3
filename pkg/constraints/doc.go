// Package constraints derives native HTML input constraints from a schema
// tree. Given a tree root and a dot-path already split into segments, Extract
// walks to the addressed node, peels modifier wrappers, and maps the terminal
// leaf's checks onto the attribute set a browser enforces client-side
// (required, min/max, minLength/maxLength, step, and the input type family).
// Extraction never fails: a path with no matching schema entry yields an
// unconstrained text field so it can still be rendered and submitted.
package constraints
