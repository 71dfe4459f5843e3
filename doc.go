// Package formdata transcodes browser form submissions. It decodes a flat,
// multi-valued key/value submission into a nested object, flattens nested
// values back into dot-path form for redisplay across retries, and ties both
// directions together with a validation step in Process. The schema tree the
// pipeline validates against lives in pkg/schema; client-side constraint
// hints derived from the same tree live in pkg/constraints.
//
// Every operation in this package is a pure, synchronous function over its
// inputs: no shared state, no I/O, safe for concurrent use without
// coordination.
package formdata
