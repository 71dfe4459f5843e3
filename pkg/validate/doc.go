// Package validate supplies the issue model shared by every validation engine
// that can sit behind the submission pipeline, plus a reference engine that
// checks a decoded object against a schema tree. Failures are data, never
// panics: Validate returns an ordered list of path-qualified issues and
// Aggregate folds that list into the per-field error map callers key their
// form fields by. Engines with richer semantics can replace the reference
// implementation as long as they speak Issues.
package validate
