package formdata

// EmptyValuePolicy selects what a zero-length text value decodes to. The zero
// value (or any unrecognized value) is permissive: the empty string is stored
// unchanged. Attachments are exempt regardless of policy.
type EmptyValuePolicy string

const (
	// EmptyAsIs stores the empty string unchanged.
	EmptyAsIs EmptyValuePolicy = ""
	// EmptyOmitted drops the entry entirely, as if the field had not been
	// submitted.
	EmptyOmitted EmptyValuePolicy = "omitted"
	// EmptyNull stores an explicit nil.
	EmptyNull EmptyValuePolicy = "null"
	// EmptyString stores the empty string. Equivalent to EmptyAsIs; named so
	// callers can state the choice explicitly.
	EmptyString EmptyValuePolicy = "string"
)

// Options configures Decode and Process. Construct once and pass by value;
// there is no package-level default state.
type Options struct {
	EmptyValues EmptyValuePolicy
}
