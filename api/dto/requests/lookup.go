// ABOUTME: Request parameter types shared by lookup-style API endpoints
// ABOUTME: Provides the extended-form flag with its validation and docs

package requests

// ExtendedFlag is embedded by inputs of endpoints that can serialize the
// extended response form.
type ExtendedFlag struct {
	// Extended appends the supplemental fields (ids, foreign markers,
	// category predicates, page metadata) to the response.
	Extended bool `query:"extended" default:"false" doc:"Include supplemental fields in the response"`
}
