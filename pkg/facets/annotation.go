// Package facets translates declarative validation annotations and route
// parameter constraints into JSON Schema facets (format, pattern, bounds,
// length limits) by mutating schema nodes in place. The node is borrowed from
// the caller for the duration of a call and never retained.
package facets

// Annotation is one declarative validation marker discovered on a model
// member. The set of kinds is closed; mappers ignore anything they do not
// recognize so that new kinds can be added without breaking existing output.
type Annotation interface {
	isAnnotation()
}

// DataTypeAnnotation declares the logical kind of a member's data
// (e.g. email address, date, phone number). It maps to a format hint.
type DataTypeAnnotation struct {
	Kind DataKind
}

// MinLengthAnnotation declares a minimum length. Applied as minItems on
// array-typed nodes and minLength otherwise.
type MinLengthAnnotation struct {
	Value int
}

// MaxLengthAnnotation declares a maximum length. Applied as maxItems on
// array-typed nodes and maxLength otherwise.
type MaxLengthAnnotation struct {
	Value int
}

// LengthAnnotation declares a combined minimum and maximum length.
type LengthAnnotation struct {
	Min int
	Max int
}

// Base64Annotation marks a member as base64-encoded binary content.
type Base64Annotation struct{}

// RangeAnnotation declares numeric bounds. Minimum and Maximum may be native
// Go numerics or strings that still need parsing. When ParseInvariant is set,
// string bounds must use the invariant form ("."); otherwise a lone comma is
// accepted as the decimal separator.
type RangeAnnotation struct {
	Minimum          any
	Maximum          any
	MinimumExclusive bool
	MaximumExclusive bool
	ParseInvariant   bool
}

// RegularExpressionAnnotation declares a pattern. The pattern string is
// copied onto the node verbatim, with no syntax checking.
type RegularExpressionAnnotation struct {
	Pattern string
}

// StringLengthAnnotation declares string length bounds. Unlike
// LengthAnnotation it always sets minLength/maxLength, never item counts.
type StringLengthAnnotation struct {
	Min int
	Max int
}

// ReadOnlyAnnotation declares whether a member is read-only.
type ReadOnlyAnnotation struct {
	Value bool
}

// DescriptionAnnotation carries documentation text. It only fills an absent
// description and never overwrites one.
type DescriptionAnnotation struct {
	Text string
}

func (DataTypeAnnotation) isAnnotation()          {}
func (MinLengthAnnotation) isAnnotation()         {}
func (MaxLengthAnnotation) isAnnotation()         {}
func (LengthAnnotation) isAnnotation()            {}
func (Base64Annotation) isAnnotation()            {}
func (RangeAnnotation) isAnnotation()             {}
func (RegularExpressionAnnotation) isAnnotation() {}
func (StringLengthAnnotation) isAnnotation()      {}
func (ReadOnlyAnnotation) isAnnotation()          {}
func (DescriptionAnnotation) isAnnotation()       {}
