package facets

// Constraint is one declarative restriction discovered on a URL path
// parameter. Like annotations, the kind set is closed and unrecognized kinds
// are ignored by the mapper.
type Constraint interface {
	isConstraint()
}

// MinConstraint declares an inclusive numeric minimum.
type MinConstraint struct {
	Value int64
}

// MaxConstraint declares an inclusive numeric maximum.
type MaxConstraint struct {
	Value int64
}

// MinLengthConstraint declares a minimum length.
type MinLengthConstraint struct {
	Value int
}

// MaxLengthConstraint declares a maximum length.
type MaxLengthConstraint struct {
	Value int
}

// LengthConstraint declares combined length bounds.
type LengthConstraint struct {
	Min int
	Max int
}

// RangeConstraint declares combined inclusive numeric bounds.
type RangeConstraint struct {
	Min int64
	Max int64
}

// RegexConstraint declares a pattern, copied verbatim.
type RegexConstraint struct {
	Pattern string
}

// ParamType identifies a pure type-marker constraint.
type ParamType int

// Type-marker constraints supported in route templates.
const (
	ParamFloat ParamType = iota
	ParamDecimal
	ParamLong
	ParamInt
	ParamGuid
	ParamString
	ParamBool
)

// TypeConstraint overwrites the node's type. When several type markers are
// present the last one in iteration order wins.
type TypeConstraint struct {
	Type ParamType
}

func (MinConstraint) isConstraint()       {}
func (MaxConstraint) isConstraint()       {}
func (MinLengthConstraint) isConstraint() {}
func (MaxLengthConstraint) isConstraint() {}
func (LengthConstraint) isConstraint()    {}
func (RangeConstraint) isConstraint()     {}
func (RegexConstraint) isConstraint()     {}
func (TypeConstraint) isConstraint()      {}
