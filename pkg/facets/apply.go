package facets

import (
	"github.com/invopop/jsonschema"
)

// ApplyValidationAttributes applies a sequence of validation annotations to a
// schema node, in order. repo is used to resolve the node's effective type
// when length semantics depend on it and may be nil. Annotations the mapper
// does not recognize are ignored; malformed range limits skip the range rule
// without touching the node.
func ApplyValidationAttributes(node *jsonschema.Schema, annotations []Annotation, repo Repository) {
	if node == nil {
		return
	}
	for _, annotation := range annotations {
		switch a := annotation.(type) {
		case DataTypeAnnotation:
			if format, ok := FormatForDataKind(a.Kind); ok {
				node.Format = format
			}
		case MinLengthAnnotation:
			setMinSize(node, repo, a.Value)
		case MaxLengthAnnotation:
			setMaxSize(node, repo, a.Value)
		case LengthAnnotation:
			setMinSize(node, repo, a.Min)
			setMaxSize(node, repo, a.Max)
		case Base64Annotation:
			node.Format = "byte"
		case RangeAnnotation:
			applyRange(node, a)
		case RegularExpressionAnnotation:
			node.Pattern = a.Pattern
		case StringLengthAnnotation:
			setLength(&node.MinLength, a.Min)
			setLength(&node.MaxLength, a.Max)
		case ReadOnlyAnnotation:
			node.ReadOnly = a.Value
		case DescriptionAnnotation:
			if node.Description == "" {
				node.Description = a.Text
			}
		default:
			// Unrecognized annotation kinds must not break the mapping.
		}
	}
}

// applyRange converts both limits before assigning either, so a malformed
// limit leaves the node entirely untouched.
func applyRange(node *jsonschema.Schema, a RangeAnnotation) {
	minimum, ok := decimalBound(a.Minimum, a.ParseInvariant)
	if !ok {
		return
	}
	maximum, ok := decimalBound(a.Maximum, a.ParseInvariant)
	if !ok {
		return
	}
	node.Minimum = minimum
	node.Maximum = maximum
	if a.MinimumExclusive {
		node.ExclusiveMinimum = minimum
	}
	if a.MaximumExclusive {
		node.ExclusiveMaximum = maximum
	}
}

// setMinSize applies a minimum size bound: item count for array-typed nodes,
// character length for everything else (including nodes of unknown type).
func setMinSize(node *jsonschema.Schema, repo Repository, value int) {
	if isArray(node, repo) {
		setLength(&node.MinItems, value)
	} else {
		setLength(&node.MinLength, value)
	}
}

func setMaxSize(node *jsonschema.Schema, repo Repository, value int) {
	if isArray(node, repo) {
		setLength(&node.MaxItems, value)
	} else {
		setLength(&node.MaxLength, value)
	}
}

// setLength assigns a non-negative length bound; negative values are
// tolerated by leaving the field alone.
func setLength(field **uint64, value int) {
	if value < 0 {
		return
	}
	v := uint64(value)
	*field = &v
}
