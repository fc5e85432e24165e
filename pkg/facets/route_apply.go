package facets

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
)

// ApplyRouteConstraints applies a sequence of route parameter constraints to
// a schema node, in order. Constraints carry already-typed values, so no
// parsing happens here; bounds are still serialized as invariant decimal
// strings. Unrecognized constraint kinds are ignored.
func ApplyRouteConstraints(node *jsonschema.Schema, constraints []Constraint, repo Repository) {
	if node == nil {
		return
	}
	for _, constraint := range constraints {
		switch c := constraint.(type) {
		case MinConstraint:
			node.Minimum = json.Number(strconv.FormatInt(c.Value, 10))
		case MaxConstraint:
			node.Maximum = json.Number(strconv.FormatInt(c.Value, 10))
		case MinLengthConstraint:
			setMinSize(node, repo, c.Value)
		case MaxLengthConstraint:
			setMaxSize(node, repo, c.Value)
		case LengthConstraint:
			setMinSize(node, repo, c.Min)
			setMaxSize(node, repo, c.Max)
		case RangeConstraint:
			node.Minimum = json.Number(strconv.FormatInt(c.Min, 10))
			node.Maximum = json.Number(strconv.FormatInt(c.Max, 10))
		case RegexConstraint:
			node.Pattern = c.Pattern
		case TypeConstraint:
			applyTypeMarker(node, c.Type)
		default:
			// Unrecognized constraint kinds must not break the mapping.
		}
	}
}

// applyTypeMarker overwrites the node's type; when constraints stack the
// last marker in iteration order wins.
func applyTypeMarker(node *jsonschema.Schema, t ParamType) {
	switch t {
	case ParamFloat, ParamDecimal:
		node.Type = "number"
	case ParamLong, ParamInt:
		node.Type = "integer"
	case ParamGuid, ParamString:
		node.Type = "string"
	case ParamBool:
		node.Type = "boolean"
	}
}
