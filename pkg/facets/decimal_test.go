package facets

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
)

func TestDecimalBound(t *testing.T) {
	cases := []struct {
		name      string
		value     any
		invariant bool
		want      string
		ok        bool
	}{
		{name: "int", value: 42, want: "42", ok: true},
		{name: "negative int64", value: int64(-7), want: "-7", ok: true},
		{name: "uint", value: uint(12), want: "12", ok: true},
		{name: "float64 exact", value: 0.1, want: "0.1", ok: true},
		{name: "float32", value: float32(2.5), want: "2.5", ok: true},
		{name: "json.Number passthrough", value: json.Number("10.25"), want: "10.25", ok: true},
		{name: "string invariant", value: "3.14", invariant: true, want: "3.14", ok: true},
		{name: "string lenient comma", value: "3,14", want: "3.14", ok: true},
		{name: "string invariant rejects comma", value: "3,14", invariant: true, ok: false},
		{name: "leading plus stripped", value: "+1", want: "1", ok: true},
		{name: "exponent form kept", value: "1e3", want: "1e3", ok: true},
		{name: "high precision preserved", value: "0.1000000000000000000000001", want: "0.1000000000000000000000001", ok: true},
		{name: "surrounding space trimmed", value: " 10 ", want: "10", ok: true},
		{name: "two commas rejected", value: "1,000,5", ok: false},
		{name: "not a number", value: "ten", ok: false},
		{name: "nan rejected", value: "NaN", ok: false},
		{name: "empty string", value: "", ok: false},
		{name: "bare dot", value: ".", ok: false},
		{name: "trailing dot", value: "1.", ok: false},
		{name: "unsupported type", value: struct{}{}, ok: false},
		{name: "nil", value: nil, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := decimalBound(tc.value, tc.invariant)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// stubs standing in for annotation/constraint kinds this package does not
// know about yet.
type futureAnnotation struct{}

func (futureAnnotation) isAnnotation() {}

type futureConstraint struct{}

func (futureConstraint) isConstraint() {}

func TestUnknownKindsAreIgnored(t *testing.T) {
	node := &jsonschema.Schema{Type: "string"}
	ApplyValidationAttributes(node, []Annotation{
		futureAnnotation{},
		MinLengthAnnotation{Value: 2},
	}, nil)
	if node.MinLength == nil || *node.MinLength != 2 {
		t.Error("known annotation after unknown one was not applied")
	}

	ApplyRouteConstraints(node, []Constraint{
		futureConstraint{},
		MaxLengthConstraint{Value: 9},
	}, nil)
	if node.MaxLength == nil || *node.MaxLength != 9 {
		t.Error("known constraint after unknown one was not applied")
	}
}
