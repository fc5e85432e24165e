// Package routetmpl parses constraint-bearing route templates such as
// "/users/{id:int:min(1)}/files/{name:regex(^[a-z.]+$)?}" into parameter
// descriptions whose constraints feed facets.ApplyRouteConstraints.
package routetmpl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openapikit/facets/pkg/facets"
)

// Template is a parsed route template.
type Template struct {
	raw      string
	segments []segment
	params   []*Parameter
}

type segment struct {
	literal string
	param   *Parameter
}

// Parameter is one route parameter with its declared constraints, in
// declaration order.
type Parameter struct {
	Name        string
	Optional    bool
	Constraints []facets.Constraint
}

// Parse parses a route template. Constraint names the grammar does not know
// are skipped, mirroring the mapper's forward-compatibility policy, but
// malformed arguments (e.g. min(x) with a non-integer x) are an error.
func Parse(template string) (*Template, error) {
	t := &Template{raw: template}
	for _, part := range strings.Split(template, "/") {
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return nil, fmt.Errorf("routetmpl: segment %q mixes literal and parameter text", part)
			}
			t.segments = append(t.segments, segment{literal: part})
			continue
		}
		if !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("routetmpl: unterminated parameter in segment %q", part)
		}
		param, err := parseParameter(part[1 : len(part)-1])
		if err != nil {
			return nil, err
		}
		t.segments = append(t.segments, segment{param: param})
		t.params = append(t.params, param)
	}
	return t, nil
}

// Raw returns the template string Parse received.
func (t *Template) Raw() string { return t.raw }

// Parameters returns the template's parameters in declaration order.
func (t *Template) Parameters() []*Parameter { return t.params }

// GinPath renders the template in gin's ":name" form for router
// registration.
func (t *Template) GinPath() string {
	var b strings.Builder
	for _, s := range t.segments {
		b.WriteByte('/')
		if s.param != nil {
			b.WriteByte(':')
			b.WriteString(s.param.Name)
		} else {
			b.WriteString(s.literal)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// OpenAPIPath renders the template in OpenAPI's "{name}" form, with all
// constraint text stripped.
func (t *Template) OpenAPIPath() string {
	var b strings.Builder
	for _, s := range t.segments {
		b.WriteByte('/')
		if s.param != nil {
			b.WriteByte('{')
			b.WriteString(s.param.Name)
			b.WriteByte('}')
		} else {
			b.WriteString(s.literal)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func parseParameter(content string) (*Parameter, error) {
	optional := false
	if strings.HasSuffix(content, "?") {
		optional = true
		content = content[:len(content)-1]
	}

	tokens := splitConstraints(content)
	name := tokens[0]
	if name == "" || !validName(name) {
		return nil, fmt.Errorf("routetmpl: invalid parameter name %q", name)
	}

	param := &Parameter{Name: name, Optional: optional}
	for _, token := range tokens[1:] {
		constraint, err := parseConstraint(name, token)
		if err != nil {
			return nil, err
		}
		if constraint != nil {
			param.Constraints = append(param.Constraints, constraint)
		}
	}
	return param, nil
}

// splitConstraints splits on ':' outside parentheses, so regex arguments may
// contain colons.
func splitConstraints(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// parseConstraint maps one constraint token to a facets.Constraint. Unknown
// constraint names yield nil without error.
func parseConstraint(param, token string) (facets.Constraint, error) {
	name, arg := token, ""
	hasArg := false
	if i := strings.IndexByte(token, '('); i >= 0 {
		if !strings.HasSuffix(token, ")") {
			return nil, fmt.Errorf("routetmpl: parameter %q: unterminated argument in %q", param, token)
		}
		name = token[:i]
		arg = token[i+1 : len(token)-1]
		hasArg = true
	}

	switch strings.ToLower(name) {
	case "float":
		return facets.TypeConstraint{Type: facets.ParamFloat}, nil
	case "decimal":
		return facets.TypeConstraint{Type: facets.ParamDecimal}, nil
	case "long":
		return facets.TypeConstraint{Type: facets.ParamLong}, nil
	case "int":
		return facets.TypeConstraint{Type: facets.ParamInt}, nil
	case "guid":
		return facets.TypeConstraint{Type: facets.ParamGuid}, nil
	case "string":
		return facets.TypeConstraint{Type: facets.ParamString}, nil
	case "bool":
		return facets.TypeConstraint{Type: facets.ParamBool}, nil
	case "alpha":
		return facets.RegexConstraint{Pattern: "^[A-Za-z]*$"}, nil
	case "regex":
		if !hasArg {
			return nil, fmt.Errorf("routetmpl: parameter %q: regex wants a pattern argument", param)
		}
		return facets.RegexConstraint{Pattern: arg}, nil
	case "min":
		v, err := intArg(param, name, arg, hasArg)
		if err != nil {
			return nil, err
		}
		return facets.MinConstraint{Value: v}, nil
	case "max":
		v, err := intArg(param, name, arg, hasArg)
		if err != nil {
			return nil, err
		}
		return facets.MaxConstraint{Value: v}, nil
	case "minlength":
		v, err := intArg(param, name, arg, hasArg)
		if err != nil {
			return nil, err
		}
		return facets.MinLengthConstraint{Value: int(v)}, nil
	case "maxlength":
		v, err := intArg(param, name, arg, hasArg)
		if err != nil {
			return nil, err
		}
		return facets.MaxLengthConstraint{Value: int(v)}, nil
	case "length":
		if !hasArg {
			return nil, fmt.Errorf("routetmpl: parameter %q: length wants arguments", param)
		}
		args := strings.Split(arg, ",")
		switch len(args) {
		case 1:
			v, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("routetmpl: parameter %q: length argument %q is not an integer", param, args[0])
			}
			return facets.LengthConstraint{Min: int(v), Max: int(v)}, nil
		case 2:
			lo, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("routetmpl: parameter %q: length argument %q is not an integer", param, args[0])
			}
			hi, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("routetmpl: parameter %q: length argument %q is not an integer", param, args[1])
			}
			return facets.LengthConstraint{Min: int(lo), Max: int(hi)}, nil
		default:
			return nil, fmt.Errorf("routetmpl: parameter %q: length wants one or two arguments", param)
		}
	case "range":
		if !hasArg {
			return nil, fmt.Errorf("routetmpl: parameter %q: range wants two arguments", param)
		}
		args := strings.Split(arg, ",")
		if len(args) != 2 {
			return nil, fmt.Errorf("routetmpl: parameter %q: range wants two arguments", param)
		}
		lo, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("routetmpl: parameter %q: range argument %q is not an integer", param, args[0])
		}
		hi, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("routetmpl: parameter %q: range argument %q is not an integer", param, args[1])
		}
		return facets.RangeConstraint{Min: lo, Max: hi}, nil
	default:
		// Unknown constraint names are tolerated.
		return nil, nil
	}
}

func intArg(param, name, arg string, hasArg bool) (int64, error) {
	if !hasArg {
		return 0, fmt.Errorf("routetmpl: parameter %q: %s wants an integer argument", param, name)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("routetmpl: parameter %q: %s argument %q is not an integer", param, name, arg)
	}
	return v, nil
}
