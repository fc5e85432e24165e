package facets

import (
	"strings"

	"github.com/invopop/jsonschema"
)

// Repository resolves schema references to their target nodes. Lookup returns
// nil when the reference is unknown.
type Repository interface {
	Lookup(ref string) *jsonschema.Schema
}

// maxResolveDepth bounds reference and composition chasing so that a
// malformed cyclic schema cannot recurse indefinitely.
const maxResolveDepth = 32

type definitionsRepository struct {
	defs jsonschema.Definitions
}

// DefinitionsRepository wraps a schema's $defs table as a Repository,
// resolving "#/$defs/Name" style references.
func DefinitionsRepository(defs jsonschema.Definitions) Repository {
	return definitionsRepository{defs: defs}
}

func (r definitionsRepository) Lookup(ref string) *jsonschema.Schema {
	name := ref
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		name = ref[i+1:]
	}
	return r.defs[name]
}

// ResolveType determines a node's effective primitive type, following
// reference indirection through repo and allOf composition in declaration
// order. The second return is false when the type cannot be determined;
// callers treat that as "not an array" for length semantics.
func ResolveType(node *jsonschema.Schema, repo Repository) (string, bool) {
	return resolveType(node, repo, 0)
}

func resolveType(node *jsonschema.Schema, repo Repository, depth int) (string, bool) {
	if node == nil || depth >= maxResolveDepth {
		return "", false
	}
	if node.Ref != "" {
		if repo == nil {
			return "", false
		}
		target := repo.Lookup(node.Ref)
		if target == nil {
			return "", false
		}
		return resolveType(target, repo, depth+1)
	}
	if len(node.AllOf) > 0 {
		for _, sub := range node.AllOf {
			if t, ok := resolveType(sub, repo, depth+1); ok {
				return t, true
			}
		}
		return "", false
	}
	if node.Type == "" {
		return "", false
	}
	return node.Type, true
}

// isArray reports whether the node's resolved type is the array type.
func isArray(node *jsonschema.Schema, repo Repository) bool {
	t, ok := resolveType(node, repo, 0)
	return ok && t == "array"
}
