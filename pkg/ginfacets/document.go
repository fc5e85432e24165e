package ginfacets

import (
	"sort"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/openapikit/facets/pkg/facets"
)

// Document assembles the OpenAPI 3.0 document for all registered endpoints.
func (api *API) Document() map[string]any {
	api.mu.RLock()
	defer api.mu.RUnlock()

	keys := make([]string, 0, len(api.endpoints))
	for key := range api.endpoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	paths := make(map[string]any)
	schemas := make(map[string]*jsonschema.Schema)

	for _, key := range keys {
		endpoint := api.endpoints[key]
		openAPIPath := endpoint.tmpl.OpenAPIPath()

		pathItem, ok := paths[openAPIPath].(map[string]any)
		if !ok {
			pathItem = make(map[string]any)
			paths[openAPIPath] = pathItem
		}
		pathItem[strings.ToLower(endpoint.Method)] = buildOperation(endpoint, schemas)
	}

	info := map[string]any{
		"title":   api.info.Title,
		"version": api.info.Version,
	}
	if api.info.Description != "" {
		info["description"] = api.info.Description
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info":    info,
		"paths":   paths,
		"components": map[string]any{
			"schemas": schemas,
		},
	}
}

func buildOperation(endpoint *EndpointSpec, schemas map[string]*jsonschema.Schema) map[string]any {
	operation := make(map[string]any)
	if endpoint.Summary != "" {
		operation["summary"] = endpoint.Summary
	}
	if endpoint.Description != "" {
		operation["description"] = endpoint.Description
	}
	if len(endpoint.Tags) > 0 {
		operation["tags"] = endpoint.Tags
	}
	if endpoint.Deprecated {
		operation["deprecated"] = true
	}

	if parameters := buildParameters(endpoint); len(parameters) > 0 {
		operation["parameters"] = parameters
	}

	if endpoint.request != nil {
		operation["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": addModel(endpoint.request.model, endpoint.request.fields, schemas),
				},
			},
		}
	}

	operation["responses"] = buildResponses(endpoint, schemas)
	return operation
}

// buildParameters turns each template parameter into an OpenAPI parameter
// whose schema facets come from the declared route constraints.
func buildParameters(endpoint *EndpointSpec) []any {
	params := endpoint.tmpl.Parameters()
	parameters := make([]any, 0, len(params))
	for _, param := range params {
		node := &jsonschema.Schema{Type: "string"}
		facets.ApplyRouteConstraints(node, param.Constraints, nil)

		parameters = append(parameters, map[string]any{
			"name":     param.Name,
			"in":       "path",
			"required": !param.Optional,
			"schema":   node,
		})
	}
	return parameters
}

func buildResponses(endpoint *EndpointSpec, schemas map[string]*jsonschema.Schema) map[string]any {
	responses := make(map[string]any)
	for status, response := range endpoint.responses {
		entry := map[string]any{"description": response.description}
		if response.model != nil {
			entry["content"] = map[string]any{
				"application/json": map[string]any{
					"schema": addModel(response.model, response.fields, schemas),
				},
			}
		}
		responses[strconv.Itoa(status)] = entry
	}
	if len(responses) == 0 {
		responses["200"] = map[string]any{"description": "OK"}
	}
	return responses
}

// addModel reflects a model, applies its field annotations against the
// reflected definitions, stores the definitions under components/schemas and
// returns a reference to the root definition.
func addModel(model any, fields FieldAnnotations, schemas map[string]*jsonschema.Schema) map[string]any {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	root := reflector.Reflect(model)
	repo := facets.DefinitionsRepository(root.Definitions)

	rootName := strings.TrimPrefix(root.Ref, "#/$defs/")
	if def, ok := root.Definitions[rootName]; ok && def.Properties != nil {
		for field, annotations := range fields {
			if prop, found := def.Properties.Get(field); found {
				facets.ApplyValidationAttributes(prop, annotations, repo)
			}
		}
	}

	// The first endpoint to contribute a definition wins, so a model
	// annotated on one endpoint is not clobbered by a bare registration of
	// the same model elsewhere.
	for name, def := range root.Definitions {
		if _, exists := schemas[name]; exists {
			continue
		}
		rewriteRefs(def, 0)
		schemas[name] = def
	}

	return map[string]any{"$ref": "#/components/schemas/" + rootName}
}

// rewriteRefs moves "#/$defs/X" references to their components/schemas home.
func rewriteRefs(node *jsonschema.Schema, depth int) {
	if node == nil || depth > 64 {
		return
	}
	if strings.HasPrefix(node.Ref, "#/$defs/") {
		node.Ref = "#/components/schemas/" + strings.TrimPrefix(node.Ref, "#/$defs/")
	}
	if node.Properties != nil {
		for pair := node.Properties.Oldest(); pair != nil; pair = pair.Next() {
			rewriteRefs(pair.Value, depth+1)
		}
	}
	for _, sub := range node.AllOf {
		rewriteRefs(sub, depth+1)
	}
	for _, sub := range node.AnyOf {
		rewriteRefs(sub, depth+1)
	}
	for _, sub := range node.OneOf {
		rewriteRefs(sub, depth+1)
	}
	rewriteRefs(node.Not, depth+1)
	rewriteRefs(node.Items, depth+1)
	rewriteRefs(node.AdditionalProperties, depth+1)
	for _, sub := range node.PatternProperties {
		rewriteRefs(sub, depth+1)
	}
}
