// Package ginfacets documents gin routes. Endpoints are registered with
// constraint-bearing route templates and caller-classified field annotations;
// the package assembles an OpenAPI 3.0 document whose schema facets come from
// the facets mappers. It performs no request validation.
package ginfacets

import (
	"fmt"
	"sync"

	"github.com/openapikit/facets/pkg/facets"
	"github.com/openapikit/facets/pkg/facets/routetmpl"
)

// API collects endpoint specifications and turns them into an OpenAPI
// document.
type API struct {
	mu        sync.RWMutex
	endpoints map[string]*EndpointSpec // key: "METHOD /template"
	info      Info
}

// Info is the document's info block.
type Info struct {
	Title       string
	Version     string
	Description string
}

// New creates an empty API registry.
func New(title, version string) *API {
	return &API{
		endpoints: make(map[string]*EndpointSpec),
		info:      Info{Title: title, Version: version},
	}
}

// Describe sets the document-level description.
func (api *API) Describe(text string) {
	api.mu.Lock()
	api.info.Description = text
	api.mu.Unlock()
}

// FieldAnnotations maps a model's JSON property names to the validation
// annotations discovered on them. Classification happens at the caller; the
// mappers only consume the result.
type FieldAnnotations map[string][]facets.Annotation

// EndpointSpec describes one documented endpoint.
type EndpointSpec struct {
	Method      string
	Template    string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool

	tmpl      *routetmpl.Template
	request   *modelSpec
	responses map[int]responseSpec
}

type modelSpec struct {
	model  any
	fields FieldAnnotations
}

type responseSpec struct {
	description string
	model       any
	fields      FieldAnnotations
}

// Option customizes an endpoint specification.
type Option func(*EndpointSpec)

// WithSummary sets the operation summary.
func WithSummary(summary string) Option {
	return func(spec *EndpointSpec) { spec.Summary = summary }
}

// WithDescription sets the operation description.
func WithDescription(description string) Option {
	return func(spec *EndpointSpec) { spec.Description = description }
}

// WithTags sets the operation tags.
func WithTags(tags ...string) Option {
	return func(spec *EndpointSpec) { spec.Tags = tags }
}

// WithDeprecated marks the operation deprecated.
func WithDeprecated() Option {
	return func(spec *EndpointSpec) { spec.Deprecated = true }
}

// WithRequest declares the JSON request body model and the annotations on its
// fields.
func WithRequest(model any, fields FieldAnnotations) Option {
	return func(spec *EndpointSpec) {
		spec.request = &modelSpec{model: model, fields: fields}
	}
}

// WithResponse declares a response model for a status code. model may be nil
// for bodyless responses.
func WithResponse(status int, description string, model any, fields FieldAnnotations) Option {
	return func(spec *EndpointSpec) {
		spec.responses[status] = responseSpec{description: description, model: model, fields: fields}
	}
}

// Route registers an endpoint under a route template such as
// "/users/{id:int:min(1)}" and returns the gin path (":id" form) to register
// the handler under.
func (api *API) Route(method, template string, opts ...Option) (string, error) {
	tmpl, err := routetmpl.Parse(template)
	if err != nil {
		return "", fmt.Errorf("ginfacets: %s %s: %w", method, template, err)
	}

	spec := &EndpointSpec{
		Method:    method,
		Template:  template,
		tmpl:      tmpl,
		responses: make(map[int]responseSpec),
	}
	for _, opt := range opts {
		opt(spec)
	}

	api.mu.Lock()
	api.endpoints[method+" "+template] = spec
	api.mu.Unlock()

	return tmpl.GinPath(), nil
}

// MustRoute is Route for static registration tables; it panics on a
// malformed template.
func (api *API) MustRoute(method, template string, opts ...Option) string {
	path, err := api.Route(method, template, opts...)
	if err != nil {
		panic(err)
	}
	return path
}
