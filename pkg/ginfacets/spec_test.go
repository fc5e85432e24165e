package ginfacets_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/openapikit/facets/pkg/facets"
	"github.com/openapikit/facets/pkg/ginfacets"
)

type User struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Age   int      `json:"age"`
	Tags  []string `json:"tags"`
}

func newTestAPI(t *testing.T) *ginfacets.API {
	t.Helper()
	api := ginfacets.New("Test API", "1.0.0")
	api.Describe("API used by the ginfacets tests")

	path := api.MustRoute("GET", "/users/{id:int:min(1)}",
		ginfacets.WithSummary("Get a user"),
		ginfacets.WithTags("users"),
		ginfacets.WithResponse(http.StatusOK, "the user", User{}, ginfacets.FieldAnnotations{
			"name": {
				facets.StringLengthAnnotation{Min: 1, Max: 50},
				facets.DescriptionAnnotation{Text: "Display name"},
			},
			"email": {facets.DataTypeAnnotation{Kind: facets.DataKindEmailAddress}},
			"age":   {facets.RangeAnnotation{Minimum: 0, Maximum: 130}},
			"tags":  {facets.MaxLengthAnnotation{Value: 8}},
		}),
	)
	if path != "/users/:id" {
		t.Fatalf("gin path = %q, want /users/:id", path)
	}

	api.MustRoute("POST", "/users",
		ginfacets.WithSummary("Create a user"),
		ginfacets.WithRequest(User{}, ginfacets.FieldAnnotations{
			"email": {facets.DataTypeAnnotation{Kind: facets.DataKindEmailAddress}},
		}),
		ginfacets.WithResponse(http.StatusCreated, "created", User{}, nil),
	)

	api.MustRoute("GET", "/files/{name:string?}")

	return api
}

func getDocument(t *testing.T, api *ginfacets.API) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/openapi.json", api.OpenAPIHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	return doc
}

func dig(t *testing.T, doc map[string]any, path ...string) map[string]any {
	t.Helper()
	current := doc
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			t.Fatalf("missing object at %q (path %v)", key, path)
		}
		current = next
	}
	return current
}

func TestDocument(t *testing.T) {
	api := newTestAPI(t)
	doc := getDocument(t, api)

	if doc["openapi"] != "3.0.3" {
		t.Errorf("openapi = %v, want 3.0.3", doc["openapi"])
	}
	info := dig(t, doc, "info")
	if info["title"] != "Test API" || info["version"] != "1.0.0" {
		t.Errorf("info = %v", info)
	}

	t.Run("path parameter schema carries route constraints", func(t *testing.T) {
		operation := dig(t, doc, "paths", "/users/{id}", "get")
		params, ok := operation["parameters"].([]any)
		if !ok || len(params) != 1 {
			t.Fatalf("parameters = %v, want one", operation["parameters"])
		}
		param := params[0].(map[string]any)
		if param["name"] != "id" || param["in"] != "path" || param["required"] != true {
			t.Errorf("parameter = %v", param)
		}
		schema := param["schema"].(map[string]any)
		if schema["type"] != "integer" {
			t.Errorf("type = %v, want integer", schema["type"])
		}
		if schema["minimum"] != float64(1) {
			t.Errorf("minimum = %v, want 1", schema["minimum"])
		}
	})

	t.Run("optional parameter is not required", func(t *testing.T) {
		operation := dig(t, doc, "paths", "/files/{name}", "get")
		params := operation["parameters"].([]any)
		param := params[0].(map[string]any)
		if param["required"] != false {
			t.Errorf("required = %v, want false", param["required"])
		}
	})

	t.Run("model schema carries field annotations", func(t *testing.T) {
		props := dig(t, doc, "components", "schemas", "User", "properties")

		name := props["name"].(map[string]any)
		if name["minLength"] != float64(1) || name["maxLength"] != float64(50) {
			t.Errorf("name bounds = %v/%v", name["minLength"], name["maxLength"])
		}
		if name["description"] != "Display name" {
			t.Errorf("name description = %v", name["description"])
		}

		email := props["email"].(map[string]any)
		if email["format"] != "email" {
			t.Errorf("email format = %v, want email", email["format"])
		}

		age := props["age"].(map[string]any)
		if age["minimum"] != float64(0) || age["maximum"] != float64(130) {
			t.Errorf("age bounds = %v/%v", age["minimum"], age["maximum"])
		}

		tags := props["tags"].(map[string]any)
		if tags["maxItems"] != float64(8) {
			t.Errorf("tags maxItems = %v, want 8 (array disambiguation)", tags["maxItems"])
		}
		if _, ok := tags["maxLength"]; ok {
			t.Error("tags maxLength set, want item bound only")
		}
	})

	t.Run("request body references components", func(t *testing.T) {
		operation := dig(t, doc, "paths", "/users", "post")
		schema := dig(t, operation, "requestBody", "content", "application/json", "schema")
		if schema["$ref"] != "#/components/schemas/User" {
			t.Errorf("$ref = %v", schema["$ref"])
		}
	})

	t.Run("default response when none declared", func(t *testing.T) {
		operation := dig(t, doc, "paths", "/files/{name}", "get")
		if _, ok := dig(t, operation, "responses")["200"]; !ok {
			t.Error("no default 200 response")
		}
	})
}

func TestYAMLHandler(t *testing.T) {
	api := newTestAPI(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/openapi.yaml", api.OpenAPIYAMLHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "openapi: 3.0.3") {
		t.Error("yaml body missing openapi version")
	}
}

func TestSwaggerUIHandler(t *testing.T) {
	api := newTestAPI(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/docs", api.SwaggerUI("/openapi.json"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "swagger-ui") || !strings.Contains(body, "/openapi.json") {
		t.Error("docs page missing swagger ui markup")
	}
}

func TestRouteErrors(t *testing.T) {
	api := ginfacets.New("Test API", "1.0.0")
	if _, err := api.Route("GET", "/x/{v:min(abc)}"); err == nil {
		t.Error("Route accepted a malformed template")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRoute did not panic on a malformed template")
		}
	}()
	api.MustRoute("GET", "/x/{v:min(abc)}")
}
