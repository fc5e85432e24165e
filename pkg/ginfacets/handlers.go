package ginfacets

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// OpenAPIHandler serves the assembled document as JSON.
func (api *API) OpenAPIHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := gojson.Marshal(api.Document())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode document"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

// OpenAPIYAMLHandler serves the assembled document as YAML. The document is
// round-tripped through JSON first so schema nodes render through their own
// marshalers.
func (api *API) OpenAPIYAMLHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := gojson.Marshal(api.Document())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode document"})
			return
		}
		var plain map[string]any
		if err := gojson.Unmarshal(data, &plain); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode document"})
			return
		}
		out, err := yaml.Marshal(plain)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode document"})
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	}
}

// SwaggerUI serves a Swagger UI page pointed at openAPIURL.
//
//	router.GET("/docs", api.SwaggerUI("/openapi.json"))
func (api *API) SwaggerUI(openAPIURL string) gin.HandlerFunc {
	html := `<!DOCTYPE html>
<html>
<head>
    <link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
    <title>` + api.info.Title + `</title>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({
    url: '` + openAPIURL + `',
    dom_id: '#swagger-ui',
    layout: 'BaseLayout',
    deepLinking: true,
    presets: [
        SwaggerUIBundle.presets.apis,
        SwaggerUIBundle.SwaggerUIStandalonePreset
    ],
})
</script>
</body>
</html>`

	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, html)
	}
}
