package nextjs

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// OpenAPIConfig configures OpenAPI document generation.
type OpenAPIConfig struct {
	// Title is the API title (required).
	Title string

	// Version is the API version (default: "1.0.0").
	Version string

	// Description is the API description.
	Description string

	// ServerURL is an optional server URL.
	ServerURL string

	// OpenAPIVersion is the spec version ("3.1.0" or "3.0.3",
	// default: "3.1.0").
	OpenAPIVersion string
}

var bracketParamRe = regexp.MustCompile(`\[{1,2}(?:\.\.\.)?([^\]]+?)\]{1,2}`)

// GenerateOpenAPI builds an OpenAPI document from discovered API
// routes. Route paths keep declaration order; handler methods are not
// statically known, so each path documents a generic GET operation.
func GenerateOpenAPI(routes []PageRouteInfo, config OpenAPIConfig) (*openapi3.T, error) {
	if config.Title == "" {
		config.Title = "Discovered API"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = "3.1.0"
	}

	doc := &openapi3.T{
		OpenAPI: config.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       config.Title,
			Version:     config.Version,
			Description: config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	if config.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: config.ServerURL}}
	}

	for _, route := range routes {
		if !route.IsAPIRoute {
			continue
		}

		path, params := openAPIPath(route.RoutePath)
		op := &openapi3.Operation{
			OperationID: operationID(path),
			Summary:     fmt.Sprintf("Handler for %s", route.RoutePath),
			Responses:   openapi3.NewResponses(),
		}
		desc := "Successful response"
		op.Responses.Set("200", &openapi3.ResponseRef{
			Value: &openapi3.Response{Description: &desc},
		})

		for _, param := range params {
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
				Value: &openapi3.Parameter{
					Name:     param,
					In:       "path",
					Required: true,
					Schema:   openapi3.NewStringSchema().NewRef(),
				},
			})
		}

		doc.Paths.Set(path, &openapi3.PathItem{Get: op})
	}

	return doc, nil
}

// openAPIPath converts bracket-notation segments into OpenAPI
// placeholders and returns the parameter names in path order.
func openAPIPath(routePath string) (string, []string) {
	var params []string
	converted := bracketParamRe.ReplaceAllStringFunc(routePath, func(segment string) string {
		m := bracketParamRe.FindStringSubmatch(segment)
		params = append(params, m[1])
		return "{" + m[1] + "}"
	})
	return converted, params
}

func operationID(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '{' || r == '}'
	})
	var b strings.Builder
	b.WriteString("get")
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		if len(part) > 1 {
			b.WriteString(part[1:])
		}
	}
	return b.String()
}

// MarshalOpenAPI serializes a document as json or yaml.
func MarshalOpenAPI(doc *openapi3.T, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		raw, err := doc.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal spec: %w", err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("decode spec: %w", err)
		}
		return yaml.Marshal(tree)
	case "", "json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
