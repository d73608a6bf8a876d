// Package docs embeds the service's OpenAPI description.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
