// Package docs registers the base API description with the swag registry.
// The template is written by hand in OpenAPI 3 form, not produced by
// swag init: the search routes are hidden, so it only carries the info
// block and internal/openapi fills in servers, paths and components.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "openapi": "3.0.2",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "PullPush Reddit API Documentation",
	Description:      "Interactive documentation for the PullPush Reddit API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
