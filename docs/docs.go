// Package docs registers the swagger document of the preview API with swag.
// It follows the layout written by `swag init -g cmd/app/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/languages": {
            "get": {
                "description": "Returns the default language and the supported languages in configuration order",
                "produces": ["application/json"],
                "tags": ["locale"],
                "summary": "Supported languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Languages"}}
                }
            }
        },
        "/api/v1/resolve": {
            "get": {
                "description": "Returns the language addressed by path and the path without its language prefix",
                "produces": ["application/json"],
                "tags": ["locale"],
                "summary": "Resolve a request path",
                "parameters": [
                    {"type": "string", "description": "Request path, e.g. /en/about", "name": "path", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Resolution"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/translations/{lang}": {
            "get": {
                "description": "Every known key resolved for lang, falling back to the default language",
                "produces": ["application/json"],
                "tags": ["locale"],
                "summary": "All translations of a language",
                "parameters": [
                    {"type": "string", "description": "Language code", "name": "lang", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/translations/{lang}/{key}": {
            "get": {
                "description": "Looks key up for lang, then for the default language",
                "produces": ["application/json"],
                "tags": ["locale"],
                "summary": "Translate a key",
                "parameters": [
                    {"type": "string", "description": "Language code", "name": "lang", "in": "path", "required": true},
                    {"type": "string", "description": "Translation key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Translation"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/collections": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "List collections",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.CollectionSummary"}}}
                }
            }
        },
        "/api/v1/collections/{name}/entries": {
            "get": {
                "description": "Returns entry summaries (without body) sorted by pubDate DESC, optionally filtered by language",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "List entries of a collection",
                "parameters": [
                    {"type": "string", "description": "Collection name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Language code", "name": "lang", "in": "query"},
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 10, max: 100)", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.EntriesPage"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/collections/{name}/entries/{slug}": {
            "get": {
                "description": "Returns a single entry with its body. The slug may contain slashes",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Get an entry",
                "parameters": [
                    {"type": "string", "description": "Collection name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Entry slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Entry"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/diagnostics": {
            "get": {
                "description": "Validation errors of the current snapshot",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Rejected documents",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Diagnostic"}}}
                }
            }
        },
        "/api/v1/reload": {
            "post": {
                "description": "Reads all collections again; the previous content is kept when reading fails",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Reload content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.ReloadResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "rest.CollectionSummary": {
            "type": "object",
            "properties": {
                "entries": {"type": "integer"},
                "name": {"type": "string"},
                "rejected": {"type": "integer"}
            }
        },
        "rest.Diagnostic": {
            "type": "object",
            "properties": {
                "collection": {"type": "string"},
                "detail": {"type": "string"},
                "document": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "rest.EntriesPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/rest.EntrySummary"}},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "rest.Entry": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "collection": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "lang": {"type": "string"},
                "path": {"type": "string"},
                "pubDate": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "rest.EntrySummary": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "lang": {"type": "string"},
                "pubDate": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "rest.Language": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "rest.Languages": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "languages": {"type": "array", "items": {"$ref": "#/definitions/rest.Language"}}
            }
        },
        "rest.ReloadResult": {
            "type": "object",
            "properties": {
                "collections": {"type": "integer"},
                "loadedAt": {"type": "string"},
                "rejected": {"type": "integer"}
            }
        },
        "rest.Resolution": {
            "type": "object",
            "properties": {
                "lang": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "rest.Translation": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "lang": {"type": "string"},
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4321",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UOS Pages Preview API",
	Description:      "Validated content collections and translations of the bilingual site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
