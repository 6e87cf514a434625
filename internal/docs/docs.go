// Package docs holds the OpenAPI document served at /api-docs.
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and dependency check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        },
        "/thumbnail.svg": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["thumbnails"],
                "summary": "Placeholder thumbnail as SVG",
                "parameters": [
                    {"type": "integer", "default": 300, "description": "Width in pixels", "name": "width", "in": "query"},
                    {"type": "integer", "default": 200, "description": "Height in pixels", "name": "height", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Border in pixels", "name": "border", "in": "query"},
                    {"type": "string", "default": "#fcfcfc", "description": "Background color", "name": "bgcolor", "in": "query"},
                    {"type": "string", "default": "#ddd", "description": "Foreground color", "name": "fgcolor", "in": "query"},
                    {"type": "string", "default": "#aaa", "description": "Label color", "name": "textcolor", "in": "query"},
                    {"type": "integer", "default": 24, "description": "Label font size", "name": "textsize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/thumbnail.{format}": {
            "get": {
                "description": "Draws a crossed-out placeholder labelled with its dimensions. Malformed numbers fall back to their defaults.",
                "produces": ["image/png", "image/jpeg"],
                "tags": ["thumbnails"],
                "summary": "Placeholder thumbnail",
                "parameters": [
                    {"enum": ["png", "jpg"], "type": "string", "description": "png or jpg", "name": "format", "in": "path", "required": true},
                    {"type": "integer", "default": 300, "description": "Width in pixels", "name": "width", "in": "query"},
                    {"type": "integer", "default": 200, "description": "Height in pixels", "name": "height", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Border in pixels", "name": "border", "in": "query"},
                    {"type": "string", "default": "#fcfcfc", "description": "Background color", "name": "bgcolor", "in": "query"},
                    {"type": "string", "default": "#ddd", "description": "Foreground color", "name": "fgcolor", "in": "query"},
                    {"type": "string", "default": "#aaa", "description": "Label color", "name": "textcolor", "in": "query"},
                    {"type": "integer", "default": 24, "description": "Label font size", "name": "textsize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/uploads/{image}": {
            "get": {
                "description": "Without query parameters the stored bytes are returned unchanged.",
                "produces": ["image/png", "image/jpeg"],
                "tags": ["uploads"],
                "summary": "Download an image",
                "parameters": [
                    {"type": "string", "description": "Image name", "name": "image", "in": "path", "required": true},
                    {"type": "integer", "description": "Target width in pixels", "name": "width", "in": "query"},
                    {"type": "integer", "description": "Target height in pixels", "name": "height", "in": "query"},
                    {"type": "number", "description": "Gaussian blur sigma", "name": "blur", "in": "query"},
                    {"type": "number", "description": "Sharpen sigma", "name": "sharpen", "in": "query"},
                    {"type": "boolean", "description": "Convert to greyscale", "name": "greyscale", "in": "query"},
                    {"type": "boolean", "description": "Mirror vertically", "name": "flip", "in": "query"},
                    {"type": "boolean", "description": "Mirror horizontally", "name": "flop", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores the request body under {image}, replacing any previous upload.",
                "consumes": ["image/png", "image/jpeg"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "string", "description": "Image name ending in .png or .jpg", "name": "image", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.UploadResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "head": {
                "tags": ["uploads"],
                "summary": "Check an image exists",
                "parameters": [
                    {"type": "string", "description": "Image name", "name": "image", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/uploads/{image}/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload metadata",
                "parameters": [
                    {"type": "string", "description": "Image name", "name": "image", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.UploadInfo"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Image has not been uploaded yet"},
                "status": {"type": "string", "example": "error"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "api.UploadInfo": {
            "type": "object",
            "properties": {
                "content_type": {"type": "string", "example": "image/png"},
                "created_at": {"type": "string"},
                "key": {"type": "string", "example": "cat.png"},
                "sha256": {"type": "string"},
                "size": {"type": "integer", "example": 8287},
                "updated_at": {"type": "string"}
            }
        },
        "api.UploadResponse": {
            "type": "object",
            "properties": {
                "size": {"type": "integer", "example": 8287},
                "status": {"type": "string", "example": "ok"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "imgserve API",
	Description:      "Upload images, fetch them resized or filtered on the fly, and draw placeholder thumbnails.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
