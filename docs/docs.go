// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/worklog/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/me": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current viewer", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Viewer"}}}
            }
        },
        "/v1/users": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create user",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get user", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/users/{id}/password": {
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Reset password", "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.passwordRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/projects": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "List projects", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Create project",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.projectRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Project"}}}
            }
        },
        "/v1/projects/{id}": {
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Update project",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.projectRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Project"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Delete project", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectDeletedResponse"}}}
            }
        },
        "/v1/projects/{id}/entries": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["projects"], "summary": "Project detail", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/entries": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["entries"], "summary": "List entries", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "query"},
                    {"type": "string", "name": "project_id", "in": "query"},
                    {"type": "string", "name": "unit", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"},
                    {"type": "integer", "name": "week", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["entries"], "summary": "Create entry",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.entryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.WorkEntry"}}}
            }
        },
        "/v1/entries/{id}": {
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["entries"], "summary": "Update entry",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.entryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WorkEntry"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["entries"], "summary": "Delete entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/reports/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Dashboard", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "query"},
                    {"type": "string", "name": "project_id", "in": "query"},
                    {"type": "string", "name": "unit", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"},
                    {"type": "integer", "name": "week", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/reports/export.pdf": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Export PDF", "produces": ["application/pdf"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/v1/reports/export.xlsx": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Export XLSX",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/v1/documents": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "List documents", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Upload document",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Document"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/documents/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["documents"], "summary": "Delete document",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {
                "tags": ["health"], "summary": "Readiness", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.loginRequest": {
            "type": "object", "required": ["name", "password"],
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/domain.User"}}
        },
        "handler.createUserRequest": {
            "type": "object", "required": ["name", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 6}, "is_admin": {"type": "boolean"}}
        },
        "handler.passwordRequest": {
            "type": "object", "required": ["password"],
            "properties": {"password": {"type": "string", "minLength": 6}}
        },
        "handler.projectRequest": {
            "type": "object", "required": ["name"],
            "properties": {"name": {"type": "string"}, "default_unit": {"type": "string", "enum": ["HOURS", "AREA"]}}
        },
        "handler.projectDeletedResponse": {"type": "object", "properties": {"entries_removed": {"type": "integer"}}},
        "handler.entryRequest": {
            "type": "object", "required": ["project_id", "date"],
            "properties": {
                "user_id": {"type": "string"}, "project_id": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-04"},
                "amount": {"type": "number", "minimum": 0},
                "unit": {"type": "string", "enum": ["HOURS", "AREA"]},
                "note": {"type": "string", "maxLength": 200}
            }
        },
        "domain.Viewer": {
            "type": "object",
            "properties": {"user_id": {"type": "string"}, "display_name": {"type": "string"}, "is_admin": {"type": "boolean"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "is_admin": {"type": "boolean"}, "bootstrap": {"type": "boolean"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "domain.Project": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "default_unit": {"type": "string"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "domain.WorkEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "user_id": {"type": "string"}, "project_id": {"type": "string"},
                "date": {"type": "string"}, "amount": {"type": "number"}, "unit": {"type": "string"},
                "note": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "domain.Document": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "user_id": {"type": "string"}, "filename": {"type": "string"},
                "content_type": {"type": "string"}, "size": {"type": "integer"}, "uploaded_at": {"type": "string"}
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
	Title:            "worklog API",
	Description:      "Hours and area tracking with dashboards and PDF/XLSX exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
