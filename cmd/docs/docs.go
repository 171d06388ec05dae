// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/ledger_engine/main.go -o cmd/docs
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
        "/calculations/line-subtotal": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calculations"],
                "summary": "Compute a line subtotal",
                "parameters": [{"in": "body", "name": "line", "required": true, "schema": {"$ref": "#/definitions/dto.LineItemRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid quantity or price"}}
            }
        },
        "/calculations/invoice": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calculations"],
                "summary": "Preview invoice totals",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid line"}}
            }
        },
        "/calculations/payroll": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calculations"],
                "summary": "Preview payroll totals",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Negative input"}}
            }
        },
        "/calculations/journal": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calculations"],
                "summary": "Check a journal entry draft",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid movement"}}
            }
        },
        "/journal-entries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["journal-entries"],
                "summary": "List journal entries",
                "parameters": [
                    {"type": "integer", "name": "month", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "string", "name": "nextToken", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["journal-entries"],
                "summary": "Submit a journal entry",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid input"},
                    "422": {"description": "Debits and credits do not balance"},
                    "502": {"description": "Backend rejected the entry"}
                }
            }
        },
        "/journal-entries/periods": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["journal-entries"],
                "summary": "List journal periods",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/invoices/sales": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Submit a sales invoice",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Backend rejected the invoice"}}
            }
        },
        "/invoices/purchases": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["invoices"],
                "summary": "Submit a purchase invoice",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Backend rejected the invoice"}}
            }
        },
        "/payroll-receipts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["payroll"],
                "summary": "Submit a payroll receipt",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Backend rejected the receipt"}}
            }
        },
        "/receipts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["cash"],
                "summary": "Submit a customer receipt",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Backend rejected the receipt"}}
            }
        },
        "/payments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["cash"],
                "summary": "Submit a supplier payment",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "502": {"description": "Backend rejected the payment"}}
            }
        },
        "/counts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["counts"],
                "summary": "Get document counts",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Backend unavailable"}}
            }
        },
        "/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/event-stream"],
                "tags": ["counts"],
                "summary": "Stream document count changes",
                "responses": {"200": {"description": "event stream"}}
            }
        }
    },
    "definitions": {
        "dto.LineItemRequest": {
            "type": "object",
            "properties": {
                "articleID": {"type": "integer"},
                "quantity": {"type": "string", "example": "2"},
                "unitPrice": {"type": "string", "example": "125.00"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "x-api-key", "in": "header"},
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Engine API",
	Description:      "Computes, validates and submits journal entries, invoices, payroll receipts and cash movements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
