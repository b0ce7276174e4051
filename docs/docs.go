// Package docs holds the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignUpRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "400": {"description": "User already exists", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PublicUser"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Update profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PublicUser"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/trips": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["trips"],
                "summary": "List trips",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trip"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to fetch trips", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["trips"],
                "summary": "Create a trip",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TripRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.TripEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to add trip", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/trips/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["trips"],
                "summary": "Get a trip",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TripEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "404": {"description": "Trip not found", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to fetch trip", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["trips"],
                "summary": "Update a trip",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TripPatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TripEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "404": {"description": "Trip not found", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to update trip", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["trips"],
                "summary": "Delete a trip",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Trip deleted successfully", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "404": {"description": "Trip not found", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to delete trip", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/expenses/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["expenses"],
                "summary": "Add an expense",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ExpenseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to add expense", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/expenses/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["expenses"],
                "summary": "List the caller's expenses",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "tripId", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}},
                    "500": {"description": "Failed to retrieve expenses", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Summary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        },
        "/ws": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Live dashboard feed",
                "description": "Upgrades to a WebSocket and pushes summary envelopes.",
                "parameters": [
                    {"type": "string", "name": "token", "in": "query"},
                    {"type": "string", "name": "interval", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Error"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "status": {"type": "string"}}
        },
        "handlers.SignUpRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "s3cr3t"},
                "displayName": {"type": "string", "example": "Alice"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "s3cr3t"}
            }
        },
        "handlers.ProfileRequest": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.TripRequest": {
            "type": "object",
            "required": ["tripName", "destination", "startDate", "endDate"],
            "properties": {
                "tripName": {"type": "string", "example": "Paris"},
                "destination": {"type": "string", "example": "France"},
                "startDate": {"type": "string", "example": "2025-06-01"},
                "endDate": {"type": "string", "example": "2025-06-10"}
            }
        },
        "handlers.TripPatchRequest": {
            "type": "object",
            "properties": {
                "tripName": {"type": "string"},
                "destination": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"}
            }
        },
        "handlers.TripEnvelope": {
            "type": "object",
            "properties": {"trip": {"$ref": "#/definitions/models.Trip"}}
        },
        "handlers.ExpenseRequest": {
            "type": "object",
            "required": ["amount", "description", "date"],
            "properties": {
                "amount": {"type": "number", "example": 42.5},
                "description": {"type": "string", "example": "Taxi"},
                "date": {"type": "string", "example": "2025-06-02"},
                "tripId": {"type": "string"}
            }
        },
        "models.PublicUser": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "email": {"type": "string"},
                "displayName": {"type": "string"}
            }
        },
        "service.AuthResult": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.PublicUser"}
            }
        },
        "models.Trip": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "tripName": {"type": "string"},
                "destination": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "userUid": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "userId": {"type": "string"},
                "tripId": {"type": "string"},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "tripCount": {"type": "integer"},
                "upcomingTrips": {"type": "array", "items": {"$ref": "#/definitions/models.Trip"}},
                "expenseCount": {"type": "integer"},
                "expenseTotal": {"type": "number"}
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
	Title:            "Travel Planner API",
	Description:      "Users, trips and expenses for a personal travel planner.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
