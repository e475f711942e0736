// Package docs holds the Swagger spec served at /swagger. Regenerate with
// swag init -g cmd/api/main.go -o internal/docs after changing annotations.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "Running", "schema": {"type": "string"}}}
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}],
                "responses": {
                    "200": {"description": "Account created", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Missing fields or account exists", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/add_budget": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budget"],
                "summary": "Set this month's budget",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.AddBudgetRequest"}}],
                "responses": {
                    "200": {"description": "Budget set", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Missing or invalid amount", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/get_budget": {
            "get": {
                "produces": ["application/json"],
                "tags": ["budget"],
                "summary": "Get budget overview",
                "parameters": [{"type": "integer", "name": "user_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "Budget overview", "schema": {"type": "object"}},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Transactions", "schema": {"type": "object"}},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Add a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {
                    "200": {"description": "Transaction added", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/goals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "List goals",
                "parameters": [{"type": "integer", "name": "user_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "Goals", "schema": {"type": "object"}},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Add a goal",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateGoalRequest"}}],
                "responses": {
                    "200": {"description": "Goal added", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/update_goal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Update a goal",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateGoalRequest"}}],
                "responses": {
                    "200": {"description": "Goal updated", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "403": {"description": "Goal belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Goal not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/delete_goal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Delete a goal",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.DeleteGoalRequest"}}],
                "responses": {
                    "200": {"description": "Goal deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "403": {"description": "Goal belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Goal not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/add_goal_money": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Add money to a goal",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.AddGoalMoneyRequest"}}],
                "responses": {
                    "200": {"description": "Amount added to goal", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Goal belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Goal not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/goal_money_history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Goal deposit history",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "goal_id", "in": "query", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Deposits", "schema": {"type": "object"}},
                    "400": {"description": "Missing user_id or goal_id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/predictions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Expense forecast",
                "parameters": [{"type": "integer", "name": "user_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "Forecast", "schema": {"type": "object"}},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "success"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "error"}, "code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.SignupRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/handlers.UserResponse"},
                "token": {"type": "string"}
            }
        },
        "handlers.AddBudgetRequest": {
            "type": "object",
            "required": ["user_id", "amount"],
            "properties": {"user_id": {"type": "integer"}, "amount": {"type": "number"}}
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["user_id", "category", "amount", "type", "date"],
            "properties": {
                "user_id": {"type": "integer"},
                "category": {"type": "string"},
                "amount": {"type": "number"},
                "type": {"type": "string", "enum": ["expense", "income"]},
                "date": {"type": "string", "example": "2024-03-10"}
            }
        },
        "handlers.CreateGoalRequest": {
            "type": "object",
            "required": ["user_id", "name", "target", "date"],
            "properties": {
                "user_id": {"type": "integer"},
                "name": {"type": "string"},
                "target": {"type": "number"},
                "saved": {"type": "number"},
                "date": {"type": "string", "example": "2024-12-31"}
            }
        },
        "handlers.UpdateGoalRequest": {
            "type": "object",
            "required": ["goal_id"],
            "properties": {
                "goal_id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "name": {"type": "string"},
                "target": {"type": "number"},
                "date": {"type": "string"}
            }
        },
        "handlers.DeleteGoalRequest": {
            "type": "object",
            "required": ["goal_id"],
            "properties": {"goal_id": {"type": "integer"}, "user_id": {"type": "integer"}}
        },
        "handlers.AddGoalMoneyRequest": {
            "type": "object",
            "required": ["user_id", "goal_id", "amount", "date"],
            "properties": {
                "user_id": {"type": "integer"},
                "goal_id": {"type": "integer"},
                "amount": {"type": "number"},
                "date": {"type": "string", "example": "2024-03-10"},
                "note": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
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
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Finance Advisor API",
	Description:      "Personal finance backend: budgets, transactions, savings goals and a spending forecast.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
