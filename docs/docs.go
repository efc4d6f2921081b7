// Package docs registers the OpenAPI document served under /swagger.
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
        "/tasks": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/tasks/{id}/start": {
            "post": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Start a task countdown",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/tasks/{id}/claim": {
            "post": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Claim a task reward",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/tasks/{id}/countdown": {
            "delete": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Cancel a task countdown",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/prices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Price view",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/prices/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Refresh prices",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/referrals": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["referrals"],
                "summary": "Get referral data",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/referrals/submit": {
            "post": {
                "security": [{"TelegramInitData": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["referrals"],
                "summary": "Submit a referrer code",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/share": {
            "get": {
                "produces": ["application/json"],
                "tags": ["referrals"],
                "summary": "Social share links",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/me": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get current user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users/me/name": {
            "put": {
                "security": [{"TelegramInitData": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update full name",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/wallet": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Wallet status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/wallet/balance": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "TON balance of the connected wallet",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/i18n": {
            "get": {
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "Supported languages",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/i18n/{lang}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "String table",
                "parameters": [{"type": "string", "description": "Language code", "name": "lang", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pages/{path}": {
            "get": {
                "security": [{"TelegramInitData": []}],
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Resolve a page",
                "parameters": [{"type": "string", "description": "Client path", "name": "path", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        }
    },
    "securityDefinitions": {
        "TelegramInitData": {
            "description": "Telegram Mini App init_data string for authentication",
            "type": "apiKey",
            "name": "init_data",
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
	Title:            "Lyra Coin API",
	Description:      "Backend of the Lyra Coin Telegram Mini App: social tasks, rewards, prices, referrals and wallet status.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
