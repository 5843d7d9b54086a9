// Package docs holds the swagger description served under /swagger.
// Regenerate with: swag init -g cmd/pix_wallet/main.go -o cmd/docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [{"description": "Login Credentials", "name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [{"description": "User details", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "409": {"description": "Username already in use", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/wallets": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Open a wallet",
                "parameters": [{"description": "Wallet owner", "name": "wallet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateWalletRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateWalletResponse"}},
                    "422": {"description": "Owner already has a wallet", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/wallets/{id}/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Get a wallet balance",
                "parameters": [
                    {"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "RFC3339 instant for a historical balance", "name": "at", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceResponse"}},
                    "404": {"description": "Wallet not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/wallets/{id}/deposit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Deposit into a wallet",
                "parameters": [
                    {"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true},
                    {"description": "Amount to deposit", "name": "amount", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceChangeResponse"}},
                    "409": {"description": "Wallet is busy", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/wallets/{id}/withdraw": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Withdraw from a wallet",
                "parameters": [
                    {"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true},
                    {"description": "Amount to withdraw", "name": "amount", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceChangeResponse"}},
                    "422": {"description": "Insufficient balance", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/wallets/{id}/ledger": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "List a wallet's ledger",
                "parameters": [
                    {"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Token from the previous page", "name": "nextToken", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListLedgerResponse"}}
                }
            }
        },
        "/wallets/{id}/pix-keys": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pix-keys"],
                "summary": "List a wallet's Pix keys",
                "parameters": [{"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PixKeyResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pix-keys"],
                "summary": "Register a Pix key",
                "parameters": [
                    {"type": "string", "description": "Wallet ID", "name": "id", "in": "path", "required": true},
                    {"description": "Key details", "name": "key", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterPixKeyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PixKeyResponse"}},
                    "422": {"description": "Invalid key or already registered", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/pix/transfers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pix"],
                "summary": "Create a Pix transfer",
                "parameters": [{"description": "Transfer details", "name": "transfer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePixTransferRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PixTransferResponse"}},
                    "409": {"description": "Duplicate request or wallet busy", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Validation failed or insufficient balance", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/pix/transfers/{idempotencyKey}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pix"],
                "summary": "Get a Pix transfer by idempotency key",
                "parameters": [{"type": "string", "description": "Idempotency key", "name": "idempotencyKey", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PixTransferResponse"}},
                    "404": {"description": "Transfer not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/pix/webhooks": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pix"],
                "summary": "Receive a Pix settlement event",
                "parameters": [{"description": "Settlement event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PixWebhookRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PixWebhookResponse"}},
                    "404": {"description": "No transfer for endToEndId", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.Violation": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "violations": {"type": "array", "items": {"$ref": "#/definitions/apperrors.Violation"}}}},
        "dto.LoginRequest": {"type": "object", "required": ["password", "username"], "properties": {"password": {"type": "string"}, "username": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {"expiresAt": {"type": "string"}, "token": {"type": "string"}, "tokenType": {"type": "string"}}},
        "dto.RegisterUserRequest": {"type": "object", "required": ["password", "roles", "username"], "properties": {"password": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}, "username": {"type": "string"}}},
        "dto.UserResponse": {"type": "object", "properties": {"createdAt": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}, "userId": {"type": "string"}, "username": {"type": "string"}}},
        "dto.CreateWalletRequest": {"type": "object", "required": ["ownerId"], "properties": {"ownerId": {"type": "string"}}},
        "dto.CreateWalletResponse": {"type": "object", "properties": {"ownerId": {"type": "string"}, "walletId": {"type": "string"}}},
        "dto.AmountRequest": {"type": "object", "required": ["amount"], "properties": {"amount": {"type": "number"}}},
        "dto.BalanceChangeResponse": {"type": "object", "properties": {"newBalance": {"type": "number"}, "walletId": {"type": "string"}}},
        "dto.BalanceResponse": {"type": "object", "properties": {"at": {"type": "string"}, "currentBalance": {"type": "number"}, "walletId": {"type": "string"}}},
        "dto.LedgerEntryResponse": {"type": "object", "properties": {"amount": {"type": "number"}, "balanceAfter": {"type": "number"}, "endToEndId": {"type": "string"}, "entryId": {"type": "string"}, "occurredAt": {"type": "string"}, "operationType": {"type": "string"}}},
        "dto.ListLedgerResponse": {"type": "object", "properties": {"entries": {"type": "array", "items": {"$ref": "#/definitions/dto.LedgerEntryResponse"}}, "nextToken": {"type": "string"}, "walletId": {"type": "string"}}},
        "dto.RegisterPixKeyRequest": {"type": "object", "required": ["keyType", "keyValue"], "properties": {"keyType": {"type": "string"}, "keyValue": {"type": "string"}}},
        "dto.PixKeyResponse": {"type": "object", "properties": {"keyType": {"type": "string"}, "keyValue": {"type": "string"}, "pixKeyId": {"type": "string"}, "walletId": {"type": "string"}}},
        "dto.CreatePixTransferRequest": {"type": "object", "required": ["amount", "endToEndId", "fromWalletId", "idempotencyKey", "toWalletId"], "properties": {"amount": {"type": "number"}, "endToEndId": {"type": "string"}, "fromWalletId": {"type": "string"}, "idempotencyKey": {"type": "string"}, "toWalletId": {"type": "string"}}},
        "dto.PixTransferResponse": {"type": "object", "properties": {"amount": {"type": "number"}, "createdAt": {"type": "string"}, "endToEndId": {"type": "string"}, "fromWalletId": {"type": "string"}, "idempotencyKey": {"type": "string"}, "status": {"type": "string"}, "toWalletId": {"type": "string"}, "transferId": {"type": "string"}}},
        "dto.PixWebhookRequest": {"type": "object", "required": ["endToEndId", "eventId", "eventType", "occurredAt"], "properties": {"endToEndId": {"type": "string"}, "eventId": {"type": "string"}, "eventType": {"type": "string"}, "occurredAt": {"type": "string"}}},
        "dto.PixWebhookResponse": {"type": "object", "properties": {"endToEndId": {"type": "string"}, "eventId": {"type": "string"}, "eventType": {"type": "string"}, "occurredAt": {"type": "string"}, "processedAt": {"type": "string"}, "webhookEventId": {"type": "string"}}}
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pix Wallet API",
	Description:      "Wallet balances, an append-only ledger and idempotent Pix transfers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
