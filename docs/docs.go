// Package docs is generated from the handler annotations in pkg/north/api/route by swag init.
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
        "/api/chats": {
            "get": {
                "description": "list conversations, most recently active first",
                "produces": ["application/json"],
                "tags": ["conversation"],
                "summary": "list conversations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.ConversationSummary"}}}
                }
            },
            "post": {
                "description": "create an empty conversation with the default title",
                "produces": ["application/json"],
                "tags": ["conversation"],
                "summary": "create conversation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CreatedConversation"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.CustomError"}}
                }
            }
        },
        "/api/chats/{chatId}": {
            "delete": {
                "description": "delete conversation",
                "produces": ["application/json"],
                "tags": ["conversation"],
                "summary": "delete conversation",
                "parameters": [{"type": "string", "description": "conversation id", "name": "chatId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DeleteResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.CustomError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.CustomError"}}
                }
            }
        },
        "/api/chats/{chatId}/messages": {
            "get": {
                "description": "get messages of a conversation, an unknown id answers an empty list with 404",
                "produces": ["application/json"],
                "tags": ["conversation"],
                "summary": "get messages",
                "parameters": [{"type": "string", "description": "conversation id", "name": "chatId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.Message"}}},
                    "404": {"description": "Not Found", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.Message"}}}
                }
            }
        },
        "/chat_api": {
            "post": {
                "description": "classify the message, answer it and append both to the conversation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "send message",
                "parameters": [{"description": "chat post", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.ChatPost"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.CustomError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.CustomError"}}
                }
            }
        },
        "/api/map/bury": {
            "post": {
                "description": "ask what fossil could be found at the given coordinates",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "dig at a map location",
                "parameters": [{"description": "location", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.BuryPost"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.FossilRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.CustomError"}}
                }
            }
        },
        "/api/map/examine": {
            "post": {
                "description": "explain a fossil record returned by bury as html",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "examine a dug fossil",
                "parameters": [{"description": "fossil record", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.FossilRecord"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ExamineResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.CustomError"}}
                }
            }
        },
        "/api/version": {
            "get": {
                "description": "show version of the running server",
                "produces": ["application/json"],
                "tags": ["version"],
                "summary": "show version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.VersionInfo"}}
                }
            }
        }
    },
    "definitions": {
        "http.CustomError": {
            "type": "object",
            "properties": {"customErrCode": {"type": "string"}, "message": {"type": "string"}}
        },
        "v1.BuryPost": {
            "type": "object",
            "properties": {"era": {"type": "string"}, "lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "v1.ChatPost": {
            "type": "object",
            "properties": {"chat_id": {"type": "string"}, "message": {"type": "string"}}
        },
        "v1.ChatResponse": {
            "type": "object",
            "properties": {"image_url": {"type": "string"}, "new_title": {"type": "string"}, "response": {"type": "string"}}
        },
        "v1.ConversationSummary": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "timestamp": {"type": "number"}, "title": {"type": "string"}}
        },
        "v1.CreatedConversation": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}}
        },
        "v1.DeleteResult": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "v1.ExamineResponse": {
            "type": "object",
            "properties": {"html": {"type": "string"}}
        },
        "v1.FossilRecord": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "description": {"type": "string"},
                "era": {"type": "string"},
                "formation": {"type": "string"},
                "found": {"type": "boolean"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "name": {"type": "string"},
                "reason": {"type": "string"},
                "scientific_name": {"type": "string"}
            }
        },
        "v1.Message": {
            "type": "object",
            "properties": {"content": {"type": "string"}, "role": {"type": "string"}}
        },
        "v1.VersionInfo": {
            "type": "object",
            "properties": {
                "gitVersion": {"type": "string"},
                "llmModel": {"type": "string"},
                "llmProvider": {"type": "string"},
                "releaseVersion": {"type": "string"},
                "storeBackend": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "fossil-api",
	Description:      "conversational fossil identification backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
