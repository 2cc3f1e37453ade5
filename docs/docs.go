// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g main.go --parseDependency
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
        "/user": {
            "get": {"produces": ["application/json"], "tags": ["User"], "summary": "List users",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["User"], "summary": "Create a user",
                "parameters": [{"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/user/{id}": {
            "get": {"produces": ["application/json"], "tags": ["User"], "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Malformed id or user not found", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["User"], "summary": "Update a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UpdateUserRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["User"], "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/user/{id}/favorites": {
            "get": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "List a user's favorites",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/user/{id}/favorites/planet/{target_id}": {
            "post": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Add a favorite planet",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Planet ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Remove a favorite planet",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Planet ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/user/{id}/favorites/character/{target_id}": {
            "post": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Add a favorite character",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Character ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Remove a favorite character",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Character ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/user/{id}/favorites/starship/{target_id}": {
            "post": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Add a favorite starship",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Starship ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Favorites"], "summary": "Remove a favorite starship",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Starship ID", "name": "target_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/planet": {
            "get": {"produces": ["application/json"], "tags": ["Planet"], "summary": "List planets",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Planet"], "summary": "Create a planet",
                "parameters": [{"description": "Planet", "name": "planet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreatePlanetRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/planet/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Planet"], "summary": "Get a planet",
                "parameters": [{"type": "integer", "description": "Planet ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Planet"], "summary": "Update a planet",
                "parameters": [{"type": "integer", "description": "Planet ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "planet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UpdatePlanetRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Planet"], "summary": "Delete a planet",
                "parameters": [{"type": "integer", "description": "Planet ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/character": {
            "get": {"produces": ["application/json"], "tags": ["Character"], "summary": "List characters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Character"], "summary": "Create a character",
                "parameters": [{"description": "Character", "name": "character", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateCharacterRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/character/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Character"], "summary": "Get a character",
                "parameters": [{"type": "integer", "description": "Character ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Character"], "summary": "Update a character",
                "parameters": [{"type": "integer", "description": "Character ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "character", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UpdateCharacterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Character"], "summary": "Delete a character",
                "parameters": [{"type": "integer", "description": "Character ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/starship": {
            "get": {"produces": ["application/json"], "tags": ["Starship"], "summary": "List starships",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Starship"], "summary": "Create a starship",
                "parameters": [{"description": "Starship", "name": "starship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateStarshipRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        },
        "/starship/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Starship"], "summary": "Get a starship",
                "parameters": [{"type": "integer", "description": "Starship ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Starship"], "summary": "Update a starship",
                "parameters": [{"type": "integer", "description": "Starship ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "starship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UpdateStarshipRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}},
            "delete": {"produces": ["application/json"], "tags": ["Starship"], "summary": "Delete a starship",
                "parameters": [{"type": "integer", "description": "Starship ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.MessageResponse"}}}}
        }
    },
    "definitions": {
        "types.DataResponse": {"type": "object", "properties": {"data": {}}},
        "types.MessageResponse": {"type": "object", "properties": {"msg": {"type": "string", "example": "planet 3 deleted"}}},
        "types.CreateUserRequest": {"type": "object", "required": ["email", "password", "is_active"],
            "properties": {"email": {"type": "string", "example": "luke@rebellion.org"}, "password": {"type": "string", "example": "usetheforce"}, "is_active": {"type": "boolean", "example": true}}},
        "types.UpdateUserRequest": {"type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "types.CreatePlanetRequest": {"type": "object", "required": ["name", "population"],
            "properties": {"name": {"type": "string", "example": "Tatooine"}, "population": {"type": "integer", "example": 200000}}},
        "types.UpdatePlanetRequest": {"type": "object",
            "properties": {"name": {"type": "string"}, "population": {"type": "integer"}}},
        "types.CreateCharacterRequest": {"type": "object", "required": ["name", "height", "gender"],
            "properties": {"name": {"type": "string", "example": "Leia Organa"}, "height": {"type": "integer", "example": 150}, "gender": {"type": "string", "example": "female"}}},
        "types.UpdateCharacterRequest": {"type": "object",
            "properties": {"name": {"type": "string"}, "height": {"type": "integer"}, "gender": {"type": "string"}}},
        "types.CreateStarshipRequest": {"type": "object", "required": ["model", "passengers"],
            "properties": {"model": {"type": "string", "example": "T-65 X-wing"}, "passengers": {"type": "integer", "example": 0}}},
        "types.UpdateStarshipRequest": {"type": "object",
            "properties": {"model": {"type": "string"}, "passengers": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Star Wars Favorites API",
	Description:      "Users, planets, characters, starships and the favorites that link them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
