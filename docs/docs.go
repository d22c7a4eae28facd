// Package docs holds the swagger document served under /swagger. It mirrors the godoc
// annotations on the handlers and must be updated with them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start an anonymous session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        },
        "/cars": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cars"],
                "summary": "Search listings",
                "parameters": [
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "number", "name": "price_min", "in": "query"},
                    {"type": "number", "name": "price_max", "in": "query"},
                    {"type": "integer", "name": "year_min", "in": "query"},
                    {"type": "integer", "name": "year_max", "in": "query"},
                    {"type": "integer", "name": "mileage_min", "in": "query"},
                    {"type": "integer", "name": "mileage_max", "in": "query"},
                    {"type": "string", "name": "state_name", "in": "query"},
                    {"type": "string", "name": "state", "in": "query"},
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "string", "name": "direction", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListingPage"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/cars/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cars"],
                "summary": "Get a listing",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListingResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/cars/{id}/analysis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cars"],
                "summary": "Generate a technical sheet for a listing",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "seed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnalysisResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/mechanic": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["mechanic"],
                "summary": "Current recommendation state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MechanicResponse"}}
                }
            }
        },
        "/mechanic/budget": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mechanic"],
                "summary": "Submit budget",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BudgetRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MechanicResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/mechanic/profile": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mechanic"],
                "summary": "Submit usage profile",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MechanicResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/mechanic/priorities": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mechanic"],
                "summary": "Submit priorities",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PrioritiesRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MechanicResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/mechanic/reset": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["mechanic"],
                "summary": "Restart the flow",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MechanicResponse"}}
                }
            }
        },
        "/favorites": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List favorites",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ListingResponse"}}}
                }
            }
        },
        "/favorites/{id}": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Toggle a favorite",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteToggleResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["favorites"],
                "summary": "Remove a favorite",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/leads": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Submit a seller lead",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateLeadRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LeadResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "analysis.Competitor": {
            "type": "object",
            "properties": {
                "model": {
                    "type": "string"
                },
                "highlight": {
                    "type": "string"
                }
            }
        },
        "analysis.Consumption": {
            "type": "object",
            "properties": {
                "gasoline": {
                    "type": "number"
                },
                "ethanol": {
                    "type": "number"
                }
            }
        },
        "analysis.FuelEconomy": {
            "type": "object",
            "properties": {
                "city": {
                    "$ref": "#/definitions/analysis.Consumption"
                },
                "highway": {
                    "$ref": "#/definitions/analysis.Consumption"
                },
                "efficiency": {
                    "type": "string"
                }
            }
        },
        "analysis.MarketValue": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "number"
                },
                "price_ratio": {
                    "type": "integer"
                },
                "evaluation": {
                    "type": "string"
                }
            }
        },
        "analysis.Specs": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "string"
                },
                "engine": {
                    "type": "string"
                },
                "power": {
                    "type": "string"
                },
                "torque": {
                    "type": "string"
                },
                "transmission": {
                    "type": "string"
                },
                "drivetrain": {
                    "type": "string"
                },
                "fuel": {
                    "type": "string"
                },
                "doors": {
                    "type": "integer"
                },
                "length": {
                    "type": "string"
                },
                "wheelbase": {
                    "type": "string"
                },
                "capacity": {
                    "type": "string"
                }
            }
        },
        "analysis.Sheet": {
            "type": "object",
            "properties": {
                "vehicle_type": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "specs": {
                    "$ref": "#/definitions/analysis.Specs"
                },
                "market_value": {
                    "$ref": "#/definitions/analysis.MarketValue"
                },
                "fuel_economy": {
                    "$ref": "#/definitions/analysis.FuelEconomy"
                },
                "common_issues": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "competitors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.Competitor"
                    }
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.AnalysisResponse": {
            "type": "object",
            "properties": {
                "listing": {
                    "$ref": "#/definitions/dto.ListingResponse"
                },
                "analysis": {
                    "$ref": "#/definitions/analysis.Sheet"
                },
                "narrative": {
                    "type": "string"
                },
                "seed": {
                    "type": "integer"
                }
            }
        },
        "dto.BudgetRequest": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "string",
                    "example": "R$ 50.000",
                    "description": "Currency text or a plain number"
                }
            }
        },
        "dto.CreateLeadRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "price": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "brand",
                "model",
                "year",
                "price",
                "name",
                "email",
                "phone"
            ]
        },
        "dto.FavoriteToggleResponse": {
            "type": "object",
            "properties": {
                "listing_id": {
                    "type": "string"
                },
                "favorite": {
                    "type": "boolean"
                }
            }
        },
        "dto.LeadResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "whatsapp_link": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.ListingPage": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ListingResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "dto.ListingResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "year": {
                    "type": "integer"
                },
                "mileage": {
                    "type": "integer"
                },
                "image_url": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "link": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.MechanicResponse": {
            "type": "object",
            "properties": {
                "stage": {
                    "type": "string"
                },
                "budget": {
                    "type": "number"
                },
                "profile": {
                    "type": "string"
                },
                "priorities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "candidates": {
                    "type": "integer"
                },
                "selected_cars": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.RecommendedCar"
                    }
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.PrioritiesRequest": {
            "type": "object",
            "properties": {
                "priorities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "Economia",
                        "Conforto"
                    ]
                }
            }
        },
        "dto.ProfileRequest": {
            "type": "object",
            "properties": {
                "profile": {
                    "type": "string",
                    "example": "Família"
                }
            }
        },
        "dto.RecommendedCar": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "year": {
                    "type": "integer"
                },
                "mileage": {
                    "type": "integer"
                },
                "image_url": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "link": {
                    "type": "string"
                }
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and the session token.",
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
	Title:            "Carmarket API",
	Description:      "Used car marketplace: search, favorites, seller leads and a guided recommendation flow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
