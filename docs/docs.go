// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Keep it in step with the swag annotations on cmd/main.go and the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"basePath": "{{.BasePath}}",
	"definitions": {
		"handlers.HealthResponse": {
			"properties": {
				"status": {
					"example": "ok",
					"type": "string"
				}
			},
			"type": "object"
		},
		"models.CreateReceivableRequest": {
			"properties": {
				"amount": {
					"example": 150.0,
					"type": "number"
				},
				"description": {
					"example": "Invoice 1",
					"type": "string"
				},
				"dueDate": {
					"example": "2025-01-01",
					"type": "string"
				}
			},
			"required": [
				"description"
			],
			"type": "object"
		},
		"models.LoginRequest": {
			"properties": {
				"email": {
					"example": "ana@x.com",
					"type": "string"
				},
				"password": {
					"example": "secret1",
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			],
			"type": "object"
		},
		"models.LoginResponse": {
			"properties": {
				"token": {
					"example": "JWT_TOKEN",
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				}
			},
			"type": "object"
		},
		"models.MessageResponse": {
			"properties": {
				"message": {
					"example": "Receivable not found",
					"type": "string"
				}
			},
			"type": "object"
		},
		"models.Receivable": {
			"properties": {
				"amount": {
					"example": 150.0,
					"type": "number"
				},
				"createdAt": {
					"type": "string"
				},
				"description": {
					"example": "Invoice 1",
					"type": "string"
				},
				"dueDate": {
					"example": "2025-01-01",
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"ownerUserId": {
					"type": "string"
				},
				"removed": {
					"example": false,
					"type": "boolean"
				},
				"updatedAt": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				}
			},
			"type": "object"
		},
		"models.RegisterRequest": {
			"properties": {
				"email": {
					"example": "ana@x.com",
					"type": "string"
				},
				"isAdmin": {
					"example": false,
					"type": "boolean"
				},
				"name": {
					"example": "Ana Silva",
					"maxLength": 100,
					"minLength": 3,
					"type": "string"
				},
				"password": {
					"example": "secret1",
					"maxLength": 72,
					"type": "string"
				}
			},
			"required": [
				"email",
				"name",
				"password"
			],
			"type": "object"
		},
		"models.RegisterResponse": {
			"properties": {
				"message": {
					"example": "User created successfully",
					"type": "string"
				}
			},
			"type": "object"
		},
		"models.UpdateReceivableRequest": {
			"properties": {
				"amount": {
					"example": 175.5,
					"type": "number"
				},
				"description": {
					"example": "Invoice 1 (revised)",
					"type": "string"
				},
				"dueDate": {
					"example": "2025-02-01",
					"type": "string"
				}
			},
			"type": "object"
		},
		"models.User": {
			"properties": {
				"email": {
					"example": "ana@x.com",
					"type": "string"
				},
				"id": {
					"example": "6f1c2a0e-8b1d-4f6e-9d55-2f0f5d1f7b10",
					"type": "string"
				},
				"isAdmin": {
					"example": false,
					"type": "boolean"
				},
				"name": {
					"example": "Ana Silva",
					"type": "string"
				}
			},
			"type": "object"
		}
	},
	"host": "{{.Host}}",
	"info": {
		"contact": {},
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"version": "{{.Version}}"
	},
	"paths": {
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"description": "Authenticate user and return the public user view and a JWT token",
				"parameters": [
					{
						"description": "Login Request",
						"in": "body",
						"name": "loginRequest",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoginRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "User and JWT token",
						"schema": {
							"$ref": "#/definitions/models.LoginResponse"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error during login",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"summary": "User login",
				"tags": [
					"auth"
				]
			}
		},
		"/auth/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"description": "Creates a new user account. Email must be unique. Password is hashed before storing.",
				"parameters": [
					{
						"description": "User registration request",
						"in": "body",
						"name": "registerRequest",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RegisterRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "User created",
						"schema": {
							"$ref": "#/definitions/models.RegisterResponse"
						}
					},
					"400": {
						"description": "User already exists / invalid request",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error creating user",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"summary": "Register a new user",
				"tags": [
					"auth"
				]
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/handlers.HealthResponse"
						}
					}
				},
				"summary": "Health check",
				"tags": [
					"health"
				]
			}
		},
		"/receivables": {
			"get": {
				"description": "Returns every receivable that has not been removed, with its owner",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/models.Receivable"
							},
							"type": "array"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error fetching receivables",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "List receivables",
				"tags": [
					"receivables"
				]
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Receivable",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateReceivableRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Receivable"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error creating receivable",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Create receivable",
				"tags": [
					"receivables"
				]
			}
		},
		"/receivables/{id}": {
			"delete": {
				"parameters": [
					{
						"description": "Receivable ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Receivable deleted successfully",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"403": {
						"description": "Access denied",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"404": {
						"description": "Receivable not found",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error deleting receivable",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Delete receivable",
				"tags": [
					"receivables"
				]
			},
			"get": {
				"parameters": [
					{
						"description": "Receivable ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Receivable"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"404": {
						"description": "Receivable not found",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error fetching receivable",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Get receivable",
				"tags": [
					"receivables"
				]
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"description": "Omitted fields keep their stored value",
				"parameters": [
					{
						"description": "Receivable ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Changes",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UpdateReceivableRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Receivable"
						}
					},
					"400": {
						"description": "Invalid request body",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"403": {
						"description": "Access denied",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"404": {
						"description": "Receivable not found",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					},
					"500": {
						"description": "Error updating receivable",
						"schema": {
							"$ref": "#/definitions/models.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Update receivable",
				"tags": [
					"receivables"
				]
			}
		}
	},
	"schemes": {{ marshal .Schemes }},
	"securityDefinitions": {
		"BearerAuth": {
			"in": "header",
			"name": "Authorization",
			"type": "apiKey"
		}
	},
	"swagger": "2.0"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "gw-receivables API",
	Description:      "Authentication and receivable accounts management",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
