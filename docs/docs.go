// Package docs holds the OpenAPI description served under /swagger/.
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
        "/api/commits": {
            "get": {
                "description": "One page of the signed-in user's commits from the last 30 days, newest first",
                "produces": ["application/json"],
                "tags": ["commits"],
                "summary": "Recent commits",
                "parameters": [
                    {"type": "integer", "description": "1-based page, clamped into range", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.MultiCommitsResponse"}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/contributions": {
            "get": {
                "description": "The last 30 days of contributions laid out as 6 rows of 5 days",
                "produces": ["application/json"],
                "tags": ["contributions"],
                "summary": "Contribution grid",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.ContributionGrid"}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/repositories/latest": {
            "get": {
                "description": "The n most recently pushed repositories of the signed-in user",
                "produces": ["application/json"],
                "tags": ["repositories"],
                "summary": "Latest repositories",
                "parameters": [
                    {"type": "integer", "description": "number of repositories (default 3)", "name": "n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dtos.Repository"}}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        }
    },
    "definitions": {
        "dtos.Commit": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "date": {"type": "string"},
                "message": {"type": "string"},
                "repository": {"type": "string"},
                "sha": {"type": "string"},
                "short_sha": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dtos.ContributionCell": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "count": {"type": "integer"},
                "date": {"type": "string"},
                "title": {"type": "string"},
                "weekday": {"type": "integer"}
            }
        },
        "dtos.ContributionGrid": {
            "type": "object",
            "properties": {
                "cells": {"type": "array", "items": {"type": "array", "items": {"$ref": "#/definitions/dtos.ContributionCell"}}},
                "columns": {"type": "integer"},
                "rows": {"type": "integer"}
            }
        },
        "dtos.MultiCommitsResponse": {
            "type": "object",
            "properties": {
                "commits": {"type": "array", "items": {"$ref": "#/definitions/dtos.Commit"}},
                "page_info": {"$ref": "#/definitions/dtos.PagingInfo"}
            }
        },
        "dtos.PagingInfo": {
            "type": "object",
            "properties": {
                "has_next": {"type": "boolean"},
                "has_previous": {"type": "boolean"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "dtos.Repository": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "name": {"type": "string"},
                "pushed_at": {"type": "string"}
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
	Title:            "git-dashboard API",
	Description:      "Recent commits, repositories and contributions of the signed-in GitHub user.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
