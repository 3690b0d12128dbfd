package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>osshare-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the catalog endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Open Source Sharing Platform API", "version": "v0.1.0" },
  "paths": {
    "/api/datasets": {
      "get": {
        "summary": "List datasets",
        "parameters": [
          {"name":"tag","in":"query","schema":{"type":"string"}},
          {"name":"q","in":"query","schema":{"type":"string"},"description":"Case-insensitive substring match on name/description"},
          {"name":"limit","in":"query","schema":{"type":"integer","default":50}}
        ],
        "responses": {"200": {"description": "Array of dataset documents"}}
      },
      "post": {
        "summary": "Share a dataset",
        "requestBody": {"content": {"application/json": {"schema": {"type":"object","required":["name","description","url"],"properties":{"name":{"type":"string"},"description":{"type":"string"},"url":{"type":"string","format":"uri"},"repo_url":{"type":"string","format":"uri"},"license":{"type":"string"},"maintainer":{"type":"string"},"size_mb":{"type":"number","minimum":0},"tags":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": {"201": {"description": "Created, returns {id}"}, "400": {"description": "Validation or write error"}}
      }
    },
    "/api/tools": {
      "get": {
        "summary": "List tools",
        "parameters": [
          {"name":"tag","in":"query","schema":{"type":"string"}},
          {"name":"q","in":"query","schema":{"type":"string"}},
          {"name":"limit","in":"query","schema":{"type":"integer","default":50}}
        ],
        "responses": {"200": {"description": "Array of tool documents"}}
      },
      "post": {
        "summary": "Share a tool",
        "requestBody": {"content": {"application/json": {"schema": {"type":"object","required":["name","description","repo_url"],"properties":{"name":{"type":"string"},"description":{"type":"string"},"repo_url":{"type":"string","format":"uri"},"homepage_url":{"type":"string","format":"uri"},"license":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": {"201": {"description": "Created, returns {id}"}, "400": {"description": "Validation or write error"}}
      }
    },
    "/api/snippets": {
      "get": {
        "summary": "List snippets",
        "parameters": [
          {"name":"tag","in":"query","schema":{"type":"string"}},
          {"name":"q","in":"query","schema":{"type":"string"}},
          {"name":"language","in":"query","schema":{"type":"string"}},
          {"name":"limit","in":"query","schema":{"type":"integer","default":50}}
        ],
        "responses": {"200": {"description": "Array of snippet documents"}}
      },
      "post": {
        "summary": "Share a snippet",
        "requestBody": {"content": {"application/json": {"schema": {"type":"object","required":["title","description","language","code"],"properties":{"title":{"type":"string"},"description":{"type":"string"},"language":{"type":"string"},"code":{"type":"string"},"repo_url":{"type":"string","format":"uri"},"tags":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": {"201": {"description": "Created, returns {id}"}, "400": {"description": "Validation or write error"}}
      }
    },
    "/schema": {
      "get": {"summary": "Static JSON-schema description of the document kinds", "responses": {"200": {"description": "Schema map"}}}
    },
    "/test": {
      "get": {"summary": "Store connectivity diagnostic", "responses": {"200": {"description": "Degraded-status payload, never an HTTP error"}}}
    }
  }
}`
