package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Account API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Account API",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    },
    "schemas": {
      "AmountRequest": {
        "type": "object",
        "required": ["amount"],
        "properties": {
          "amount": {"type": "string", "example": "24500.00"}
        }
      }
    },
    "parameters": {
      "AccountNumber": {
        "name": "accountNumber",
        "in": "path",
        "required": true,
        "schema": {"type": "string", "maxLength": 64}
      }
    }
  },
  "security": [{"BasicAuth": []}],
  "paths": {
    "/accounts": {
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": {"description": "Accounts ordered by account number"},
          "401": {"description": "Unauthorized"}
        }
      },
      "post": {
        "summary": "Open account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "accountNumber": {"type": "string"},
                  "initialBalance": {"type": "string", "example": "20000"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Opened"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "409": {"description": "Account already exists"},
          "413": {"description": "Request body too large"}
        }
      }
    },
    "/accounts/{accountNumber}": {
      "get": {
        "summary": "Get account balance",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "responses": {
          "200": {"description": "Account fetched"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountNumber}/deposit": {
      "post": {
        "summary": "Deposit funds",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AmountRequest"}}}
        },
        "responses": {
          "200": {"description": "Funds deposited"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountNumber}/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AmountRequest"}}}
        },
        "responses": {
          "200": {"description": "Funds withdrawn"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Account not found"},
          "422": {"description": "Insufficient balance"}
        }
      }
    },
    "/transfers": {
      "post": {
        "summary": "Transfer funds between accounts",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["debitAccountNumber", "creditAccountNumber", "amount"],
                "properties": {
                  "debitAccountNumber": {"type": "string"},
                  "creditAccountNumber": {"type": "string"},
                  "amount": {"type": "string", "example": "5200"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer completed"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Account not found"},
          "422": {"description": "Insufficient balance"}
        }
      }
    }
  }
}`
