// Package docs содержит описание HTTP API для swagger.
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
        "/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Текущий снимок состояния",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.AppState"}}}
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Список товаров",
                "parameters": [{"type": "string", "description": "Строка поиска", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Добавление товара",
                "parameters": [{"description": "Товар", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Изменение товара",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"description": "Изменяемые поля", "name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ProductPatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Удаление товара",
                "parameters": [{"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Список покупателей",
                "parameters": [{"type": "string", "description": "Поиск по имени или телефону", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Customer"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Добавление покупателя",
                "parameters": [{"description": "Покупатель", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CustomerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Журнал продаж",
                "parameters": [{"type": "string", "description": "Строка поиска", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Sale"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Проведение продажи",
                "parameters": [{"description": "Продажа", "name": "sale", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SaleRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Sale"}},
                    "400": {"description": "Пустая корзина, несогласованные итоги или ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sales/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Расчёт итогов корзины",
                "parameters": [{"description": "Корзина", "name": "cart", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.QuoteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sales/{invoice}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Продажа по номеру накладной",
                "parameters": [{"type": "string", "description": "Номер накладной, например INV-1001", "name": "invoice", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Sale"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/reports/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Дашборд",
                "parameters": [{"type": "integer", "default": 5, "description": "Размер списка лидеров продаж", "name": "top", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/report.Dashboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/session/language": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Переключение языка интерфейса (en/bn)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.LanguageResponse"}}}
            }
        },
        "/session/logout": {
            "post": {
                "tags": ["session"],
                "summary": "Завершение сессии",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "purchasePrice": {"type": "string"},
                "sellingPrice": {"type": "string"},
                "stock": {"type": "integer"},
                "minStock": {"type": "integer"},
                "sku": {"type": "string"}
            }
        },
        "domain.Customer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "totalPurchase": {"type": "string"},
                "dues": {"type": "string"}
            }
        },
        "domain.SaleItem": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"}
            }
        },
        "domain.Sale": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customerId": {"type": "string"},
                "customerName": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.SaleItem"}},
                "subtotal": {"type": "string"},
                "discount": {"type": "string"},
                "tax": {"type": "string"},
                "total": {"type": "string"},
                "profit": {"type": "string"},
                "paymentMethod": {"type": "string", "enum": ["CASH", "CARD", "MOBILE"]},
                "timestamp": {"type": "string"},
                "invoiceNumber": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "STAFF"]},
                "name": {"type": "string"}
            }
        },
        "domain.AppState": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}},
                "customers": {"type": "array", "items": {"$ref": "#/definitions/domain.Customer"}},
                "sales": {"type": "array", "items": {"$ref": "#/definitions/domain.Sale"}},
                "currentUser": {"$ref": "#/definitions/domain.User"},
                "language": {"type": "string", "enum": ["en", "bn"]},
                "invoiceSeq": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.ProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "purchasePrice": {"type": "string"},
                "sellingPrice": {"type": "string"},
                "stock": {"type": "integer"},
                "minStock": {"type": "integer"},
                "sku": {"type": "string"}
            }
        },
        "http.ProductPatchRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "purchasePrice": {"type": "string"},
                "sellingPrice": {"type": "string"},
                "stock": {"type": "integer"},
                "minStock": {"type": "integer"},
                "sku": {"type": "string"}
            }
        },
        "http.CustomerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "http.SaleItemRequest": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"}
            }
        },
        "http.QuoteRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.SaleItemRequest"}},
                "discount": {"type": "string"}
            }
        },
        "http.SaleRequest": {
            "type": "object",
            "properties": {
                "customerId": {"type": "string"},
                "customerName": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.SaleItemRequest"}},
                "discount": {"type": "string"},
                "subtotal": {"type": "string"},
                "tax": {"type": "string"},
                "total": {"type": "string"},
                "paymentMethod": {"type": "string", "enum": ["CASH", "CARD", "MOBILE"]}
            }
        },
        "http.QuoteResponse": {
            "type": "object",
            "properties": {
                "subtotal": {"type": "string"},
                "discount": {"type": "string"},
                "tax": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "http.LanguageResponse": {
            "type": "object",
            "properties": {
                "language": {"type": "string", "enum": ["en", "bn"]}
            }
        },
        "report.ProductPerformance": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "revenue": {"type": "string"}
            }
        },
        "report.ChartPoint": {
            "type": "object",
            "properties": {
                "invoiceNumber": {"type": "string"},
                "timestamp": {"type": "string"},
                "sales": {"type": "string"},
                "profit": {"type": "string"}
            }
        },
        "report.Dashboard": {
            "type": "object",
            "properties": {
                "totalSales": {"type": "string"},
                "totalProfit": {"type": "string"},
                "averageOrderValue": {"type": "string"},
                "salesCount": {"type": "integer"},
                "customerCount": {"type": "integer"},
                "productCount": {"type": "integer"},
                "lowStock": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}},
                "bestSellers": {"type": "array", "items": {"$ref": "#/definitions/report.ProductPerformance"}},
                "recent": {"type": "array", "items": {"$ref": "#/definitions/report.ChartPoint"}}
            }
        }
    }
}`

// SwaggerInfo содержит экспортируемую информацию об API
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Retail Core API",
	Description:      "Каталог, покупатели, проведение продаж и отчёты по одному снимку состояния.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
