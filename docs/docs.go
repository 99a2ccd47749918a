// Package docs 由 swag init 生成的文档模板，注解修改后重新生成
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
        "/api/taxonomy": {
            "get": {"produces": ["application/json"], "tags": ["分类"], "summary": "获取分类体系",
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/catalog/{kind}": {
            "get": {"produces": ["application/json"], "tags": ["内容"], "summary": "列表页查询",
                "parameters": [
                    {"enum": ["solution", "case", "app", "resource", "review", "client"], "type": "string", "description": "内容类型", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "关键词", "name": "q", "in": "query"},
                    {"type": "string", "description": "排序键，未知值使用页面默认排序", "name": "sort", "in": "query"},
                    {"type": "string", "description": "行业，如 大制造,金融", "name": "industry", "in": "query"}
                ],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.CatalogPageResponse"}}}}
        },
        "/api/catalog/{kind}/{id}": {
            "get": {"produces": ["application/json"], "tags": ["内容"], "summary": "获取单个条目",
                "parameters": [
                    {"type": "string", "description": "内容类型", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "条目ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/catalog/{kind}/{id}/engage": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["内容"], "summary": "记录互动",
                "parameters": [
                    {"type": "string", "description": "内容类型", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "条目ID", "name": "id", "in": "path", "required": true},
                    {"description": "互动类型", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EngageRequest"}}
                ],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/battlemap": {
            "get": {"produces": ["application/json"], "tags": ["内容"], "summary": "作战地图",
                "parameters": [
                    {"type": "string", "description": "关键词", "name": "q", "in": "query"},
                    {"type": "string", "description": "排序键：value 或 latest", "name": "sort", "in": "query"},
                    {"type": "string", "description": "行业", "name": "industry", "in": "query"}
                ],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/assistant/chat": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["AI助手"], "summary": "AI助手对话",
                "parameters": [{"description": "消息和历史", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ChatRequest"}}],
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/models.AssistantReplyResponse"}},
                    "429": {"description": "请求过于频繁", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }}
        },
        "/api/assistant/import": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["AI助手"], "summary": "智能导入",
                "parameters": [{"description": "原始资料", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TextRequest"}}],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/assistant/polish": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["AI助手"], "summary": "文本润色",
                "parameters": [{"description": "待润色文本", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TextRequest"}}],
                "responses": {"200": {"description": "成功", "schema": {"$ref": "#/definitions/models.APIResponse"}}}}
        },
        "/api/assistant/chart": {
            "post": {"consumes": ["application/json"], "produces": ["image/png"], "tags": ["AI助手"], "summary": "渲染图表",
                "parameters": [{"description": "图表数据", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ChartSpec"}}],
                "responses": {"200": {"description": "PNG图片", "schema": {"type": "file"}}}}
        }
    },
    "definitions": {
        "models.APIResponse": {"type": "object", "properties": {
            "code": {"type": "integer", "example": 0}, "message": {"type": "string", "example": "success"}, "data": {}}},
        "models.CatalogItem": {"type": "object", "properties": {
            "id": {"type": "string"}, "kind": {"type": "string"}, "title": {"type": "string"}, "summary": {"type": "string"},
            "facets": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
            "metrics": {"type": "object", "additionalProperties": {"type": "integer"}},
            "date": {"type": "string"},
            "attrs": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "models.CatalogPage": {"type": "object", "properties": {
            "kind": {"type": "string"}, "sort": {"type": "string"}, "total": {"type": "integer"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/models.CatalogItem"}}}},
        "models.CatalogPageResponse": {"type": "object", "properties": {
            "code": {"type": "integer", "example": 0}, "message": {"type": "string", "example": "success"},
            "data": {"$ref": "#/definitions/models.CatalogPage"}}},
        "models.ConversationTurn": {"type": "object", "properties": {
            "role": {"type": "string", "enum": ["user", "assistant"]}, "text": {"type": "string"}}},
        "models.ChatRequest": {"type": "object", "required": ["message"], "properties": {
            "message": {"type": "string", "example": "推荐几个汽车行业的解决方案"},
            "history": {"type": "array", "items": {"$ref": "#/definitions/models.ConversationTurn"}}}},
        "models.TextRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}},
        "models.EngageRequest": {"type": "object", "required": ["metric"], "properties": {
            "metric": {"type": "string", "enum": ["likes", "favorites", "comments", "views", "downloads"], "example": "likes"}}},
        "models.RecommendationItem": {"type": "object", "properties": {
            "id": {"type": "string"}, "type": {"type": "string", "enum": ["solution", "case", "app", "review", "resource"]},
            "title": {"type": "string"}, "desc": {"type": "string"}, "tag": {"type": "string"}}},
        "models.ChartPoint": {"type": "object", "properties": {"name": {"type": "string"}, "value": {"type": "number"}}},
        "models.ChartSpec": {"type": "object", "properties": {
            "type": {"type": "string", "enum": ["bar", "pie", "line"]}, "title": {"type": "string"},
            "data": {"type": "array", "items": {"$ref": "#/definitions/models.ChartPoint"}}}},
        "models.AssistantReply": {"type": "object", "properties": {
            "kind": {"type": "string", "enum": ["plain_text", "structured"]}, "text": {"type": "string"},
            "recommendations": {"type": "array", "items": {"$ref": "#/definitions/models.RecommendationItem"}},
            "chartData": {"$ref": "#/definitions/models.ChartSpec"}}},
        "models.AssistantReplyResponse": {"type": "object", "properties": {
            "code": {"type": "integer", "example": 0}, "message": {"type": "string", "example": "success"},
            "data": {"$ref": "#/definitions/models.AssistantReply"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "GTM销售门户 API",
	Description:      "解决方案、案例、AI应用、资料库、复盘和作战地图的统一检索，以及AI助手（对话、智能导入、润色、图表）",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
