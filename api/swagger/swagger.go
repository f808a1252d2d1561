package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Fala Cidadão API",
        "description": "Registro de ocorrências urbanas e estatísticas para prefeituras",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Ocorrências", "description": "Registro de reclamações dos cidadãos"},
        {"name": "Dashboard", "description": "Estatísticas agregadas por prefeitura"},
        {"name": "Media", "description": "Upload de fotos e vídeos"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/ocorrencias": {
            "post": {
                "tags": ["Ocorrências"],
                "summary": "Registrar uma ocorrência",
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOccurrenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Usuário não está logado", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Estatísticas agregadas de ocorrências",
                "parameters": [
                    {"name": "prefeitura_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "prefeitura_id é obrigatório", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/dashboard/stats/export": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Exportar estatísticas em CSV ou PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"},
                    {"name": "prefeitura_id", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Arquivo gerado"},
                    "401": {"description": "Usuário não autorizado", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/media/upload": {
            "post": {
                "tags": ["Media"],
                "summary": "Enviar foto ou vídeo de uma ocorrência",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "type", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Nenhum arquivo enviado / arquivo muito grande", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Usuário não autorizado", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Occurrence": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "prefeitura_id": {"type": "string"},
                "titulo": {"type": "string"},
                "descricao": {"type": "string"},
                "categoria_id": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "endereco": {"type": "string"},
                "fotos": {"type": "array", "items": {"type": "string"}},
                "videos": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["recebido", "em_analise", "em_atendimento", "resolvido", "rejeitado"]},
                "created_at": {"type": "string"}
            }
        },
        "CreateOccurrenceRequest": {
            "type": "object",
            "properties": {
                "titulo": {"type": "string"},
                "descricao": {"type": "string"},
                "categoria_id": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "endereco": {"type": "string"},
                "fotos": {"type": "array", "items": {"type": "string"}},
                "videos": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["titulo", "descricao"]
        },
        "GeneralStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "recebidas": {"type": "integer"},
                "em_analise": {"type": "integer"},
                "em_atendimento": {"type": "integer"},
                "resolvidas": {"type": "integer"},
                "rejeitadas": {"type": "integer"},
                "percentual_resolucao": {"type": "integer"}
            }
        },
        "DailyStat": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "total": {"type": "integer"},
                "resolvidas": {"type": "integer"}
            }
        },
        "DashboardStatsResponse": {
            "type": "object",
            "properties": {
                "estatisticas_gerais": {"$ref": "#/definitions/GeneralStats"},
                "estatisticas_diarias": {"type": "array", "items": {"$ref": "#/definitions/DailyStat"}},
                "periodo_dias": {"type": "integer"}
            }
        },
        "MediaUploadResponse": {
            "type": "object",
            "properties": {
                "fileName": {"type": "string"},
                "publicUrl": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "SuccessEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "message": {"type": "string"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
