package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Agenda API",
        "description": "Calendar and scheduling backend for medical practices",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Calendar", "description": "Rendered calendar view models"},
        {"name": "Events", "description": "Shift and appointment events"},
        {"name": "StaffSchedules", "description": "Recurring shift templates"},
        {"name": "Staff", "description": "Staff roster"},
        {"name": "Branches", "description": "Practice locations"}
    ],
    "paths": {
        "/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Render the calendar for a mode and cursor date",
                "parameters": [
                    {"name": "mode", "in": "query", "type": "string", "enum": ["dia", "semana", "mes"]},
                    {"name": "cursor", "in": "query", "type": "string", "format": "date"},
                    {"name": "type", "in": "query", "required": true, "type": "string", "enum": ["TURNO", "CITA", "OTRO"]},
                    {"name": "staffId", "in": "query", "type": "string"},
                    {"name": "branchId", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/filter": {
            "get": {
                "tags": ["Events"],
                "summary": "List events by filter",
                "parameters": [
                    {"name": "type", "in": "query", "required": true, "type": "string", "enum": ["TURNO", "CITA", "OTRO"]},
                    {"name": "staffId", "in": "query", "type": "string"},
                    {"name": "branchId", "in": "query", "type": "string"},
                    {"name": "staffScheduleId", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "startDate", "in": "query", "type": "string", "format": "date"},
                    {"name": "endDate", "in": "query", "type": "string", "format": "date"},
                    {"name": "disablePagination", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events": {
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Events"],
                "summary": "Update event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/remove/all": {
            "delete": {
                "tags": ["Events"],
                "summary": "Deactivate events in bulk",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkIDsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/reactivate/all": {
            "patch": {
                "tags": ["Events"],
                "summary": "Reactivate events in bulk",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkIDsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}/generate-events": {
            "post": {
                "tags": ["Events"],
                "summary": "Queue recurrence expansion for an event's schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/by-schedule/{scheduleId}": {
            "delete": {
                "tags": ["Events"],
                "summary": "Delete every event generated from a schedule",
                "parameters": [
                    {"name": "scheduleId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/staff-schedules": {
            "get": {
                "tags": ["StaffSchedules"],
                "summary": "List staff schedules",
                "parameters": [
                    {"name": "staffId", "in": "query", "type": "string"},
                    {"name": "branchId", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["StaffSchedules"],
                "summary": "Create staff schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StaffScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/staff-schedules/{id}": {
            "get": {
                "tags": ["StaffSchedules"],
                "summary": "Get staff schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["StaffSchedules"],
                "summary": "Update staff schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StaffScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["StaffSchedules"],
                "summary": "Deactivate staff schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/staff-schedules/{id}/reactivate": {
            "patch": {
                "tags": ["StaffSchedules"],
                "summary": "Reactivate staff schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/staff": {
            "get": {
                "tags": ["Staff"],
                "summary": "List staff members",
                "parameters": [
                    {"name": "branchId", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/staff/{id}": {
            "get": {
                "tags": ["Staff"],
                "summary": "Get staff member",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/branches": {
            "get": {
                "tags": ["Branches"],
                "summary": "List branches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/branches/{id}": {
            "get": {
                "tags": ["Branches"],
                "summary": "Get branch",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "RecurrenceRule": {
            "type": "object",
            "properties": {
                "frequency": {"type": "string", "enum": ["DAILY", "WEEKLY", "MONTHLY", "YEARLY"]},
                "interval": {"type": "integer"},
                "until": {"type": "string", "format": "date-time"},
                "daysOfWeek": {"type": "array", "items": {"type": "string"}},
                "exceptions": {"type": "array", "items": {"type": "string", "format": "date"}}
            },
            "required": ["frequency", "interval"]
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["TURNO", "CITA", "OTRO"]},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "status": {"type": "string"},
                "color": {"type": "string"},
                "staffId": {"type": "string"},
                "branchId": {"type": "string"},
                "patientId": {"type": "string"},
                "staffScheduleId": {"type": "string"},
                "isBaseEvent": {"type": "boolean"},
                "recurrence": {"$ref": "#/definitions/RecurrenceRule"},
                "exceptions": {"type": "array", "items": {"type": "string", "format": "date"}}
            },
            "required": ["title", "type", "start", "end", "staffId", "branchId"]
        },
        "UpdateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "status": {"type": "string"},
                "color": {"type": "string"},
                "staffId": {"type": "string"},
                "branchId": {"type": "string"},
                "isCancelled": {"type": "boolean"},
                "cancellationReason": {"type": "string"},
                "exceptions": {"type": "array", "items": {"type": "string", "format": "date"}}
            }
        },
        "BulkIDsRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["ids"]
        },
        "StaffScheduleRequest": {
            "type": "object",
            "properties": {
                "staffId": {"type": "string"},
                "branchId": {"type": "string"},
                "title": {"type": "string"},
                "color": {"type": "string"},
                "startTime": {"type": "string", "example": "08:00"},
                "endTime": {"type": "string", "example": "16:00"},
                "startDate": {"type": "string", "format": "date-time"},
                "frequency": {"type": "string", "enum": ["DAILY", "WEEKLY", "MONTHLY", "YEARLY"]},
                "interval": {"type": "integer"},
                "until": {"type": "string", "format": "date-time"},
                "daysOfWeek": {"type": "array", "items": {"type": "string"}},
                "exceptions": {"type": "array", "items": {"type": "string", "format": "date"}}
            },
            "required": ["staffId", "branchId", "title", "startTime", "endTime", "startDate", "frequency", "interval"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
