package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Department Assistant API",
        "description": "Chatbot backend for the software engineering department",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Chat", "description": "Free-text question answering"},
        {"name": "Courses", "description": "Yearbook course catalog"},
        {"name": "Labs", "description": "Lab timetables"},
        {"name": "Advisors", "description": "Academic advisor finder"},
        {"name": "Admin", "description": "Content management"}
    ],
    "paths": {
        "/ask": {
            "post": {
                "tags": ["Chat"],
                "summary": "Answer a free-text question",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AskResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/AskResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/AskResponse"}}
                }
            }
        },
        "/courses/suggest": {
            "get": {
                "tags": ["Chat"],
                "summary": "Autocomplete course names and codes",
                "parameters": [
                    {"name": "yearbookId", "in": "query", "required": true, "type": "string"},
                    {"name": "q", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/yearbooks": {
            "get": {
                "tags": ["Courses"],
                "summary": "List yearbooks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/yearbooks/{yearbookId}/courses/{semesterKey}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List one semester's courses",
                "parameters": [
                    {"name": "yearbookId", "in": "path", "required": true, "type": "string"},
                    {"name": "semesterKey", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/labs/years": {
            "get": {
                "tags": ["Labs"],
                "summary": "List lab schedule years",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/labs/{yearId}/{semester}": {
            "get": {
                "tags": ["Labs"],
                "summary": "Get one semester's lab timetable",
                "parameters": [
                    {"name": "yearId", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown year or semester", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisors/find": {
            "get": {
                "tags": ["Advisors"],
                "summary": "Find the advisors responsible for a student",
                "parameters": [
                    {"name": "lastNameLetter", "in": "query", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "required": true, "type": "integer"},
                    {"name": "track", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/yearbooks/{yearbookId}/courses/{semesterKey}/{courseCode}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Create or replace a course",
                "parameters": [
                    {"name": "yearbookId", "in": "path", "required": true, "type": "string"},
                    {"name": "semesterKey", "in": "path", "required": true, "type": "string"},
                    {"name": "courseCode", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete a course",
                "parameters": [
                    {"name": "yearbookId", "in": "path", "required": true, "type": "string"},
                    {"name": "semesterKey", "in": "path", "required": true, "type": "string"},
                    {"name": "courseCode", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/labs/{yearId}/{semester}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Replace one semester's lab timetable",
                "parameters": [
                    {"name": "yearId", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplaceLabSemesterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/labs/{yearId}/{semester}/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export one semester's lab timetable",
                "parameters": [
                    {"name": "yearId", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "CSV or PDF attachment"}
                }
            }
        },
        "/admin/registration-guidelines/{semester}": {
            "get": {
                "tags": ["Admin"],
                "summary": "Get one semester's registration guideline document",
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Admin"],
                "summary": "Merge-save one semester's registration guideline document",
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/advisors": {
            "get": {
                "tags": ["Admin"],
                "summary": "List all advisors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/advisors/{advisorId}": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create or update an advisor",
                "parameters": [
                    {"name": "advisorId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveAdvisorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete an advisor",
                "parameters": [
                    {"name": "advisorId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "AskRequest": {
            "type": "object",
            "properties": {
                "yearbookId": {"type": "string"},
                "question": {"type": "string"}
            },
            "required": ["yearbookId", "question"]
        },
        "AskResponse": {
            "type": "object",
            "properties": {
                "html": {"type": "string"}
            }
        },
        "Suggestion": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "courseName": {"type": "string"},
                "score": {"type": "integer"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "courseName": {"type": "string"},
                "semesterKey": {"type": "string"},
                "relations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseRelation"}
                }
            }
        },
        "CourseRelation": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "relationType": {"type": "string", "enum": ["PREREQUISITE", "COREQUISITE"]}
            }
        },
        "SaveCourseRequest": {
            "type": "object",
            "properties": {
                "courseName": {"type": "string"},
                "relations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseRelation"}
                }
            },
            "required": ["courseName"]
        },
        "ReplaceLabSemesterRequest": {
            "type": "object",
            "properties": {
                "yearLabel": {"type": "string"},
                "semester": {"type": "integer"},
                "courses": {"type": "object"}
            },
            "required": ["yearLabel", "semester", "courses"]
        },
        "SaveAdvisorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "semesters": {"type": "array", "items": {"type": "integer"}},
                "lastNameRanges": {"type": "array", "items": {"type": "string"}},
                "tracks": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["name", "email", "semesters", "lastNameRanges"]
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
