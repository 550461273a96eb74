package utils

import (
	"github.com/gin-gonic/gin"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIResponse is the envelope every JSON endpoint returns.
// Success: {"success": true, "message": "...", "data": {...}}
// Failure: {"success": false, "message": "...", "errors": [{"field": "...", "message": "..."}]}
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK writes a success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(200, APIResponse{Success: true, Message: message, Data: data})
}

// Created writes a success envelope with HTTP 201.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(201, APIResponse{Success: true, Message: message, Data: data})
}

// FailStatus writes a failure envelope with an explicit status code.
func FailStatus(c *gin.Context, status int, message string, errs []FieldError) {
	c.JSON(status, APIResponse{Success: false, Message: message, Errors: errs})
}
