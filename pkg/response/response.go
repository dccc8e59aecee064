package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithPagination(w http.ResponseWriter, statusCode int, message string, data interface{}, pagination interface{}) {
	JSON(w, statusCode, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// Created answers 201 with a Location header pointing at the new resource.
func Created(w http.ResponseWriter, location string, message string, data interface{}) {
	w.Header().Set("Location", location)
	Success(w, http.StatusCreated, message, data)
}

func Error(w http.ResponseWriter, statusCode int, message string, errors []string) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}

func ValidationError(w http.ResponseWriter, message string, errors []string) {
	if message == "" {
		message = "Validation failed"
	}
	Error(w, http.StatusBadRequest, message, errors)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
