package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every gateway answer. Error carries field
// messages for validation failures and backend rejections.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// SinglePage describes a list served in one page of at most limit items.
func SinglePage(total, limit int) *Meta {
	return &Meta{Page: 1, Limit: limit, Total: int64(total), TotalPages: 1}
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource not found",
	http.StatusConflict:            "Conflict",
	http.StatusUnprocessableEntity: "Request cannot be processed",
	http.StatusInternalServerError: "Internal server error",
	http.StatusBadGateway:          "Clinic backend unavailable",
	http.StatusServiceUnavailable:  "Service unavailable",
}

// fallbackBody is sent when a payload cannot be encoded.
var fallbackBody = []byte(`{"success":false,"message":"Internal server error"}` + "\n")

// JSON encodes body before touching the header, so an unencodable payload
// still yields a well-formed 500 envelope.
func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		statusCode, payload = http.StatusInternalServerError, fallbackBody
	} else {
		payload = append(payload, '\n')
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	// Answers carry session-bound data
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	SuccessWithMeta(w, statusCode, message, data, nil)
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data, Meta: meta})
}

// Error writes a failure envelope. An empty message takes the default for statusCode.
func Error(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	if message == "" {
		message = defaultMessages[statusCode]
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	JSON(w, statusCode, Response{Success: false, Message: message, Error: details})
}

func ValidationError(w http.ResponseWriter, fields interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", fields)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message, nil)
}

// Conflict reports page state that does not allow the request, such as no doctor selected.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message, nil)
}

func UnprocessableEntity(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnprocessableEntity, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message, nil)
}

func BadGateway(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadGateway, message, nil)
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, http.StatusServiceUnavailable, message, nil)
}
