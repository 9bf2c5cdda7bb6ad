// Package response writes the JSON envelope shared by every API route.
package response

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Response is the envelope. Data is the payload on success; a list page that failed to fetch
// also rides in Data, in its error state, next to the Error detail.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	ErrorWithData(w, statusCode, message, nil, err)
}

func ErrorWithData(w http.ResponseWriter, statusCode int, message string, data interface{}, err interface{}) {
	JSON(w, statusCode, Response{Message: message, Data: data, Error: err})
}

// ValidationError reports rejected request fields keyed by their JSON names.
func ValidationError(w http.ResponseWriter, fieldErrors interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", fieldErrors)
}

// UpstreamError reports a failed Postgres or Redis round trip: 504 when it ran out of time,
// 502 otherwise. data may carry the page that was being resolved.
func UpstreamError(w http.ResponseWriter, timedOut bool, message string, data interface{}, err interface{}) {
	status := http.StatusBadGateway
	if timedOut {
		status = http.StatusGatewayTimeout
	}
	ErrorWithData(w, status, message, data, err)
}

// MethodNotAllowed lists the methods the path does serve in the Allow header.
func MethodNotAllowed(w http.ResponseWriter, method string, allowed []string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	Error(w, http.StatusMethodNotAllowed, "Method not allowed", method+" is not served here")
}

// TooManyRequests tells the client how long to back off, rounded up to whole seconds.
func TooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	seconds := int((retryAfter + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	statusError(w, http.StatusTooManyRequests, "")
}

func Unauthorized(w http.ResponseWriter, message string) {
	statusError(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	statusError(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	statusError(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	statusError(w, http.StatusInternalServerError, message)
}

// statusError falls back to the standard status text when no message is given.
func statusError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	Error(w, status, message, nil)
}
