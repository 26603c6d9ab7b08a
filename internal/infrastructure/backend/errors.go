package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNetwork          = errors.New("clinic backend unreachable")
	ErrUnauthorized     = errors.New("clinic backend rejected the credentials")
	ErrForbidden        = errors.New("clinic backend denied access")
	ErrNotFound         = errors.New("resource not found on clinic backend")
	ErrUnexpectedStatus = errors.New("unexpected clinic backend status")
)

// RemoteRejectedError carries the field-keyed validation messages of a 4xx reply.
type RemoteRejectedError struct {
	StatusCode  int
	FieldErrors map[string][]string
	Detail      string
}

// Error joins the messages as "field: m1, m2; other: m3", fields in sorted order.
func (e *RemoteRejectedError) Error() string {
	if len(e.FieldErrors) == 0 {
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request rejected with status %d", e.StatusCode)
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.FieldErrors[field], ", ")))
	}
	return strings.Join(parts, "; ")
}

// AsRemoteRejected unwraps err into a *RemoteRejectedError when it is one.
func AsRemoteRejected(err error) (*RemoteRejectedError, bool) {
	var rejected *RemoteRejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}

// errorFromResponse maps a non-2xx reply to the package errors.
func errorFromResponse(statusCode int, body []byte) error {
	detail := extractDetail(body)

	switch {
	case statusCode == http.StatusUnauthorized:
		return withDetail(ErrUnauthorized, detail)
	case statusCode == http.StatusForbidden:
		return withDetail(ErrForbidden, detail)
	case statusCode == http.StatusNotFound:
		return withDetail(ErrNotFound, detail)
	case statusCode >= 400 && statusCode < 500:
		return &RemoteRejectedError{
			StatusCode:  statusCode,
			FieldErrors: parseFieldErrors(body),
			Detail:      detail,
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}
}

func withDetail(base error, detail string) error {
	if detail == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, detail)
}

// parseFieldErrors reads a {"field": ["msg", ...]} body. Scalar and nested values
// are kept as a single message.
func parseFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fieldErrors := make(map[string][]string, len(raw))
	for field, value := range raw {
		var list []interface{}
		if err := json.Unmarshal(value, &list); err == nil {
			messages := make([]string, 0, len(list))
			for _, item := range list {
				messages = append(messages, messageString(item))
			}
			fieldErrors[field] = messages
			continue
		}

		var single interface{}
		if err := json.Unmarshal(value, &single); err == nil {
			fieldErrors[field] = []string{messageString(single)}
		}
	}
	return fieldErrors
}

func messageString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(encoded)
	}
}

// extractDetail pulls a human message out of bodies like {"detail": "..."} or a bare string.
func extractDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		return asString
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(body, &asObject); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if s, ok := asObject[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}

	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}
