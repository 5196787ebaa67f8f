package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const supportLink = "https://discord.gg/ga8EJbv"

// ErrorKind classifies an API failure by status code.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidRequest
	KindUnauthorized
	KindNotFound
	KindInternal
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	// Body is the decoded JSON body, nil when the body was empty or not JSON.
	Body    interface{}
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError for a 404.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// KindOf returns the kind of the APIError in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// newAPIError builds the error for a failed response. The raw body is decoded
// best-effort; a body that is not JSON is treated as absent.
func newAPIError(status int, raw []byte) *APIError {
	body, text := decodeBody(raw)

	e := &APIError{StatusCode: status, Body: body}
	switch status {
	case http.StatusBadRequest:
		e.Kind = KindInvalidRequest
		if list := errorList(body); len(list) > 0 {
			e.Message = strings.Join(list, ", ")
		} else {
			e.Message = "Invalid request: " + text
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Kind = KindUnauthorized
		e.Message = fmt.Sprintf("Unauthorized. Full message was '%s'", text)
	case http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = fmt.Sprintf("Not found. Full message was '%s'", text)
	case http.StatusInternalServerError:
		e.Kind = KindInternal
		e.Message = fmt.Sprintf("Internal server error. OpenSea has been alerted, but if the problem persists please contact us via Discord: %s - full message was %s", supportLink, text)
	case http.StatusServiceUnavailable:
		e.Kind = KindUnavailable
		e.Message = fmt.Sprintf("Service unavailable. Please try again in a few minutes. If the problem persists please contact us via Discord: %s - full message was %s", supportLink, text)
	default:
		e.Kind = KindUnknown
		e.Message = fmt.Sprintf("status code %d. Message: %s", status, text)
	}
	return e
}

// decodeBody returns the decoded body and its compact text. Numbers stay
// json.Number and the text keeps the server's key order.
func decodeBody(raw []byte) (interface{}, string) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body interface{}
	if err := dec.Decode(&body); err != nil || dec.More() {
		return nil, ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, ""
	}
	return body, buf.String()
}

func errorList(body interface{}) []string {
	m, ok := body.(map[string]interface{})
	if !ok {
		return nil
	}
	items, ok := m["errors"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(it))
		}
	}
	return out
}
