package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	NetworkMessage  = "Unable to reach server."
	FallbackMessage = "Something went wrong. Please try again."
)

// ErrNetworkUnreachable marks requests that never received an HTTP response.
var ErrNetworkUnreachable = errors.New("network unreachable")

// Kind classifies an API failure for display and logging.
type Kind string

const (
	KindNone               Kind = ""
	KindServerValidation   Kind = "server_validation"
	KindNetworkUnreachable Kind = "network_unreachable"
	KindUnknown            Kind = "unknown"
)

// FieldError is one entry of the error body's details mapping.
type FieldError struct {
	Field    string
	Messages []string
}

// APIError is a non-2xx response from the HRMS API. The body shape is
// {"error": "...", "details": "..." | {"field": ["msg", ...]}}.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	RequestID  string

	ErrorText   string
	DetailText  string
	FieldErrors []FieldError
	RawBody     string
}

func (e *APIError) Error() string {
	msg := e.ErrorText
	if msg == "" {
		msg = e.DetailText
	}
	if msg == "" && len(e.FieldErrors) > 0 {
		msg = e.FieldErrors[0].Field
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s failed with status code %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// HasDetails reports whether the body carried structured details.
func (e *APIError) HasDetails() bool {
	return e.DetailText != "" || len(e.FieldErrors) > 0
}

// Details returns the field errors as a map, for callers that need lookup by
// field rather than document order.
func (e *APIError) Details() map[string][]string {
	out := make(map[string][]string, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		out[fe.Field] = fe.Messages
	}
	return out
}

// parseAPIError reads an error body. Unparseable bodies are kept raw.
func parseAPIError(resp *http.Response, method, path, requestID string) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		RequestID:  requestID,
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return apiErr
	}
	apiErr.RawBody = string(b)

	var body struct {
		Error   *string         `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return apiErr
	}
	if body.Error != nil {
		apiErr.ErrorText = *body.Error
	}
	apiErr.DetailText, apiErr.FieldErrors = parseDetails(body.Details)

	return apiErr
}

// parseDetails decodes details as either a string or an object of field
// messages. Object keys keep document order so "first field" is stable.
func parseDetails(raw json.RawMessage) (string, []FieldError) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", nil
		}
		return s, nil
	}

	if raw[0] != '{' {
		return "", nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return "", nil
	}

	var fields []FieldError
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", fields
		}
		key, ok := tok.(string)
		if !ok {
			return "", fields
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", fields
		}
		fields = append(fields, FieldError{Field: key, Messages: fieldMessages(value)})
	}

	return "", fields
}

// fieldMessages accepts ["msg", ...] or a bare "msg".
func fieldMessages(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	return nil
}

// KindOf classifies an error returned by Transport.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrNetworkUnreachable) {
		return KindNetworkUnreachable
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return KindServerValidation
		}
	}
	return KindUnknown
}

// Message derives the text shown to the user for an API failure: the error
// field first, then details (string, or first message of the first field),
// then a generic fallback. A request that got no response at all reads as
// NetworkMessage.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNetworkUnreachable) {
		return NetworkMessage
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return FallbackMessage
	}
	if apiErr.ErrorText != "" {
		return apiErr.ErrorText
	}
	if apiErr.DetailText != "" {
		return apiErr.DetailText
	}
	if len(apiErr.FieldErrors) > 0 && len(apiErr.FieldErrors[0].Messages) > 0 {
		return apiErr.FieldErrors[0].Messages[0]
	}
	return FallbackMessage
}
