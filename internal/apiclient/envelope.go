package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = json.RawMessage("null")

// unwrap returns data when body is an object carrying both "success" and
// "data"; any other JSON value is returned as is. Some endpoints answer
// without the envelope.
func unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return jsonNull, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("decode response: invalid JSON")
	}
	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	_, hasSuccess := env["success"]
	data, hasData := env["data"]
	if hasSuccess && hasData {
		return data, nil
	}
	return json.RawMessage(trimmed), nil
}

// errorMessage pulls "message" or "error" out of an error body, falling
// back to a generic text.
func errorMessage(body []byte, status int) string {
	var parsed struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if s, ok := parsed.Message.(string); ok && s != "" {
			return s
		}
		if s, ok := parsed.Error.(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
