package ssosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is any failure reported by the service.
type APIError struct {
	// StatusCode is the HTTP status. Route handler failures arrive as 200.
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sso: %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse understands the guard's {"error"} body, the handlers'
// {"success":false,"error"} body and plain text.
func parseErrorResponse(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var je ErrorResponse
	if json.Unmarshal(body, &je) == nil && je.Error != "" {
		apiErr.Message = je.Error
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// handlerFailure reports a 200 response that carries {"success":false}.
func handlerFailure(resp *http.Response, body []byte) *APIError {
	var he HandlerErrorResponse
	raw := map[string]json.RawMessage{}
	if json.Unmarshal(body, &raw) != nil {
		return nil
	}
	if _, ok := raw["success"]; !ok {
		return nil
	}
	if json.Unmarshal(body, &he) != nil || he.Success {
		return nil
	}
	return &APIError{StatusCode: resp.StatusCode, Message: he.Error}
}
