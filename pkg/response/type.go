package response

import "broadcast-srv/pkg/errors"

// Resp is the standard JSON envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors per handler.
type ErrorMapping map[error]*errors.HTTPError
