package zabbix

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a named object does not exist on the server.
var ErrNotFound = errors.New("not found")

// NotFoundError identifies the missing object for the caller's message.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// APIError is a JSON-RPC error object returned by the Zabbix API.
type APIError struct {
	Method  string
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *APIError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("zabbix %s failed: %s %s (code %d)", e.Method, e.Message, e.Data, e.Code)
	}
	return fmt.Sprintf("zabbix %s failed: %s (code %d)", e.Method, e.Message, e.Code)
}
