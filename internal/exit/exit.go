package exit

import "fmt"

// Process exit codes. Orchestration engines branch on these.
const (
	CodeUsage    = 1 // bad input or local validation failure
	CodeAPI      = 2 // remote API call rejected or unreachable
	CodeNotFound = 3 // referenced group, template or proxy missing remotely
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, err error) error {
	return &Error{Code: code, Err: err}
}
