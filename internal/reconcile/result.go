package reconcile

// Action taken by a reconciliation run.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionUnchanged Action = "unchanged"
)

// Result is the structured outcome handed back to the caller: what was done
// to which host, and the individual differences that drove it.
type Result struct {
	Host    string   `json:"host" yaml:"host"`
	Action  Action   `json:"action" yaml:"action"`
	Changed bool     `json:"changed" yaml:"changed"`
	Check   bool     `json:"check,omitempty" yaml:"check,omitempty"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
}

func unchanged(host, message string) Result {
	return Result{Host: host, Action: ActionUnchanged, Message: message}
}
