package app

import "fmt"

// Kind names the collection a Change touched.
type Kind string

const (
	KindEvent Kind = "event"
	KindGroup Kind = "group"
)

// Action enumerates supported change actions.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change is delivered to subscribers after every mutation. ID is the event
// ID or the group name; it is empty for bulk updates.
type Change struct {
	Kind   Kind
	Action Action
	ID     string
}

// Describe renders the change for logs.
func (c Change) Describe() string {
	return fmt.Sprintf(`kind:%q action:%q id:%q`, c.Kind, c.Action, c.ID)
}
