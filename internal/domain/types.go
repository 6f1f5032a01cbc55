package domain

import "strings"

// Direction of a single-column sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" in any case; anything else is asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortSpec is the active (field, direction) pair. A zero SortSpec means no sort.
type SortSpec struct {
	Field     string    `json:"field" yaml:"field"`
	Direction Direction `json:"direction" yaml:"direction"`
}

func (s SortSpec) IsZero() bool { return strings.TrimSpace(s.Field) == "" }

// PageEnvelope is the paginated list shape used by the HR backend and by our own list endpoints.
// CurrentPage is 1-based on the wire.
type PageEnvelope[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// ListParams are the paging/sort query parameters forwarded to paged endpoints.
type ListParams struct {
	Page      int
	PerPage   int
	Sort      string
	Direction Direction
}

// ActionStatus discriminates ActionResult.
type ActionStatus string

const (
	ActionOK          ActionStatus = "ok"
	ActionAlreadyDone ActionStatus = "already_done"
	ActionError       ActionStatus = "error"
)

// ActionResult replaces string sentinels ("already_started", "already_ended") returned inside
// success-shaped bodies. Data is set for ok, and for already_done once the current state has been
// refetched.
type ActionResult[T any] struct {
	Status  ActionStatus `json:"status"`
	Data    *T           `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

func OK[T any](v T) ActionResult[T] { return ActionResult[T]{Status: ActionOK, Data: &v} }

func AlreadyDone[T any](notice string) ActionResult[T] {
	return ActionResult[T]{Status: ActionAlreadyDone, Message: notice}
}

func Failed[T any](message string) ActionResult[T] {
	if strings.TrimSpace(message) == "" {
		message = GenericErrorMessage
	}
	return ActionResult[T]{Status: ActionError, Message: message}
}
