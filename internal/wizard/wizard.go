// Package wizard implements the linear multi-step forms (sick-leave setup,
// background-check start). Steps carry raw JSON payloads; nothing is
// validated until the final submit.
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hrportal/internal/domain"
)

var (
	ErrNotLastStep = errors.New("wizard: submit is only allowed on the last step")
	ErrCompleted   = errors.New("wizard: already submitted")
)

// PublishFunc receives every step payload, keyed by step name, on submit.
type PublishFunc func(ctx context.Context, data map[string]json.RawMessage) error

// Wizard is safe for concurrent use.
type Wizard struct {
	mu        sync.Mutex
	steps     []string
	current   int
	data      map[string]json.RawMessage
	completed bool
	publish   PublishFunc
}

// New builds a wizard positioned on step 1.
func New(steps []string, publish PublishFunc) (*Wizard, error) {
	if len(steps) == 0 {
		return nil, errors.New("wizard: at least one step is required")
	}
	seen := map[string]struct{}{}
	for _, s := range steps {
		if _, dup := seen[s]; dup || s == "" {
			return nil, fmt.Errorf("wizard: invalid or duplicate step %q", s)
		}
		seen[s] = struct{}{}
	}
	return &Wizard{
		steps:   append([]string(nil), steps...),
		current: 1,
		data:    map[string]json.RawMessage{},
		publish: publish,
	}, nil
}

// State is a snapshot for rendering.
type State struct {
	Steps     []string `json:"steps"`
	Current   int      `json:"current"`
	StepName  string   `json:"step_name"`
	IsFirst   bool     `json:"is_first"`
	IsLast    bool     `json:"is_last"`
	Completed bool     `json:"completed"`
	Filled    []string `json:"filled"`
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Wizard) stateLocked() State {
	filled := make([]string, 0, len(w.data))
	for _, s := range w.steps {
		if _, ok := w.data[s]; ok {
			filled = append(filled, s)
		}
	}
	return State{
		Steps:     append([]string(nil), w.steps...),
		Current:   w.current,
		StepName:  w.steps[w.current-1],
		IsFirst:   w.current == 1,
		IsLast:    w.current == len(w.steps),
		Completed: w.completed,
		Filled:    filled,
	}
}

// Next advances one step. It never blocks on the current step's content and
// stays put on the last step.
func (w *Wizard) Next() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return w.stateLocked(), ErrCompleted
	}
	if w.current < len(w.steps) {
		w.current++
	}
	return w.stateLocked(), nil
}

// Back goes one step back while above step 1.
func (w *Wizard) Back() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return w.stateLocked(), ErrCompleted
	}
	if w.current > 1 {
		w.current--
	}
	return w.stateLocked(), nil
}

// SetData stores the payload of the named step, replacing any earlier one.
func (w *Wizard) SetData(step string, payload json.RawMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return ErrCompleted
	}
	if !w.hasStep(step) {
		return domain.ValidationError{Field: "step", Msg: fmt.Sprintf("unknown step %q", step)}
	}
	if !json.Valid(payload) {
		return domain.ValidationError{Field: step, Msg: "payload is not valid JSON"}
	}
	w.data[step] = append(json.RawMessage(nil), payload...)
	return nil
}

func (w *Wizard) Data(step string) (json.RawMessage, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.data[step]
	return d, ok
}

// Submit runs the publish side effect from the last step. A failed publish
// leaves the wizard open so the user can fix and resubmit.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return ErrCompleted
	}
	if w.current != len(w.steps) {
		return ErrNotLastStep
	}
	data := make(map[string]json.RawMessage, len(w.data))
	for k, v := range w.data {
		data[k] = v
	}
	if w.publish != nil {
		if err := w.publish(ctx, data); err != nil {
			return err
		}
	}
	w.completed = true
	return nil
}

func (w *Wizard) hasStep(step string) bool {
	for _, s := range w.steps {
		if s == step {
			return true
		}
	}
	return false
}
