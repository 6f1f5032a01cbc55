package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
	"hrportal/internal/utils"
	"hrportal/internal/wizard"
)

// Wizard kinds and their steps, in order.
const (
	WizardSickLeave       = "sick_leave"
	WizardBackgroundCheck = "background_check"
)

var wizardSteps = map[string][]string{
	WizardSickLeave:       {"policy", "eligibility", "entitlement", "review"},
	WizardBackgroundCheck: {"candidate", "package", "consent", "review"},
}

// WizardGateway publishes what the wizards assemble.
type WizardGateway interface {
	PublishSickLeavePolicy(ctx context.Context, p models.SickLeavePolicy) error
	StartBackgroundCheck(ctx context.Context, in models.BackgroundCheckStart) (models.BackgroundCheck, error)
}

type WizardView struct {
	ID     string       `json:"id"`
	Kind   string       `json:"kind"`
	State  wizard.State `json:"state"`
	Result any          `json:"result,omitempty"`
}

type wizardEntry struct {
	id     string
	kind   string
	w      *wizard.Wizard
	mu     sync.Mutex
	result any
	used   time.Time
}

func (e *wizardEntry) view() WizardView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return WizardView{ID: e.id, Kind: e.kind, State: e.w.State(), Result: e.result}
}

// WizardService keeps in-progress wizards by id.
type WizardService struct {
	Gateway WizardGateway

	mu      sync.Mutex
	entries map[string]*wizardEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewWizardService(gw WizardGateway, ttl time.Duration) *WizardService {
	return &WizardService{Gateway: gw, entries: map[string]*wizardEntry{}, ttl: ttl, now: time.Now}
}

// Kinds lists the wizards with their steps.
func (s *WizardService) Kinds() map[string][]string {
	out := make(map[string][]string, len(wizardSteps))
	for k, v := range wizardSteps {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (s *WizardService) Create(requestID, kind string) (WizardView, error) {
	steps, ok := wizardSteps[kind]
	if !ok {
		return WizardView{}, domain.NotFoundError{Resource: "wizard kind", ID: kind}
	}
	e := &wizardEntry{id: uuid.NewString(), kind: kind, used: s.now()}
	w, err := wizard.New(steps, s.publisher(e))
	if err != nil {
		return WizardView{}, domain.InternalError{Msg: "build wizard", Err: err}
	}
	e.w = w

	s.mu.Lock()
	s.entries[e.id] = e
	s.mu.Unlock()
	utils.LogEvent(requestID, "wizard", "create", "wizard started", zap.String("kind", kind), zap.String("wizard_id", e.id))
	return e.view(), nil
}

func (s *WizardService) lookup(id string) (*wizardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "wizard", ID: id}
	}
	e.used = s.now()
	return e, nil
}

func (s *WizardService) Get(id string) (WizardView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return WizardView{}, err
	}
	return e.view(), nil
}

func (s *WizardService) Next(id string) (WizardView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return WizardView{}, err
	}
	if _, err := e.w.Next(); err != nil {
		return WizardView{}, wizardError(err)
	}
	return e.view(), nil
}

func (s *WizardService) Back(id string) (WizardView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return WizardView{}, err
	}
	if _, err := e.w.Back(); err != nil {
		return WizardView{}, wizardError(err)
	}
	return e.view(), nil
}

func (s *WizardService) SetData(id, step string, payload json.RawMessage) (WizardView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return WizardView{}, err
	}
	if err := e.w.SetData(step, payload); err != nil {
		return WizardView{}, wizardError(err)
	}
	return e.view(), nil
}

// Submit validates the assembled payload and publishes it. Validation only
// happens here, never on Next.
func (s *WizardService) Submit(ctx context.Context, requestID, id string) (WizardView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return WizardView{}, err
	}
	if err := e.w.Submit(ctx); err != nil {
		if !errors.Is(err, wizard.ErrCompleted) && !errors.Is(err, wizard.ErrNotLastStep) {
			utils.LogError(requestID, "wizard", "submit", err, zap.String("kind", e.kind), zap.String("wizard_id", e.id))
		}
		return WizardView{}, wizardError(err)
	}
	utils.LogEvent(requestID, "wizard", "submit", "wizard published", zap.String("kind", e.kind), zap.String("wizard_id", e.id))
	return e.view(), nil
}

func (s *WizardService) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Sweep drops wizards idle for longer than the TTL.
func (s *WizardService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if e.used.Before(cutoff) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

func (s *WizardService) publisher(e *wizardEntry) wizard.PublishFunc {
	return func(ctx context.Context, data map[string]json.RawMessage) error {
		var (
			result any
			err    error
		)
		switch e.kind {
		case WizardSickLeave:
			result, err = s.publishSickLeave(ctx, data)
		case WizardBackgroundCheck:
			result, err = s.publishBackgroundCheck(ctx, data)
		}
		if err != nil {
			return err
		}
		e.mu.Lock()
		e.result = result
		e.mu.Unlock()
		return nil
	}
}

func (s *WizardService) publishSickLeave(ctx context.Context, data map[string]json.RawMessage) (any, error) {
	var p models.SickLeavePolicy
	if err := decodeStep(data, "policy", &p); err != nil {
		return nil, err
	}
	if err := decodeStep(data, "eligibility", &p.Eligibility); err != nil {
		return nil, err
	}
	if err := decodeStep(data, "entitlement", &p.Entitlement); err != nil {
		return nil, err
	}
	p.Name = utils.NormalizeSpace(p.Name)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Gateway.PublishSickLeavePolicy(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// The background-check steps each fill part of the same start request.
func (s *WizardService) publishBackgroundCheck(ctx context.Context, data map[string]json.RawMessage) (any, error) {
	var in models.BackgroundCheckStart
	for _, step := range []string{"candidate", "package", "consent"} {
		if err := decodeStep(data, step, &in); err != nil {
			return nil, err
		}
	}
	in.CandidateName = utils.NormalizeSpace(in.CandidateName)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	check, err := s.Gateway.StartBackgroundCheck(ctx, in)
	if err != nil {
		return nil, err
	}
	return check, nil
}

// decodeStep decodes a step payload into out. A step never filled leaves out
// untouched; validation reports what is missing.
func decodeStep(data map[string]json.RawMessage, step string, out any) error {
	raw, ok := data[step]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.ValidationError{Field: step, Msg: "has an unexpected shape", Err: err}
	}
	return nil
}

func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrCompleted):
		return domain.ConflictError{Resource: "wizard", Msg: "already submitted", Err: err}
	case errors.Is(err, wizard.ErrNotLastStep):
		return domain.ConflictError{Resource: "wizard", Msg: "submit is only allowed on the last step", Err: err}
	default:
		return err
	}
}
