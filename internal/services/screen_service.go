package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
	"hrportal/internal/table"
	"hrportal/internal/utils"
)

// View is what a list screen renders: one page of rows plus the state that
// produced it and the current selection.
type View struct {
	SessionID   string          `json:"session_id"`
	Screen      string          `json:"screen"`
	State       table.ViewState `json:"state"`
	Rows        any             `json:"rows"`
	PageCount   int             `json:"page_count"`
	Matched     int             `json:"matched"`
	StoreTotal  int             `json:"store_total"`
	Selected    []string        `json:"selected"`
	AllSelected bool            `json:"all_selected"`
	Stale       bool            `json:"stale,omitempty"`
}

// BulkInput is the payload of a bulk action over the current selection.
type BulkInput struct {
	Reason string `json:"reason"`
}

// BulkFunc applies one upstream action to ids and reports the ids it
// completed, even when it stops early with an error.
type BulkFunc func(ctx context.Context, ids []string, in BulkInput) (done []string, err error)

// BulkAction is a bulk action of a screen. Removes marks actions that delete
// the records upstream.
type BulkAction struct {
	Run     BulkFunc
	Removes bool
}

// BulkResult reports how a bulk action went.
type BulkResult struct {
	Action   string   `json:"action"`
	Affected []string `json:"affected"`
	View     View     `json:"view"`
}

// session is the type-erased face of a view session over any record type.
type session interface {
	id() string
	screen() string
	lastUsed() time.Time

	View() (View, error)
	SetCriteria(c table.Criteria) (View, error)
	SetSort(s domain.SortSpec) (View, error)
	SetPage(page, size int) (View, error)
	Toggle(recordID string) (View, error)
	SelectAll() (View, error)
	ClearSelection() (View, error)
	Refresh(ctx context.Context) (View, error)
	FacetOptions(ref models.ReferenceData) []table.FacetOption
	Bulk(ctx context.Context, action string, in BulkInput) (BulkResult, error)
}

type screenDef interface {
	open(id string, clock func() time.Time) session
	actions() []string
}

// Screen binds a configured engine to its record source and bulk actions.
type Screen[T table.Record] struct {
	Engine  *table.Engine[T]
	Source  Source[T]
	Actions map[string]BulkAction
}

func (s *Screen[T]) open(id string, clock func() time.Time) session {
	return &viewSession[T]{
		sid:   id,
		name:  s.Engine.Name(),
		def:   s,
		store: table.NewStore[T](),
		sel:   table.NewSelection(),
		state: s.Engine.InitialState(),
		clock: clock,
		used:  clock(),
	}
}

func (s *Screen[T]) actions() []string {
	out := make([]string, 0, len(s.Actions))
	for name := range s.Actions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ScreenService owns every open view session. It is safe for concurrent use:
// the registry has its own lock and each session serializes its operations.
type ScreenService struct {
	mu        sync.Mutex
	screens   map[string]screenDef
	sessions  map[string]session
	ttl       time.Duration
	reference models.ReferenceData
	now       func() time.Time
}

func NewScreenService(ttl time.Duration, ref models.ReferenceData) *ScreenService {
	return &ScreenService{
		screens:   map[string]screenDef{},
		sessions:  map[string]session{},
		ttl:       ttl,
		reference: ref,
		now:       time.Now,
	}
}

// RegisterScreen adds a list screen. It is a function because methods cannot
// take type parameters.
func RegisterScreen[T table.Record](s *ScreenService, name string, screen *Screen[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[name] = screen
}

// Screens lists registered screen names with their bulk actions.
func (s *ScreenService) Screens() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]string, len(s.screens))
	for name, def := range s.screens {
		out[name] = def.actions()
	}
	return out
}

func (s *ScreenService) Reference() models.ReferenceData { return s.reference }

// Open creates a view session for screen and loads its store.
func (s *ScreenService) Open(ctx context.Context, requestID, screen string) (View, error) {
	s.mu.Lock()
	def, ok := s.screens[screen]
	s.mu.Unlock()
	if !ok {
		return View{}, domain.NotFoundError{Resource: "screen", ID: screen}
	}

	sess := def.open(uuid.NewString(), s.now)
	v, err := sess.Refresh(ctx)
	if err != nil {
		utils.LogError(requestID, "screens", "open", err, zap.String("screen", screen))
		return View{}, err
	}

	s.mu.Lock()
	s.sessions[sess.id()] = sess
	s.mu.Unlock()
	utils.LogEvent(requestID, "screens", "open", "view session opened",
		zap.String("screen", screen), zap.String("session_id", sess.id()), zap.Int("records", v.StoreTotal))
	return v, nil
}

// Close drops a session. Closing an unknown session is not an error.
func (s *ScreenService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *ScreenService) lookup(sessionID string) (session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "view session", ID: sessionID}
	}
	return sess, nil
}

func (s *ScreenService) View(sessionID string) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.View()
}

// SetCriteria replaces the filter criteria and returns to the first page.
func (s *ScreenService) SetCriteria(sessionID string, c table.Criteria) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.SetCriteria(c)
}

func (s *ScreenService) ClearCriteria(sessionID string) (View, error) {
	return s.SetCriteria(sessionID, table.Criteria{})
}

func (s *ScreenService) SetSort(sessionID string, spec domain.SortSpec) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.SetSort(spec)
}

func (s *ScreenService) ClearSort(sessionID string) (View, error) {
	return s.SetSort(sessionID, domain.SortSpec{})
}

func (s *ScreenService) SetPage(sessionID string, page, size int) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.SetPage(page, size)
}

func (s *ScreenService) Toggle(sessionID, recordID string) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.Toggle(recordID)
}

func (s *ScreenService) SelectAll(sessionID string) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.SelectAll()
}

func (s *ScreenService) ClearSelection(sessionID string) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return sess.ClearSelection()
}

// Refresh reloads the store from its source. The selection is cleared; a
// response overtaken by a newer refresh is discarded.
func (s *ScreenService) Refresh(ctx context.Context, requestID, sessionID string) (View, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	v, err := sess.Refresh(ctx)
	if err != nil {
		utils.LogError(requestID, "screens", "refresh", err, zap.String("session_id", sessionID))
		return View{}, err
	}
	if v.Stale {
		utils.LogEvent(requestID, "screens", "refresh", "stale response discarded", zap.String("session_id", sessionID))
	}
	return v, nil
}

func (s *ScreenService) FacetOptions(sessionID string) ([]table.FacetOption, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.FacetOptions(s.reference), nil
}

// Bulk runs a named bulk action over the current selection.
func (s *ScreenService) Bulk(ctx context.Context, requestID, sessionID, action string, in BulkInput) (BulkResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return BulkResult{}, err
	}
	res, err := sess.Bulk(ctx, action, in)
	if err != nil {
		utils.LogError(requestID, "screens", "bulk_"+action, err,
			zap.String("session_id", sessionID), zap.Int("completed", len(res.Affected)))
		return res, err
	}
	utils.LogEvent(requestID, "screens", "bulk_"+action, "bulk action completed",
		zap.String("session_id", sessionID), zap.Int("affected", len(res.Affected)))
	return res, nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
func (s *ScreenService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.lastUsed().Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper sweeps expired sessions until ctx is done.
func (s *ScreenService) RunSweeper(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				zap.L().Info("expired view sessions swept", zap.Int("count", n))
			}
		}
	}
}

func unknownAction(screen, action string) error {
	return domain.NotFoundError{Resource: "bulk action", ID: fmt.Sprintf("%s/%s", screen, action)}
}
