package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
	"hrportal/internal/table"
)

// viewSession is one user's view over one screen: its own store snapshot,
// criteria, sort, page window and selection.
type viewSession[T table.Record] struct {
	mu    sync.Mutex
	sid   string
	name  string
	def   *Screen[T]
	store *table.Store[T]
	sel   *table.Selection
	state table.ViewState
	// seq is the token of the latest store load; only that load may apply.
	seq   uint64
	clock func() time.Time
	used  time.Time
}

func (v *viewSession[T]) id() string     { return v.sid }
func (v *viewSession[T]) screen() string { return v.name }

func (v *viewSession[T]) lastUsed() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.used
}

func (v *viewSession[T]) touchLocked() { v.used = v.clock() }

// renderLocked runs the engine and writes the clamped page back into state.
func (v *viewSession[T]) renderLocked() (View, error) {
	res, err := v.def.Engine.Apply(v.store.Records(), v.state)
	if err != nil {
		return View{}, err
	}
	v.state.Page = res.Page
	v.state.PageSize = res.PageSize
	v.touchLocked()

	selected := v.sel.SelectedIDs()
	return View{
		SessionID:   v.sid,
		Screen:      v.name,
		State:       v.state,
		Rows:        res.Rows,
		PageCount:   res.PageCount,
		Matched:     res.Matched,
		StoreTotal:  res.StoreTotal,
		Selected:    selected,
		AllSelected: v.store.Len() > 0 && len(selected) == v.store.Len(),
	}, nil
}

func (v *viewSession[T]) View() (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderLocked()
}

func (v *viewSession[T]) SetCriteria(c table.Criteria) (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := v.def.Engine.Compile(c); err != nil {
		return View{}, err
	}
	v.state.Criteria = c
	v.state.Page = 0
	return v.renderLocked()
}

func (v *viewSession[T]) SetSort(s domain.SortSpec) (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !s.IsZero() {
		s.Direction = domain.ParseDirection(string(s.Direction))
	}
	if err := v.def.Engine.CheckSort(s); err != nil {
		return View{}, err
	}
	v.state.Sort = s
	return v.renderLocked()
}

func (v *viewSession[T]) SetPage(page, size int) (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if size > table.MaxPageSize {
		return View{}, domain.ValidationError{Field: "page_size", Msg: fmt.Sprintf("must be at most %d", table.MaxPageSize)}
	}
	if size > 0 {
		v.state.PageSize = size
	}
	v.state.Page = max(0, page)
	return v.renderLocked()
}

// Toggle flips one record. Only records present in the store can be selected.
func (v *viewSession[T]) Toggle(recordID string) (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.store.Has(recordID) && !v.sel.IsSelected(recordID) {
		return View{}, domain.NotFoundError{Resource: "record", ID: recordID}
	}
	v.sel.Toggle(recordID)
	return v.renderLocked()
}

// SelectAll marks every record in the store, filtered out or not.
func (v *viewSession[T]) SelectAll() (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.SelectAll(v.store.IDs())
	return v.renderLocked()
}

func (v *viewSession[T]) ClearSelection() (View, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.Clear()
	return v.renderLocked()
}

// Refresh fetches outside the lock so other operations on the session keep
// going; the result only applies if no newer load started meanwhile.
func (v *viewSession[T]) Refresh(ctx context.Context) (View, error) {
	v.mu.Lock()
	v.seq++
	token := v.seq
	v.mu.Unlock()

	records, err := v.def.Source.Fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq {
		view, rerr := v.renderLocked()
		view.Stale = true
		return view, rerr
	}
	if err != nil {
		return View{}, err
	}
	if err := v.store.Replace(records); err != nil {
		return View{}, err
	}
	v.sel.Clear()
	return v.renderLocked()
}

func (v *viewSession[T]) FacetOptions(ref models.ReferenceData) []table.FacetOption {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touchLocked()
	return v.def.Engine.FacetOptions(v.store.Records(), ref.Values)
}

// Bulk runs action over the selection. Records a removing action completed
// leave the store; any other action changed them upstream, so the store is
// reloaded under a fresh token instead. Ids that completed are unselected, and
// a fully successful run clears the selection.
func (v *viewSession[T]) Bulk(ctx context.Context, action string, in BulkInput) (BulkResult, error) {
	act, ok := v.def.Actions[action]
	if !ok {
		return BulkResult{}, unknownAction(v.name, action)
	}

	v.mu.Lock()
	ids := v.sel.SelectedIDs()
	v.mu.Unlock()
	if len(ids) == 0 {
		return BulkResult{}, domain.ValidationError{Field: "selection", Msg: "select at least one record"}
	}

	done, runErr := act.Run(ctx, ids, in)
	if done == nil {
		done = []string{}
	}
	if !act.Removes && len(done) > 0 {
		if _, err := v.Refresh(ctx); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if act.Removes && len(done) > 0 {
		// an earlier refresh still in flight may carry the removed ids
		v.seq++
		v.store.Remove(done...)
	}
	v.sel.Clear()
	if runErr != nil {
		v.sel.SelectAll(pending(ids, done, v.store.Has))
	}
	view, err := v.renderLocked()
	if err != nil {
		return BulkResult{}, err
	}
	return BulkResult{Action: action, Affected: done, View: view}, runErr
}

// pending is ids minus done, limited to records still present.
func pending(ids, done []string, present func(string) bool) []string {
	skip := make(map[string]struct{}, len(done))
	for _, id := range done {
		skip[id] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := skip[id]; !ok && present(id) {
			out = append(out, id)
		}
	}
	return out
}
