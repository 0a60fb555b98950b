package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/wb-go/wbf/zlog"

	"planora/internal/cache"
	"planora/internal/model"
	"planora/internal/repo"
)

func init() {
	zlog.Init()
}

type fakePhaseRepo struct {
	repo.Repository

	status  model.EventStatus
	changed bool
	err     error

	gotEventID int64
	gotPhase   string
}

func (f *fakePhaseRepo) AdvanceEventPhase(ctx context.Context, eventID int64, phase string) (model.EventStatus, bool, error) {
	f.gotEventID = eventID
	f.gotPhase = phase
	return f.status, f.changed, f.err
}

type fakeInvalidator struct {
	entities []cache.Entity
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, entities ...cache.Entity) {
	f.entities = append(f.entities, entities...)
}

func TestHandleAdvancesPhaseAndInvalidates(t *testing.T) {
	r := &fakePhaseRepo{status: model.StatusInProgress, changed: true}
	inv := &fakeInvalidator{}
	w := NewPhaseWorker(nil, r, inv)

	err := w.Handle(context.Background(), []byte(`{"event_id":12,"phase":"start"}`))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if r.gotEventID != 12 || r.gotPhase != "start" {
		t.Errorf("advanced event %d phase %q", r.gotEventID, r.gotPhase)
	}
	if len(inv.entities) != 1 || inv.entities[0] != cache.EntityEvent {
		t.Errorf("invalidated %v", inv.entities)
	}
}

func TestHandleNoEffectSkipsInvalidation(t *testing.T) {
	// suspended or already-past events acknowledge without transition
	r := &fakePhaseRepo{status: model.StatusSuspended, changed: false}
	inv := &fakeInvalidator{}
	w := NewPhaseWorker(nil, r, inv)

	if err := w.Handle(context.Background(), []byte(`{"event_id":12,"phase":"end"}`)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(inv.entities) != 0 {
		t.Errorf("invalidated %v for a no-op message", inv.entities)
	}
}

func TestHandleDropsMessageForDeletedEvent(t *testing.T) {
	r := &fakePhaseRepo{err: repo.ErrEventNotFound}
	w := NewPhaseWorker(nil, r, &fakeInvalidator{})

	if err := w.Handle(context.Background(), []byte(`{"event_id":404,"phase":"start"}`)); err != nil {
		t.Errorf("message for a deleted event must be acked, got %v", err)
	}
}

func TestHandleReturnsTransientErrors(t *testing.T) {
	r := &fakePhaseRepo{err: errors.New("connection reset")}
	w := NewPhaseWorker(nil, r, &fakeInvalidator{})

	if err := w.Handle(context.Background(), []byte(`{"event_id":12,"phase":"start"}`)); err == nil {
		t.Error("transient repo failure must surface for redelivery")
	}
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	w := NewPhaseWorker(nil, &fakePhaseRepo{}, &fakeInvalidator{})

	if err := w.Handle(context.Background(), []byte(`not json`)); err == nil {
		t.Error("malformed body accepted")
	}
}
