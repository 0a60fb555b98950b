package adminclient

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"planora/internal/dto"
	"planora/internal/model"
)

// LoadState is the page-level state machine: idle → loading →
// (success | error), re-entering loading on retry or parameter change.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateSuccess
	StateError
)

// EventListView owns the load/error/data state of the event table.
type EventListView struct {
	svc *EventService

	mu    sync.Mutex
	gen   int
	state LoadState
	opts  ListOptions
	page  *Page[dto.EventListItem]
	err   error
}

func NewEventListView(svc *EventService) *EventListView {
	return &EventListView{svc: svc, state: StateIdle}
}

// Load fetches one page. A Load that was superseded by a newer one (the
// page navigated away or re-loaded) discards its outcome instead of
// clobbering fresher state.
func (v *EventListView) Load(ctx context.Context, opts ListOptions) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.state = StateLoading
	v.opts = opts
	v.mu.Unlock()

	page, err := v.svc.List(ctx, opts)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	if err != nil {
		v.state = StateError
		v.err = err
		return
	}
	v.state = StateSuccess
	v.page = page
	v.err = nil
}

// Retry re-invokes the same load.
func (v *EventListView) Retry(ctx context.Context) {
	v.mu.Lock()
	opts := v.opts
	v.mu.Unlock()
	v.Load(ctx, opts)
}

func (v *EventListView) State() LoadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *EventListView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Rows returns the current page's items: exactly what the server sent,
// even when shorter than the page size.
func (v *EventListView) Rows() []dto.EventListItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page == nil {
		return nil
	}
	return v.page.Items
}

// TotalLabel reports the envelope's total, not the row count.
func (v *EventListView) TotalLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page == nil {
		return v.svc.TotalLabel(0)
	}
	return v.svc.TotalLabel(v.page.TotalItems)
}

// EventEditData is the resolved form-ready state of the edit page:
// the detail record reconciled with the reference collections.
type EventEditData struct {
	Form       EventForm
	Customer   dto.CustomerListItem
	Organizers []dto.OrganizerResponse
	EventType  model.EventType

	// reference collections for the page's selects
	Customers     []dto.CustomerListItem
	AllOrganizers []dto.OrganizerResponse
	EventTypes    []model.EventType
}

// EventEditView loads an event's detail record plus every reference
// collection, then resolves the foreign keys client-side.
type EventEditView struct {
	events     *EventService
	customers  *CustomerService
	organizers *OrganizerService
	types      *EventTypeService

	mu    sync.Mutex
	gen   int
	state LoadState
	id    int64
	data  *EventEditData
	err   error
}

func NewEventEditView(events *EventService, customers *CustomerService, organizers *OrganizerService, types *EventTypeService) *EventEditView {
	return &EventEditView{
		events:     events,
		customers:  customers,
		organizers: organizers,
		types:      types,
		state:      StateIdle,
	}
}

// Load fetches the detail record and the three reference collections in
// parallel; any single failure fails the whole resolution, and a
// missing required reference is treated the same as a fetch error.
func (v *EventEditView) Load(ctx context.Context, id int64) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.state = StateLoading
	v.id = id
	v.mu.Unlock()

	data, err := v.fetchAndResolve(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	if err != nil {
		v.state = StateError
		v.err = err
		return
	}
	v.state = StateSuccess
	v.data = data
	v.err = nil
}

func (v *EventEditView) fetchAndResolve(ctx context.Context, id int64) (*EventEditData, error) {
	var (
		details       *dto.EventDetails
		customerPage  *Page[dto.CustomerListItem]
		organizerPage *Page[dto.OrganizerResponse]
		eventTypes    []model.EventType
	)

	refs := ListOptions{Page: 1, PageSize: referencePageSize}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		details, err = v.events.Get(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		customerPage, err = v.customers.List(gctx, refs)
		return err
	})
	g.Go(func() (err error) {
		organizerPage, err = v.organizers.List(gctx, refs)
		return err
	})
	g.Go(func() (err error) {
		eventTypes, err = v.types.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	customer, err := resolveCustomer(customerPage.Items, details.CustomerID)
	if err != nil {
		return nil, err
	}
	eventType, err := resolveEventType(eventTypes, details.EventTypeID, details.EventType)
	if err != nil {
		return nil, err
	}
	matched := resolveOrganizers(organizerPage.Items, details.OrganizerIDs)

	return &EventEditData{
		Form:          EventFormFromDetails(details, eventType.ID),
		Customer:      *customer,
		Organizers:    matched,
		EventType:     *eventType,
		Customers:     customerPage.Items,
		AllOrganizers: organizerPage.Items,
		EventTypes:    eventTypes,
	}, nil
}

func (v *EventEditView) Retry(ctx context.Context) {
	v.mu.Lock()
	id := v.id
	v.mu.Unlock()
	v.Load(ctx, id)
}

func (v *EventEditView) State() LoadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *EventEditView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *EventEditView) Data() *EventEditData {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data
}
