package adminclient

import (
	"context"
	"fmt"
	"net/http"

	"planora/internal/cache"
)

// Result is the normalized outcome every action returns. Actions never
// hand an error back to the caller: failures are caught and translated,
// the caller only checks OK. This is deliberately asymmetric with the
// services, which do return errors.
type Result struct {
	OK  bool
	Err string
}

func success() Result {
	return Result{OK: true}
}

func failure(err error) Result {
	return Result{Err: err.Error()}
}

// Invalidator receives the view paths whose rendered state an action
// made stale. Paths come from the declared dependency graph, never from
// per-action lists.
type Invalidator interface {
	InvalidatePaths(paths []string)
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func(paths []string)

func (f InvalidatorFunc) InvalidatePaths(paths []string) { f(paths) }

// actionCall performs the single HTTP call an action wraps and reports
// staleness on success.
func actionCall(ctx context.Context, c *Client, inv Invalidator, method, path string, payload any, entities ...cache.Entity) Result {
	if err := c.send(ctx, method, path, payload, nil); err != nil {
		return failure(err)
	}
	if inv != nil {
		inv.InvalidatePaths(cache.PathsFor(entities...))
	}
	return success()
}

type EventActions struct {
	c   *Client
	inv Invalidator
}

func NewEventActions(c *Client, inv Invalidator) *EventActions {
	return &EventActions{c: c, inv: inv}
}

// Payloads are maps so an omitted field stays omitted on the wire; the
// form controllers rely on this for changed-field updates.
func (a *EventActions) Create(ctx context.Context, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPost, "/v1/events", payload, cache.EntityEvent)
}

func (a *EventActions) Update(ctx context.Context, id int64, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/events/%d", id), payload, cache.EntityEvent)
}

func (a *EventActions) Delete(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodDelete, fmt.Sprintf("/v1/events/%d", id), nil, cache.EntityEvent)
}

// Suspend fires regardless of the advisory CanSuspend guard: the guard
// gates what the UI offers, not what the boundary does.
func (a *EventActions) Suspend(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/events/%d/suspend", id), nil, cache.EntityEvent)
}

func (a *EventActions) Unsuspend(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/events/%d/unsuspend", id), nil, cache.EntityEvent)
}

type CustomerActions struct {
	c   *Client
	inv Invalidator
}

func NewCustomerActions(c *Client, inv Invalidator) *CustomerActions {
	return &CustomerActions{c: c, inv: inv}
}

func (a *CustomerActions) Create(ctx context.Context, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPost, "/v1/customers", payload, cache.EntityCustomer)
}

func (a *CustomerActions) Update(ctx context.Context, id int64, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/customers/%d", id), payload, cache.EntityCustomer)
}

func (a *CustomerActions) Delete(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodDelete, fmt.Sprintf("/v1/customers/%d", id), nil, cache.EntityCustomer)
}

type OrganizerActions struct {
	c   *Client
	inv Invalidator
}

func NewOrganizerActions(c *Client, inv Invalidator) *OrganizerActions {
	return &OrganizerActions{c: c, inv: inv}
}

func (a *OrganizerActions) Create(ctx context.Context, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPost, "/v1/organizers", payload, cache.EntityOrganizer)
}

func (a *OrganizerActions) Update(ctx context.Context, id int64, payload map[string]any) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/organizers/%d", id), payload, cache.EntityOrganizer)
}

func (a *OrganizerActions) Delete(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodDelete, fmt.Sprintf("/v1/organizers/%d", id), nil, cache.EntityOrganizer)
}

func (a *OrganizerActions) Suspend(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/organizers/%d/suspend", id), nil, cache.EntityOrganizer)
}

func (a *OrganizerActions) Unsuspend(ctx context.Context, id int64) Result {
	return actionCall(ctx, a.c, a.inv, http.MethodPut, fmt.Sprintf("/v1/organizers/%d/unsuspend", id), nil, cache.EntityOrganizer)
}
