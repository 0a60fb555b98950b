package adminclient

import (
	"testing"

	"planora/internal/dto"
	"planora/internal/model"
)

var testEventTypes = []model.EventType{
	{ID: 1, Label: "Conférence"},
	{ID: 2, Label: "Gala"},
	{ID: 3, Label: "Atelier"},
}

func TestResolveEventTypeByID(t *testing.T) {
	et, err := resolveEventType(testEventTypes, 2, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if et.Label != "Gala" {
		t.Errorf("resolved %q, want Gala", et.Label)
	}
}

func TestResolveEventTypeLabelFallback(t *testing.T) {
	// legacy records carry a stale id but a valid label
	et, err := resolveEventType(testEventTypes, 999, "Atelier")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if et.ID != 3 {
		t.Errorf("resolved id %d, want 3", et.ID)
	}
}

func TestResolveEventTypeFailsOnlyWhenBothMiss(t *testing.T) {
	if _, err := resolveEventType(testEventTypes, 999, "Inconnu"); err == nil {
		t.Error("expected resolution failure")
	}
	if _, err := resolveEventType(testEventTypes, 999, ""); err == nil {
		t.Error("expected resolution failure with empty label")
	}
}

func TestResolveCustomerMissingIsFatal(t *testing.T) {
	customers := []dto.CustomerListItem{{ID: 7, DisplayName: "Acme SARL"}}

	got, err := resolveCustomer(customers, 7)
	if err != nil || got.DisplayName != "Acme SARL" {
		t.Fatalf("resolve: %v, %v", got, err)
	}

	if _, err := resolveCustomer(customers, 8); err == nil {
		t.Error("missing owner must fail the page, not render a placeholder")
	}
}

func TestResolveOrganizersSkipsUnknownIDs(t *testing.T) {
	organizers := []dto.OrganizerResponse{
		{ID: 1, LastName: "Martin"},
		{ID: 2, LastName: "Bernard"},
		{ID: 3, LastName: "Petit"},
	}

	matched := resolveOrganizers(organizers, []int64{3, 99, 1})
	if len(matched) != 2 {
		t.Fatalf("matched %d organizers, want 2", len(matched))
	}
	// collection order, not reference order
	if matched[0].ID != 1 || matched[1].ID != 3 {
		t.Errorf("matched ids %d,%d", matched[0].ID, matched[1].ID)
	}
}
