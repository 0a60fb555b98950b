package cache

import (
	"testing"

	"planora/pkg/routes"
)

func TestPathsForDeduplicates(t *testing.T) {
	// event and customer both invalidate the admin event pages; the
	// union must carry each path once
	paths := PathsFor(EntityEvent, EntityCustomer)

	seen := make(map[string]int)
	for _, p := range paths {
		seen[p]++
	}
	for p, n := range seen {
		if n > 1 {
			t.Errorf("path %s appears %d times", p, n)
		}
	}
	if seen[routes.AdminEvents] != 1 {
		t.Errorf("expected %s exactly once", routes.AdminEvents)
	}
	if seen[routes.AdminCustomers] != 1 {
		t.Errorf("expected %s exactly once", routes.AdminCustomers)
	}
}

func TestPathsForDeclarationOrder(t *testing.T) {
	paths := PathsFor(EntityOrganizer)
	want := []string{routes.AdminOrganizers, routes.AdminEventDetail, routes.OrganizerDashboard}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestPathsForUnknownEntity(t *testing.T) {
	if paths := PathsFor(Entity("nonsense")); len(paths) != 0 {
		t.Errorf("unknown entity yielded %v", paths)
	}
}

func TestEveryEntityHasDependents(t *testing.T) {
	for _, e := range []Entity{EntityEvent, EntityCustomer, EntityOrganizer, EntityEventType, EntityMedia} {
		if len(PathsFor(e)) == 0 {
			t.Errorf("entity %s has no dependent views", e)
		}
	}
}
