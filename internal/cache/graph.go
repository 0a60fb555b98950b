package cache

import "planora/pkg/routes"

// Entity identifies a cached-data dependency in the invalidation graph.
type Entity string

const (
	EntityEvent     Entity = "event"
	EntityCustomer  Entity = "customer"
	EntityOrganizer Entity = "organizer"
	EntityEventType Entity = "eventType"
	EntityMedia     Entity = "media"
)

// dependents declares, per entity, every view path whose rendered state
// reads that entity. Mutations invalidate through this table instead of
// hardcoding path lists at each call site, so a new page only needs an
// edge here.
var dependents = map[Entity][]string{
	EntityEvent: {
		routes.AdminDashboard,
		routes.AdminEvents,
		routes.AdminEventDetail,
		routes.OrganizerDashboard,
		routes.OrganizerEvents,
		routes.OperatorAdmission,
		routes.ParticipantEvents,
	},
	EntityCustomer: {
		routes.AdminDashboard,
		routes.AdminCustomers,
		routes.AdminCustomerDetail,
		// event rows denormalize the customer name
		routes.AdminEvents,
		routes.AdminEventDetail,
	},
	EntityOrganizer: {
		routes.AdminOrganizers,
		routes.AdminEventDetail,
		routes.OrganizerDashboard,
	},
	EntityEventType: {
		routes.AdminEventTypes,
		routes.AdminEvents,
		routes.AdminEventDetail,
	},
	EntityMedia: {
		routes.AdminGallery,
		routes.AdminEventDetail,
	},
}

// PathsFor returns the deduplicated set of view paths depending on any
// of the given entities, in declaration order.
func PathsFor(entities ...Entity) []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, e := range entities {
		for _, p := range dependents[e] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}
