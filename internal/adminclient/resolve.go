package adminclient

import (
	"fmt"

	"planora/internal/dto"
	"planora/internal/model"
)

// resolveEventType matches an event's type against the fetched type
// collection: by id first, then by label. The label fallback is a
// contract, not a convenience — detail records written before the key
// migration carry a stale or missing eventTypeId but a valid label.
// Resolution fails only when neither key matches.
func resolveEventType(types []model.EventType, id int64, label string) (*model.EventType, error) {
	for i := range types {
		if types[i].ID == id {
			return &types[i], nil
		}
	}
	if label != "" {
		for i := range types {
			if types[i].Label == label {
				return &types[i], nil
			}
		}
	}
	return nil, fmt.Errorf("type d'événement introuvable (id=%d, label=%q)", id, label)
}

// resolveCustomer finds the owning customer in the fetched collection.
// A missing owner is fatal for the page: there is no placeholder render.
func resolveCustomer(customers []dto.CustomerListItem, id int64) (*dto.CustomerListItem, error) {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, fmt.Errorf("client introuvable (id=%d)", id)
}

// resolveOrganizers keeps the organizers referenced by the event, in
// collection order. Unknown ids are skipped: organizer references are
// a multi-select, not an ownership link.
func resolveOrganizers(organizers []dto.OrganizerResponse, ids []int64) []dto.OrganizerResponse {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var matched []dto.OrganizerResponse
	for _, o := range organizers {
		if wanted[o.ID] {
			matched = append(matched, o)
		}
	}
	return matched
}
