package adminclient

import (
	"context"
	"fmt"

	"planora/internal/dto"
	"planora/internal/model"
)

type CustomerService struct {
	c *Client
}

func NewCustomerService(c *Client) *CustomerService {
	return &CustomerService{c: c}
}

func (s *CustomerService) List(ctx context.Context, opts ListOptions) (*Page[dto.CustomerListItem], error) {
	var page Page[dto.CustomerListItem]
	if err := s.c.get(ctx, "/v1/customers", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*dto.CustomerDetails, error) {
	var details dto.CustomerDetails
	if err := s.c.get(ctx, fmt.Sprintf("/v1/customers/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *CustomerService) TypeLabel(t model.CustomerType) string {
	switch t {
	case model.CustomerPhysical:
		return "Personne physique"
	case model.CustomerLegal:
		return "Personne morale"
	}
	return string(t)
}

type OrganizerService struct {
	c *Client
}

func NewOrganizerService(c *Client) *OrganizerService {
	return &OrganizerService{c: c}
}

func (s *OrganizerService) List(ctx context.Context, opts ListOptions) (*Page[dto.OrganizerResponse], error) {
	var page Page[dto.OrganizerResponse]
	if err := s.c.get(ctx, "/v1/organizers", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *OrganizerService) Get(ctx context.Context, id int64) (*dto.OrganizerResponse, error) {
	var details dto.OrganizerResponse
	if err := s.c.get(ctx, fmt.Sprintf("/v1/organizers/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *OrganizerService) CanSuspend(o *dto.OrganizerResponse) bool {
	return o.Status == model.OrganizerActive
}

func (s *OrganizerService) CanUnsuspend(o *dto.OrganizerResponse) bool {
	return o.Status == model.OrganizerSuspended
}

type EventTypeService struct {
	c *Client
}

func NewEventTypeService(c *Client) *EventTypeService {
	return &EventTypeService{c: c}
}

func (s *EventTypeService) List(ctx context.Context) ([]model.EventType, error) {
	var types []model.EventType
	if err := s.c.get(ctx, "/v1/event-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}
