package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/model"
	"planora/internal/repo"
	"planora/pkg/validator"
)

func (s *service) CreateCustomer(ctx *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse create customer request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if msg := checkCustomerVariant(&req); msg != "" {
		dto.BadResponseError(ctx, dto.FieldIncorrect, msg)
		return
	}

	customer := &model.Customer{
		Type:                        req.Type,
		FirstName:                   req.FirstName,
		LastName:                    req.LastName,
		Name:                        req.Name,
		CompanyIdentificationNumber: req.CompanyIdentificationNumber,
		ContactFirstName:            req.ContactFirstName,
		ContactLastName:             req.ContactLastName,
		ContactEmail:                req.ContactEmail,
		Address:                     req.Address,
		Email:                       req.Email,
		PhoneNumber:                 req.PhoneNumber,
		MediaID:                     req.MediaID,
	}

	id, err := s.repo.CreateCustomer(ctx.Request.Context(), customer)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create customer in DB")
		dto.InternalServerError(ctx)
		return
	}
	customer.ID = id

	s.views.Invalidate(ctx.Request.Context(), cache.EntityCustomer)
	s.log.Info().Int64("customer_id", id).Str("type", string(req.Type)).Msg("customer created")
	dto.SuccessCreatedResponse(ctx, customerDetails(customer))
}

// checkCustomerVariant enforces the fields the tagged union requires for
// each customer kind. The schema tags only cover what both variants share.
func checkCustomerVariant(req *dto.CreateCustomerRequest) string {
	switch req.Type {
	case model.CustomerPhysical:
		if req.FirstName == "" || req.LastName == "" {
			return "Physical customers require firstName and lastName"
		}
	case model.CustomerLegal:
		if req.Name == "" {
			return "Legal customers require a company name"
		}
		if req.CompanyIdentificationNumber == "" {
			return "Legal customers require a company identification number"
		}
	default:
		return "Customer type must be Physical or Legal"
	}
	return ""
}

func (s *service) UpdateCustomer(ctx *ginext.Context) {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid customer ID")
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	customer, err := s.repo.GetCustomerByID(ctx.Request.Context(), customerID)
	if err != nil {
		dto.CustomerNotFoundError(ctx)
		return
	}

	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.CompanyIdentificationNumber != nil {
		customer.CompanyIdentificationNumber = *req.CompanyIdentificationNumber
	}
	if req.ContactFirstName != nil {
		customer.ContactFirstName = *req.ContactFirstName
	}
	if req.ContactLastName != nil {
		customer.ContactLastName = *req.ContactLastName
	}
	if req.ContactEmail != nil {
		customer.ContactEmail = *req.ContactEmail
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.MediaID != nil {
		customer.MediaID = *req.MediaID
	}

	if err := s.repo.UpdateCustomer(ctx.Request.Context(), customer); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			dto.CustomerNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to update customer")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityCustomer)
	s.log.Info().Int64("customer_id", customerID).Msg("customer updated")
	dto.SuccessResponse(ctx, customerDetails(customer))
}

func (s *service) DeleteCustomer(ctx *ginext.Context) {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid customer ID")
		return
	}

	if err := s.repo.DeleteCustomer(ctx.Request.Context(), customerID); err != nil {
		switch {
		case errors.Is(err, repo.ErrCustomerNotFound):
			dto.CustomerNotFoundError(ctx)
		case errors.Is(err, repo.ErrCustomerInUse):
			dto.BadResponseError(ctx, dto.CustomerInUse, "Customer is referenced by existing events")
		default:
			s.log.Error().Err(err).Msg("failed to delete customer")
			dto.InternalServerError(ctx)
		}
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityCustomer)
	s.log.Info().Int64("customer_id", customerID).Msg("customer deleted")
	dto.SuccessResponse(ctx, map[string]any{"id": customerID})
}

func (s *service) GetCustomer(ctx *ginext.Context) {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid customer ID")
		return
	}

	customer, err := s.repo.GetCustomerByID(ctx.Request.Context(), customerID)
	if err != nil {
		dto.CustomerNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, customerDetails(customer))
}

func (s *service) ListCustomers(ctx *ginext.Context) {
	q := parsePageQuery(ctx)

	customers, total, err := s.repo.ListCustomers(ctx.Request.Context(), q)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list customers")
		dto.InternalServerError(ctx)
		return
	}

	items := make([]dto.CustomerListItem, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		items = append(items, dto.CustomerListItem{
			ID:          c.ID,
			Type:        c.Type,
			DisplayName: c.DisplayName(),
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
			CreatedAt:   c.CreatedAt,
		})
	}

	dto.SuccessResponse(ctx, dto.NewPaginated(items, q.Page, q.PageSize, total))
}

func customerDetails(c *model.Customer) dto.CustomerDetails {
	return dto.CustomerDetails{
		ID:                          c.ID,
		Type:                        c.Type,
		FirstName:                   c.FirstName,
		LastName:                    c.LastName,
		Name:                        c.Name,
		CompanyIdentificationNumber: c.CompanyIdentificationNumber,
		ContactFirstName:            c.ContactFirstName,
		ContactLastName:             c.ContactLastName,
		ContactEmail:                c.ContactEmail,
		Address:                     c.Address,
		Email:                       c.Email,
		PhoneNumber:                 c.PhoneNumber,
		MediaID:                     c.MediaID,
		CreatedAt:                   c.CreatedAt,
		UpdatedAt:                   c.UpdatedAt,
	}
}
