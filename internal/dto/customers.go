package dto

import (
	"time"

	"planora/internal/model"
)

type CustomerListItem struct {
	ID          int64              `json:"id"`
	Type        model.CustomerType `json:"type"`
	DisplayName string             `json:"displayName"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type CustomerDetails struct {
	ID   int64              `json:"id"`
	Type model.CustomerType `json:"type"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	Name                        string `json:"name,omitempty"`
	CompanyIdentificationNumber string `json:"companyIdentificationNumber,omitempty"`
	ContactFirstName            string `json:"contactFirstName,omitempty"`
	ContactLastName             string `json:"contactLastName,omitempty"`
	ContactEmail                string `json:"contactEmail,omitempty"`

	Address     string    `json:"address,omitempty"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	MediaID     string    `json:"mediaId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Type model.CustomerType `json:"type" validate:"required"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Name                        string `json:"name"`
	CompanyIdentificationNumber string `json:"companyIdentificationNumber"`
	ContactFirstName            string `json:"contactFirstName"`
	ContactLastName             string `json:"contactLastName"`
	ContactEmail                string `json:"contactEmail"`

	Address     string `json:"address"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	MediaID     string `json:"mediaId"`
}

// UpdateCustomerRequest never carries Type: the customer kind is fixed
// at creation.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`

	Name                        *string `json:"name,omitempty"`
	CompanyIdentificationNumber *string `json:"companyIdentificationNumber,omitempty"`
	ContactFirstName            *string `json:"contactFirstName,omitempty"`
	ContactLastName             *string `json:"contactLastName,omitempty"`
	ContactEmail                *string `json:"contactEmail,omitempty"`

	Address     *string `json:"address,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	MediaID     *string `json:"mediaId,omitempty"`
}
