package dto

import (
	"github.com/wb-go/wbf/ginext"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	EventNotFound     = "EVENT_NOT_FOUND"
	CustomerNotFound  = "CUSTOMER_NOT_FOUND"
	OrganizerNotFound = "ORGANIZER_NOT_FOUND"
	EventTypeNotFound = "EVENT_TYPE_NOT_FOUND"
	MediaNotFound     = "MEDIA_NOT_FOUND"
	CustomerInUse     = "CUSTOMER_IN_USE"
)

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func NotFoundError(c *ginext.Context, code, desc string) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

func EventNotFoundError(c *ginext.Context) {
	NotFoundError(c, EventNotFound, "Event not found")
}

func CustomerNotFoundError(c *ginext.Context) {
	NotFoundError(c, CustomerNotFound, "Customer not found")
}

func OrganizerNotFoundError(c *ginext.Context) {
	NotFoundError(c, OrganizerNotFound, "Organizer not found")
}

func EventTypeNotFoundError(c *ginext.Context) {
	NotFoundError(c, EventTypeNotFound, "Event type not found")
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}
