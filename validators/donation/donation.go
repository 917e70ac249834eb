package donationValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"socialmentor/middleware"
)

var validate = validator.New()

// CreateRequest is the validated new-donation payload. Location fields are
// optional; the controller falls back to the donor's profile values.
type CreateRequest struct {
	Category      string   `json:"category" validate:"required,max=64"`
	Description   string   `json:"description" validate:"required,max=2000"`
	Quantity      string   `json:"quantity" validate:"max=64"`
	PickupAddress string   `json:"pickup_address" validate:"max=256"`
	City          string   `json:"city" validate:"max=64"`
	Area          string   `json:"area" validate:"max=64"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// DeliverRequest is the validated delivery confirmation payload.
type DeliverRequest struct {
	RecipientName    string `json:"recipient_name" validate:"required,max=128"`
	RecipientContact string `json:"recipient_contact" validate:"max=64"`
	PeopleHelped     *int   `json:"people_helped" validate:"omitempty,gte=0"`
	Feedback         string `json:"feedback" validate:"max=2000"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDonation", reqData)
		return c.Next()
	}
}

// Deliver validator middleware
func Deliver() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeliverRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDelivery", reqData)
		return c.Next()
	}
}

func collectErrors(err error) map[string]string {
	errors := make(map[string]string)
	if err == nil {
		return errors
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "max":
			errors[field] = "Too long!"
		case "gte", "lte":
			errors[field] = "Out of range!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}
