package authValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"socialmentor/middleware"
)

var validate = validator.New()

// RegisterRequest is the validated registration payload.
type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=32"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	Role      string   `json:"role" validate:"required,oneof=donor volunteer admin"`
	Phone     string   `json:"phone" validate:"omitempty,numeric,len=10"`
	City      string   `json:"city"`
	Area      string   `json:"area"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// LoginRequest is the validated login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// collectErrors flattens validator errors into a field -> message map.
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
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = "Must be at least " + fieldErr.Param() + " characters long!"
		case "max":
			errors[field] = "Must be at most " + fieldErr.Param() + " characters long!"
		case "oneof":
			errors[field] = "Must be one of: " + fieldErr.Param() + "!"
		case "numeric", "len":
			errors[field] = "Invalid mobile number!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}
