package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"socialmentor/config"
	"socialmentor/database"
	"socialmentor/middleware"
	"socialmentor/models"
	"socialmentor/store"
	authValidator "socialmentor/validators/auth"
)

// Register creates a new account with the role fixed at creation, and logs
// the user straight in with a fresh token.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	users := store.NewUserStore(database.Database.Db, config.AppConfig.SaltRound)

	user, err := users.Create(store.NewUserInput{
		Username:  reqData.Username,
		Email:     reqData.Email,
		Password:  reqData.Password,
		Role:      models.Role(reqData.Role),
		Phone:     reqData.Phone,
		City:      reqData.City,
		Area:      reqData.Area,
		Latitude:  reqData.Latitude,
		Longitude: reqData.Longitude,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateIdentity) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email is already registered!", nil)
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful.", fiber.Map{
		"user":  user.Public(),
		"token": token,
	})
}

// Login verifies a username/password pair. Unknown username and wrong
// password return the same message so neither is leaked.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	users := store.NewUserStore(database.Database.Db, config.AppConfig.SaltRound)

	user, err := users.VerifyCredential(reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredential) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		log.Printf("Error verifying credentials: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user.Public(),
		"token": token,
	})
}

// Me returns the authenticated user's public profile.
func Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user.Public())
}
