package auth

import (
	"errors"
	"strings"

	"medsupply-backend/internal/directory"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/login
//
// Returns the opaque user id on success. Credentials are compared against
// the stored bcrypt hash, never plaintext.
func LoginHandler(src directory.Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required.")
		}

		cred, err := src.LookupCredential(c.UserContext(), body.Email)
		if err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials.")
			}
			log.WithError(err).Error("credential lookup failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not connect to user service.")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials.")
		}

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"userId":  cred.UserID,
		})
	}
}
