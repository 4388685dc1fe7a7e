package admin

import (
	"strings"

	"medsupply-backend/internal/database"
	"medsupply-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type CreateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/admin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.FullName == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Full name, email and password are required.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password.")
		}

		user := models.User{
			FullName:     body.FullName,
			Email:        body.Email,
			PasswordHash: string(hash),
			IsActive:     true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				return fiber.NewError(fiber.StatusConflict, "A user with the same email already exists.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user.")
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
	}
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("full_name ASC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users.")
		}

		res := make([]UserResponse, 0, len(users))
		for _, u := range users {
			res = append(res, toUserResponse(u))
		}
		return c.JSON(res)
	}
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
