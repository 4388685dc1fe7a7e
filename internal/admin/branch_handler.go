package admin

import (
	"strings"

	"medsupply-backend/internal/database"
	"medsupply-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BranchResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type CreateBranchRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
}

// POST /api/admin/branches
//
// Provisioning for the db directory variant: something has to populate the
// tables the directory reads.
func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Branch name is required.")
		}

		branch := models.Branch{
			Name:     body.Name,
			Address:  body.Address,
			IsActive: true,
		}
		if body.Phone != nil {
			branch.Phone = strings.TrimSpace(*body.Phone)
		}

		if err := database.DB.Create(&branch).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				return fiber.NewError(fiber.StatusConflict, "A branch with the same name already exists.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create branch.")
		}

		return c.Status(fiber.StatusCreated).JSON(toBranchResponse(branch))
	}
}

// GET /api/admin/branches (includes inactive, unlike the public listing)
func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var branches []models.Branch
		if err := database.DB.Order("name ASC").Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list branches.")
		}

		res := make([]BranchResponse, 0, len(branches))
		for _, b := range branches {
			res = append(res, toBranchResponse(b))
		}
		return c.JSON(res)
	}
}

func toBranchResponse(b models.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
