package catalog

import (
	"strings"

	"medsupply-backend/internal/audit"
	"medsupply-backend/internal/database"
	"medsupply-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type ProductResponse struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}

type CreateProductRequest struct {
	ProductName string `json:"productName"`
	UserID      uint   `json:"userId"`
}

// GET /api/products
//
// Projects the medical-supply slice of the catalog, name-sorted. The
// issuance form only needs id and display name.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.
			Where("category = ?", models.MedicalCategoryID).
			Order("name ASC").
			Find(&products).Error; err != nil {
			log.WithError(err).Error("product list failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load products from database.")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, ProductResponse{ProductID: p.ID, ProductName: p.Name})
		}
		return c.JSON(res)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		name := strings.TrimSpace(body.ProductName)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "productName is required.")
		}

		p := models.Product{
			Name:     name,
			Category: models.MedicalCategoryID,
			Unit:     models.DefaultUnitID,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				return fiber.NewError(fiber.StatusConflict, "A medicine with the same name already exists.")
			}
			log.WithError(err).Error("product create failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create medicine in database.")
		}

		if body.UserID != 0 {
			if err := audit.WriteLog(audit.LogOptions{
				UserID:      body.UserID,
				EntityType:  "product",
				EntityID:    p.ID,
				Action:      models.AuditActionCreate,
				Description: "Medicine created: " + p.Name,
				After:       p,
			}); err != nil {
				log.WithError(err).Warn("audit write skipped")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Medicine created successfully.",
			"product": ProductResponse{ProductID: p.ID, ProductName: p.Name},
		})
	}
}
