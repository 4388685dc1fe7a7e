package directory

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// GET /api/users
func ListUsersHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := src.ActiveUsers(c.UserContext())
		if err != nil {
			log.WithError(err).Error("user directory unavailable")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not connect to user service.")
		}
		return c.JSON(users)
	}
}

// GET /api/branches
func ListBranchesHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := src.ActiveBranches(c.UserContext())
		if err != nil {
			log.WithError(err).Error("branch directory unavailable")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not connect to branch service.")
		}
		return c.JSON(branches)
	}
}
