package main

import (
	"strings"

	"medsupply-backend/internal/admin"
	"medsupply-backend/internal/audit"
	"medsupply-backend/internal/auth"
	"medsupply-backend/internal/catalog"
	"medsupply-backend/internal/config"
	"medsupply-backend/internal/database"
	"medsupply-backend/internal/directory"
	"medsupply-backend/internal/issuance"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.WithError(err).Error("unhandled error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Unexpected server error.",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Users and branches come from the external directory service or from
	// local tables, depending on the deployment.
	var dirSource directory.Source
	switch cfg.DirectoryMode {
	case config.DirectoryModeAPI:
		dirSource = directory.NewAPISource(cfg.UserAPIURL, cfg.BranchAPIURL, cfg.DirectoryTimeout)
		log.WithField("user_api", cfg.UserAPIURL).Info("directory mode: external api")
	default:
		dirSource = directory.NewDBSource(database.DB)
		log.Info("directory mode: local db")
	}

	issueSvc := issuance.NewService(issuance.NewStore(database.DB))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	api.Post("/login", auth.LoginHandler(dirSource))

	api.Get("/users", directory.ListUsersHandler(dirSource))
	api.Get("/branches", directory.ListBranchesHandler(dirSource))

	api.Get("/products", catalog.ListProductsHandler())
	api.Post("/products", catalog.CreateProductHandler())

	api.Post("/issue", issuance.CreateIssueHandler(issueSvc, audit.WriteLog))
	api.Get("/issues", issuance.ListIssuesHandler(issueSvc))
	api.Get("/issues/:id", issuance.GetIssueHandler(issueSvc))

	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	adminRoutes := api.Group("/admin")
	adminRoutes.Post("/branches", admin.CreateBranchHandler())
	adminRoutes.Get("/branches", admin.ListBranchesHandler())
	adminRoutes.Post("/users", admin.CreateUserHandler())
	adminRoutes.Get("/users", admin.ListUsersHandler())

	log.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
