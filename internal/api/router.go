package api

import (
	"os"
	"path/filepath"

	_ "fintrack/docs"
	"fintrack/internal/api/handlers"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SetupRouter wires every route. A nil jwtManager leaves mutating routes open.
func SetupRouter(
	txHandler *handlers.TransactionHandler,
	jwtManager *auth.JWTManager,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, dashboard page will not be served")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath == "" {
			return c.Status(fiber.StatusNotFound).SendString("Dashboard page not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(filepath.Join(webStaticPath, "index.html"))
	})

	var protect []fiber.Handler
	if jwtManager != nil {
		protect = append(protect, middleware.AuthMiddleware(jwtManager, appLogger))
	} else {
		appLogger.Warn("JWT_SECRET_KEY not set, mutating routes are unauthenticated")
	}

	// The dashboard page talks to /api; the bare paths stay for plain API clients.
	registerRoutes(app, txHandler, protect)
	registerRoutes(app.Group("/api"), txHandler, protect)

	return app
}

func registerRoutes(r fiber.Router, txHandler *handlers.TransactionHandler, protect []fiber.Handler) {
	r.Get("/dashboard", txHandler.Dashboard)

	transactions := r.Group("/transactions")
	transactions.Get("", txHandler.ListTransactions)
	transactions.Post("", withMiddleware(protect, txHandler.CreateTransaction)...)
	transactions.Put("/:id", withMiddleware(protect, txHandler.UpdateTransaction)...)
	transactions.Delete("/:id", withMiddleware(protect, txHandler.DeleteTransaction)...)
}

func withMiddleware(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(mw)+1)
	chain = append(chain, mw...)
	return append(chain, h)
}

// findWebStaticPath looks for web/static relative to the working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"web/static",
		"../web/static",
		"../../web/static",
		"../../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried static path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
