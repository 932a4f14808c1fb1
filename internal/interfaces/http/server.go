package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/froesalexandre94-DC/zws/internal/application/dto"
)

// AppConfig opciones de la app Fiber.
type AppConfig struct {
	Name           string
	CORSOrigins    string
	SwaggerEnabled bool
	SwaggerFile    string // ruta al swagger.json
}

// NewApp construye la app Fiber con middlewares, /health, /docs y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	}))
	app.Use(RequestLogger(deps.Logger))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    "Painel de Vendas API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.Name})
	})

	Router(app, deps)
	return app
}
