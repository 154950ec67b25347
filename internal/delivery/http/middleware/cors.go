package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the browser frontends to call the API during development.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://localhost:5173",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept,Accept-Language",
	})
}
