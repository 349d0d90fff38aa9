package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"loja/internal/apperrors"
)

// success writes the uniform success envelope.
func success(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// fail translates an error into the uniform error envelope. Domain error
// kinds carry their own status and a client-safe message; anything else
// becomes a generic 500. The underlying detail is only attached outside
// production.
func fail(c *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	message := "internal server error"
	if apperrors.IsAppError(err) {
		message = err.Error()
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	errBody := fiber.Map{
		"message": message,
		"status":  status,
	}
	if !apperrors.IsAppError(err) && viper.GetString("APP_ENV") != "production" {
		errBody["detail"] = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   errBody,
	})
}

// badBody is the error for payloads that do not parse as JSON at all.
func badBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body on %s %s: %v", c.Method(), c.Path(), err)
	return fail(c, apperrors.Validation("invalid request body"))
}
