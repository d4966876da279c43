package validation

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Config struct {
	MaxOneLinerLength   int
	AllowedContentTypes []string
	Logger              *zap.Logger
}

// Middleware rejects obviously malformed requests before they reach
// the handlers: wrong content types, and issue descriptions too long
// to be a one-liner (which would also blow up the prompt).
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxOneLinerLength == 0 {
		cfg.MaxOneLinerLength = 2000
	}
	if len(cfg.AllowedContentTypes) == 0 {
		cfg.AllowedContentTypes = []string{"application/json", "multipart/form-data"}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPut {
			contentType := c.Get("Content-Type")
			if contentType != "" && !allowed(contentType, cfg.AllowedContentTypes) {
				return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
					"error": "Unsupported content type",
				})
			}
		}

		if c.Method() == fiber.MethodPost && strings.HasSuffix(c.Path(), "/reports") {
			oneLiner := c.FormValue("oneliner")
			if len(oneLiner) > cfg.MaxOneLinerLength {
				cfg.Logger.Warn("Oversized one-liner rejected",
					zap.String("ip", c.IP()),
					zap.Int("length", len(oneLiner)),
				)
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Issue description exceeds maximum length",
				})
			}
		}

		return c.Next()
	}
}

func allowed(contentType string, allowedTypes []string) bool {
	for _, t := range allowedTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}
