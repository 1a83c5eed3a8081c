package health

import (
	"errors"

	"graphsense-dashboard/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	storage storage.Client
	logger  *zap.SugaredLogger
}

func NewHandler(storageClient storage.Client, logger *zap.SugaredLogger) (*Handler, error) {
	if storageClient == nil {
		return nil, errors.New("[health_handler] invalid storage client")
	}
	if logger == nil {
		return nil, errors.New("[health_handler] invalid logger")
	}

	return &Handler{storage: storageClient, logger: logger}, nil
}

func (h *Handler) SetupRoutes(router fiber.Router) {
	router.Get("/health", h.HealthCheckHandler)
	router.Get("/health/storage", h.StorageCheckHandler)
}

func (h *Handler) HealthCheckHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

// StorageCheckHandler reports whether the storage backend answers the statistics call.
func (h *Handler) StorageCheckHandler(c *fiber.Ctx) error {
	if _, err := h.storage.Statistics(c.UserContext()); err != nil {
		h.logger.Warnw("storage health check failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "UNAVAILABLE", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "OK"})
}
