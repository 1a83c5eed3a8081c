package usertags

import (
	"errors"

	"graphsense-dashboard/services/explorer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.SugaredLogger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("[usertags_handler] invalid user tags service")
	}
	if logger == nil {
		return nil, errors.New("[usertags_handler] invalid logger")
	}

	return &Handler{service: service, logger: logger}, nil
}

// SetupRoutes expects a router prefixed by the currency segment and the handler
// that validates it.
func (h *Handler) SetupRoutes(router fiber.Router, validateCurrency fiber.Handler) {
	router.Get("/usertags", validateCurrency, h.ListUserTagsHandler)
	router.Post("/usertags", validateCurrency, h.AddUserTagHandler)
	router.Get("/usertags/tagpack.yaml", validateCurrency, h.ExportTagpackHandler)
	router.Post("/usertags/tagpack", validateCurrency, h.ImportTagpackHandler)
	router.Delete("/usertags/:id", validateCurrency, h.DeleteUserTagHandler)
}

func (h *Handler) failure(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUserTagNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidTagpack):
		status = fiber.StatusBadRequest
	default:
		h.logger.Errorw("user tags request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (h *Handler) AddUserTagHandler(c *fiber.Ctx) error {
	var reqBody AddUserTagBody

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := Validate(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tag, err := h.service.AddUserTag(c.UserContext(), explorer.CurrencyOf(c), reqBody)
	if err != nil {
		return h.failure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *Handler) ListUserTagsHandler(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Validate(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tags, err := h.service.ListUserTags(c.UserContext(), explorer.CurrencyOf(c), q.Address, q.Page)
	if err != nil {
		return h.failure(c, err)
	}

	return c.JSON(tags)
}

func (h *Handler) DeleteUserTagHandler(c *fiber.Ctx) error {
	tag, err := h.service.DeleteUserTag(c.UserContext(), explorer.CurrencyOf(c), c.Params("id"))
	if err != nil {
		return h.failure(c, err)
	}

	return c.JSON(tag)
}

func (h *Handler) ExportTagpackHandler(c *fiber.Ctx) error {
	body, err := h.service.ExportTagpack(c.UserContext(), explorer.CurrencyOf(c), c.Query("creator"))
	if err != nil {
		return h.failure(c, err)
	}

	c.Attachment("tagpack.yaml")
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(body)
}

func (h *Handler) ImportTagpackHandler(c *fiber.Ctx) error {
	n, err := h.service.ImportTagpack(c.UserContext(), explorer.CurrencyOf(c), c.Body())
	if err != nil {
		return h.failure(c, err)
	}

	return c.JSON(fiber.Map{"status": "OK", "imported": n})
}
