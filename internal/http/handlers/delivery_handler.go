package handlers

import (
	"blossom/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DeliveryHandler struct {
	Delivery *services.DeliveryService
}

// Dates returns the upcoming delivery days for the storefront picker.
func (h *DeliveryHandler) Dates(c *fiber.Ctx) error {
	return c.JSON(h.Delivery.Dates(14))
}
