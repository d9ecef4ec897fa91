package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "closetcircle/internal/log"
	"closetcircle/internal/services"
	"closetcircle/internal/validate"
)

type HistoryHandler struct {
	Catalog *services.CatalogService
}

// Purchased serves GET /history/purchased?identity=: the user's completed
// orders flattened with purchase dates.
func (h *HistoryHandler) Purchased(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	orders, err := h.Catalog.PurchaseHistory(email)
	if err != nil {
		applog.Error(c, "history.purchased.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// Sold serves GET /history/sold?identity=: completed transactions filtered to
// the caller's own listings.
func (h *HistoryHandler) Sold(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	orders, err := h.Catalog.SellerHistory(email)
	if err != nil {
		applog.Error(c, "history.sold.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"orders": orders})
}
