package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "closetcircle/internal/log"
	"closetcircle/internal/services"
	"closetcircle/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// View serves GET /cart?identity=.
func (h *CartHandler) View(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	cv, err := h.Cart.View(email)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(cv)
}

// ID serves GET /cart/id?identity=. No pending transaction is reported as a
// null id, never an error.
func (h *CartHandler) ID(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	id, found, err := h.Cart.PendingID(email)
	if err != nil {
		applog.Error(c, "cart.id.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return c.JSON(fiber.Map{"transactionId": nil, "message": "No pending transaction found"})
	}
	return c.JSON(fiber.Map{"transactionId": id})
}

type cartItemBody struct {
	TransactionID int64 `json:"transactionId"`
	ListingID     int64 `json:"listingId"`
}

// AddItem serves PUT /cart/items. When the body carries no transaction id the
// caller's pending cart is resolved, created on first use. Availability is the
// UI's pre-check; the same listing may already sit in another user's cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var b cartItemBody
	if err := c.BodyParser(&b); err != nil || b.ListingID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing listingId")
	}

	txID := b.TransactionID
	if txID == 0 {
		var err error
		txID, err = h.Cart.GetOrCreatePending(identity(c))
		if err != nil {
			applog.Error(c, "cart.ensure.fail", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if err := h.Cart.AddItem(txID, b.ListingID); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"listing": b.ListingID})
		return jsonError(c, fiber.StatusInternalServerError, "Failed to add item to cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"transaction": txID, "listing": b.ListingID})
	return c.JSON(fiber.Map{"success": true, "message": "Item added to cart", "transactionId": txID})
}

// RemoveItem serves DELETE /cart/items; idempotent.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	var b cartItemBody
	if err := c.BodyParser(&b); err != nil || b.TransactionID < 1 || b.ListingID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing transactionId or listingId")
	}
	if err := h.Cart.RemoveItem(b.TransactionID, b.ListingID); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"listing": b.ListingID})
		return jsonError(c, fiber.StatusInternalServerError, "Failed to remove item from cart")
	}
	applog.Audit(c, "cart.remove", map[string]any{"transaction": b.TransactionID, "listing": b.ListingID})
	return c.JSON(fiber.Map{"success": true, "message": "Item removed from cart"})
}

// Checkout serves PUT /cart/checkout?transactionId=. Calling it on an already
// purchased transaction succeeds without touching the purchase timestamp.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	txID, ok := validate.PostID(c.Query("transactionId"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing transactionId")
	}
	if err := h.Cart.Checkout(txID); err != nil {
		applog.Error(c, "cart.checkout.fail", err, map[string]any{"transaction": txID})
		return jsonError(c, fiber.StatusInternalServerError, "Failed to checkout")
	}
	applog.Audit(c, "cart.checkout", map[string]any{"transaction": txID})
	return c.JSON(fiber.Map{"success": true, "message": "Checkout completed"})
}
