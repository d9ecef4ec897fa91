package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "closetcircle/internal/log"
	"closetcircle/internal/services"
	"closetcircle/internal/validate"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

type wishlistBody struct {
	Email  string `json:"email"`
	PostID int64  `json:"post_id"`
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	items, err := h.Wish.List(email)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"wishlist": items})
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	var b wishlistBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.PostID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing email or post_id")
	}
	if err := h.Wish.Save(b.Email, b.PostID); err != nil {
		applog.Error(c, "wishlist.save.fail", err, map[string]any{"post": b.PostID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "wishlist.save", map[string]any{"post": b.PostID})
	return c.JSON(fiber.Map{"success": true, "message": "Item added successfully"})
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	var b wishlistBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.PostID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing email or post_id")
	}
	if err := h.Wish.Unsave(b.Email, b.PostID); err != nil {
		applog.Error(c, "wishlist.unsave.fail", err, map[string]any{"post": b.PostID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "wishlist.unsave", map[string]any{"post": b.PostID})
	return c.JSON(fiber.Map{"success": true, "message": "Item removed from wishlist"})
}

// Like and Unlike maintain the associations behind the trending ranking.
func (h *WishlistHandler) Like(c *fiber.Ctx) error {
	var b wishlistBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.PostID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing email or post_id")
	}
	if err := h.Wish.Like(b.Email, b.PostID); err != nil {
		applog.Error(c, "wishlist.like.fail", err, map[string]any{"post": b.PostID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *WishlistHandler) Unlike(c *fiber.Ctx) error {
	var b wishlistBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.PostID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing email or post_id")
	}
	if err := h.Wish.Unlike(b.Email, b.PostID); err != nil {
		applog.Error(c, "wishlist.unlike.fail", err, map[string]any{"post": b.PostID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true})
}
