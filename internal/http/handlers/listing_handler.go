package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "closetcircle/internal/log"
	"closetcircle/internal/repos"
	"closetcircle/internal/validate"
)

type ListingHandler struct {
	Listings *repos.ListingRepo
	Valid    *validate.Validator
}

// Create serves POST /listings. The payload is re-validated here so direct
// API callers cannot insert invalid rows; violations come back as a field
// error map with a 422.
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var in validate.ListingInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if fields := h.Valid.Listing(in); fields != nil {
		applog.Security(c, "listing.validation.fail", map[string]any{"fields": fields})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"fields": fields})
	}

	id, err := h.Listings.Create(repos.NewListing{
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		Condition:   in.Condition,
		Size:        in.Size,
		Price:       in.Price,
		ForSale:     in.ForSale,
		ForRent:     in.ForRent,
		Images:      in.Images,
		Categories:  in.Categories,
	})
	if err != nil {
		applog.Error(c, "listing.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "listing.create", map[string]any{"post": id})
	return c.JSON(fiber.Map{"post_id": id})
}

type deleteBody struct {
	PostID int64 `json:"post_id"`
}

// Delete serves POST /listings/delete, cascading images and categories.
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	var b deleteBody
	if err := c.BodyParser(&b); err != nil || b.PostID < 1 {
		return jsonError(c, fiber.StatusBadRequest, "missing post_id")
	}
	if err := h.Listings.Delete(b.PostID); err != nil {
		applog.Error(c, "listing.delete.fail", err, map[string]any{"post": b.PostID})
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	applog.Audit(c, "listing.delete", map[string]any{"post": b.PostID})
	return c.JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}
