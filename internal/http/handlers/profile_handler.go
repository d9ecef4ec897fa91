package handlers

import (
	"github.com/gofiber/fiber/v2"

	"closetcircle/internal/domain"
	applog "closetcircle/internal/log"
	"closetcircle/internal/services"
	"closetcircle/internal/validate"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Catalog  *services.CatalogService
	Valid    *validate.Validator
}

// Profile serves GET /account/profile?identity=. A missing row is an empty
// result, not an error.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	u, err := h.Profiles.Get(email)
	if err != nil {
		applog.Error(c, "profile.get.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"user": u})
}

// New serves POST /account/new: the post-authentication completion step that
// creates the User row.
func (h *ProfileHandler) New(c *fiber.Ctx) error {
	var in validate.UserInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if fields := h.Valid.Fields(in); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"fields": fields})
	}
	u := domain.User{Email: in.Email, FirstName: in.FirstName, LastName: in.LastName, Bio: in.Bio}
	if err := h.Profiles.Create(u); err != nil {
		applog.Error(c, "profile.create.fail", err, map[string]any{"identity": in.Email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "profile.create", map[string]any{"identity": in.Email})
	return c.JSON(fiber.Map{"user": u})
}

// Closet serves GET /account/closet?owner=: the owner's listings with images
// and categories attached.
func (h *ProfileHandler) Closet(c *fiber.Ctx) error {
	owner, ok := validate.Email(c.Query("owner"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing owner")
	}
	listings, err := h.Catalog.ListByOwner(owner)
	if err != nil {
		applog.Error(c, "profile.closet.fail", err, map[string]any{"owner": owner})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"listings": listings})
}

func (h *ProfileHandler) Followers(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	followers, err := h.Profiles.Followers(email)
	if err != nil {
		applog.Error(c, "profile.followers.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"followers": followers})
}

func (h *ProfileHandler) Following(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("identity"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing identity")
	}
	following, err := h.Profiles.Following(email)
	if err != nil {
		applog.Error(c, "profile.following.fail", err, map[string]any{"identity": email})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"following": following})
}

type followBody struct {
	Email    string `json:"email"`
	FriendID string `json:"friend_id"`
}

// Follow serves POST /account/follow.
func (h *ProfileHandler) Follow(c *fiber.Ctx) error {
	var b followBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.FriendID == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing email or friend_id")
	}
	if err := h.Profiles.Follow(b.Email, b.FriendID); err != nil {
		applog.Error(c, "profile.follow.fail", err, map[string]any{"friend": b.FriendID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "profile.follow", map[string]any{"friend": b.FriendID})
	return c.JSON(fiber.Map{"success": true})
}

// Unfollow serves DELETE /account/follow.
func (h *ProfileHandler) Unfollow(c *fiber.Ctx) error {
	var b followBody
	if err := c.BodyParser(&b); err != nil || b.Email == "" || b.FriendID == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing email or friend_id")
	}
	if err := h.Profiles.Unfollow(b.Email, b.FriendID); err != nil {
		applog.Error(c, "profile.unfollow.fail", err, map[string]any{"friend": b.FriendID})
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	applog.Audit(c, "profile.unfollow", map[string]any{"friend": b.FriendID})
	return c.JSON(fiber.Map{"success": true, "message": "Friend unfollowed"})
}
