package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"closetcircle/internal/assistant"
	applog "closetcircle/internal/log"
)

type AssistantHandler struct {
	Client *assistant.Client
}

// Relay serves POST /assistant, forwarding the message to the conversational
// assistant webhook and returning its reply fragments as-is.
func (h *AssistantHandler) Relay(c *fiber.Ctx) error {
	var msg assistant.Message
	if err := c.BodyParser(&msg); err != nil || msg.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing message")
	}
	if msg.Sender == "" {
		msg.Sender = identity(c)
	}
	// Anonymous visitors still get a stable-enough conversation id
	if msg.Sender == "" {
		msg.Sender = uuid.NewString()
	}

	fragments, err := h.Client.Send(c.Context(), msg)
	if err != nil {
		applog.Error(c, "assistant.relay.fail", err, nil)
		return jsonError(c, fiber.StatusBadGateway, "assistant unavailable")
	}
	return c.JSON(fiber.Map{"replies": fragments})
}
