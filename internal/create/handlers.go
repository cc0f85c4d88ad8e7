package create

import (
	"errors"

	"github.com/Gabrielcpmg93/sociarede/internal/imaging"

	"github.com/gofiber/fiber/v2"
)

// Sessions resolves the per-session creation workflow.
type Sessions interface {
	ID(c *fiber.Ctx) string
	Workflow(c *fiber.Ctx) *Workflow
}

// Notifier pushes state-change events to connected rendering surfaces.
type Notifier interface {
	Emit(sessionID, event string, payload any)
}

func RegisterRoutes(r fiber.Router, sessions Sessions, notify Notifier) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(sessions.Workflow(c).Snapshot())
	})

	r.Post("/image", func(c *fiber.Ctx) error {
		var body struct {
			Image string `json:"image"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		payload, err := sessions.Workflow(c).SelectImage(body.Image)
		if err != nil {
			if errors.Is(err, imaging.ErrDecode) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"mime_type": payload.MimeType})
	})

	r.Post("/caption", func(c *fiber.Ctx) error {
		result, err := sessions.Workflow(c).RequestCaption(c.Context())
		if err != nil {
			return captionError(err)
		}
		return c.JSON(result)
	})

	r.Put("/caption", func(c *fiber.Ctx) error {
		var body struct {
			Caption string `json:"caption"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		wf := sessions.Workflow(c)
		wf.SetCaption(body.Caption)
		return c.JSON(wf.Snapshot())
	})

	r.Post("/submit", func(c *fiber.Ctx) error {
		post, err := sessions.Workflow(c).Submit()
		if err != nil {
			if errors.Is(err, ErrNoPendingImage) {
				return fiber.NewError(fiber.StatusPreconditionFailed, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		notify.Emit(sessions.ID(c), "post.created", post)
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Post("/cancel", func(c *fiber.Ctx) error {
		sessions.Workflow(c).Cancel()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func captionError(err error) error {
	switch {
	case errors.Is(err, ErrNoPendingImage):
		return fiber.NewError(fiber.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrCaptionInFlight):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
