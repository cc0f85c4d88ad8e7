package view

import "github.com/gofiber/fiber/v2"

// Sessions resolves the per-session navigation controller.
type Sessions interface {
	Controller(c *fiber.Ctx) *Controller
}

func RegisterRoutes(r fiber.Router, sessions Sessions) {
	r.Get("/", func(c *fiber.Ctx) error {
		nav := sessions.Controller(c)
		return c.JSON(fiber.Map{
			"state": nav.State(),
			"title": nav.Title(),
		})
	})

	r.Post("/navigate", func(c *fiber.Ctx) error {
		var body struct {
			Target string `json:"target"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		target, err := ParseState(body.Target)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		nav := sessions.Controller(c)
		nav.Navigate(target)
		return c.JSON(fiber.Map{
			"state": nav.State(),
			"title": nav.Title(),
		})
	})
}
