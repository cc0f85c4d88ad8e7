package feed

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sessions resolves the per-session state backing a request.
type Sessions interface {
	ID(c *fiber.Ctx) string
	Repository(c *fiber.Ctx) *Repository
	ActingUser(c *fiber.Ctx) User
}

// Notifier pushes state-change events to connected rendering surfaces.
type Notifier interface {
	Emit(sessionID, event string, payload any)
}

func RegisterRoutes(r fiber.Router, sessions Sessions, notify Notifier) {
	r.Get("/feed", func(c *fiber.Ctx) error {
		return c.JSON(sessions.Repository(c).Feed())
	})

	r.Get("/stories", func(c *fiber.Ctx) error {
		return c.JSON(sessions.Repository(c).Stories())
	})

	r.Get("/profile", func(c *fiber.Ctx) error {
		return c.JSON(sessions.ActingUser(c))
	})

	r.Get("/profile/posts", func(c *fiber.Ctx) error {
		repo := sessions.Repository(c)
		user := sessions.ActingUser(c)
		posts := repo.OwnPosts(user.ID)
		if posts == nil {
			posts = []Post{}
		}
		return c.JSON(posts)
	})

	r.Post("/posts/:id/like", func(c *fiber.Ctx) error {
		repo := sessions.Repository(c)
		post, err := repo.ToggleLike(c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrPostNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		notify.Emit(sessions.ID(c), "post.liked", post)
		return c.JSON(fiber.Map{
			"post":         post,
			"burst_active": repo.BurstActive(post.ID),
		})
	})
}
