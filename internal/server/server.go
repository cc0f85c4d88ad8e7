package server

import (
	"github.com/Gabrielcpmg93/sociarede/internal/caption"
	"github.com/Gabrielcpmg93/sociarede/internal/config"
	"github.com/Gabrielcpmg93/sociarede/internal/create"
	"github.com/Gabrielcpmg93/sociarede/internal/feed"
	"github.com/Gabrielcpmg93/sociarede/internal/session"
	"github.com/Gabrielcpmg93/sociarede/internal/stream"
	"github.com/Gabrielcpmg93/sociarede/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Sessions *session.Store
	Stream   *stream.Hub
}

// NewServer wires the application core behind the HTTP surface. The captions
// generator is injectable for tests; pass nil to use the Gemini client built
// from cfg.
func NewServer(cfg config.Config, redisClient *redis.Client, log *zap.Logger, captions create.Generator) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	if captions == nil {
		captions = caption.NewClient(cfg, log)
	}

	hub := stream.NewHub(redisClient, log)

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Sessions: session.NewStore(cfg.AppTitle, captions, hub),
		Stream:   hub,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	feed.RegisterRoutes(s.App.Group("/"), s.Sessions, s.Stream)
	view.RegisterRoutes(s.App.Group("/view"), s.Sessions)
	create.RegisterRoutes(s.App.Group("/create"), s.Sessions, s.Stream)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
